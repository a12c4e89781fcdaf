package tests

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/testshape"
)

// MessageConstantAssertion is the message id of no-constant-assertion issues.
const MessageConstantAssertion = "constantAssertion"

const constantAssertionTemplate = "Assertion on constant value {{value}} always produces the same result"

// NoConstantAssertionRule reports assertions whose subject is a constant,
// such as expect(true).toBe(true). Such assertions pass or fail regardless
// of the code under test.
type NoConstantAssertionRule struct {
	opts *options
}

// NewNoConstantAssertionRule creates a new no-constant-assertion rule.
func NewNoConstantAssertionRule(opts ...Option) *NoConstantAssertionRule {
	return &NoConstantAssertionRule{opts: newOptions(opts)}
}

// Name returns the unique identifier for this rule.
func (r *NoConstantAssertionRule) Name() string {
	return "no-constant-assertion"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoConstantAssertionRule) Description() string {
	return "Disallow assertions on constant values that always produce the same result"
}

// Check examines every test callback in the file and reports each
// assertion on a constant subject once.
func (r *NoConstantAssertionRule) Check(ctx *jslint.Context) []jslint.Issue {
	var issues []jslint.Issue

	evaluator := NewConstantEvaluator(ctx.Bindings, ctx.Modules)
	reported := make(map[*ast.CallExpression]bool)

	_ = ctx.WalkKinds([]ast.Kind{ast.KindCallExpression}, func(nodeCtx *jslint.Context) error {
		call := nodeCtx.Node.(*ast.CallExpression)
		if !testshape.IsTestCall(call, r.opts.testNames) {
			return nil
		}
		callback := testshape.Callback(call)
		if callback == nil {
			return nil
		}

		for _, assertion := range testshape.FindAssertions(callback, r.opts.assertionNames) {
			if reported[assertion] {
				continue
			}
			subject := testshape.AssertionSubject(assertion, r.opts.assertionNames)
			if subject == nil || !evaluator.IsConstant(subject, ctx.Path()) {
				continue
			}
			reported[assertion] = true

			value := Describe(subject)
			if ctx.Logger != nil {
				ctx.Logger.Debug("constant assertion", "rule", r.Name(), "path", ctx.Path(), "value", value)
			}
			issues = append(issues, jslint.IssueAt(r.Name(), jslint.SeverityError, assertion,
				MessageConstantAssertion, constantAssertionTemplate, map[string]interface{}{"value": value}))
		}
		return nil
	})

	return issues
}
