package tests

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/testshape"
)

// MessageConditionalExpect is the message id of no-conditional-expect issues.
const MessageConditionalExpect = "conditionalExpect"

const conditionalExpectMessage = "Unexpected expect() inside conditional. All assertions should execute unconditionally."

// NoConditionalExpectRule reports assertions that only run on some paths
// through a test.
type NoConditionalExpectRule struct {
	opts *options
}

// NewNoConditionalExpectRule creates a new no-conditional-expect rule.
func NewNoConditionalExpectRule(opts ...Option) *NoConditionalExpectRule {
	return &NoConditionalExpectRule{opts: newOptions(opts)}
}

// Name returns the unique identifier for this rule.
func (r *NoConditionalExpectRule) Name() string {
	return "no-conditional-expect"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoConditionalExpectRule) Description() string {
	return "Disallow expect() calls inside conditionals in tests"
}

// Check reports matcher calls nested in an if, a ternary or a switch case
// within a test callback.
func (r *NoConditionalExpectRule) Check(ctx *jslint.Context) []jslint.Issue {
	var issues []jslint.Issue

	_ = ctx.WalkKinds([]ast.Kind{ast.KindCallExpression}, func(nodeCtx *jslint.Context) error {
		call := nodeCtx.Node.(*ast.CallExpression)
		if !testshape.IsMatcherChain(call, r.opts.assertionNames) {
			return nil
		}
		callback := testshape.EnclosingCallback(call, r.opts.testNames)
		if callback == nil || !conditionalBetween(call, callback) {
			return nil
		}
		issues = append(issues, jslint.IssueAt(r.Name(), jslint.SeverityError, call,
			MessageConditionalExpect, conditionalExpectMessage, nil))
		return nil
	})

	return issues
}

// conditionalBetween reports whether a branch separates n from its ancestor stop.
func conditionalBetween(n, stop ast.Node) bool {
	for cur := n.Parent(); cur != nil && cur != stop; cur = cur.Parent() {
		switch cur.(type) {
		case *ast.IfStatement, *ast.ConditionalExpression, *ast.SwitchCase:
			return true
		}
	}
	return false
}
