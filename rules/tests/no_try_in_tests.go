package tests

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/testshape"
)

// MessageTryInTest is the message id of no-try-in-tests issues.
const MessageTryInTest = "tryInTest"

const tryInTestMessage = "Try statements are not allowed in tests. Tests should let errors propagate to fail the test."

// NoTryInTestsRule reports try statements in test and suite callbacks.
// Helpers declared inside a suite may still use try.
type NoTryInTestsRule struct {
	opts *options
}

// NewNoTryInTestsRule creates a new no-try-in-tests rule.
func NewNoTryInTestsRule(opts ...Option) *NoTryInTestsRule {
	return &NoTryInTestsRule{opts: newOptions(opts)}
}

// Name returns the unique identifier for this rule.
func (r *NoTryInTestsRule) Name() string {
	return "no-try-in-tests"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoTryInTestsRule) Description() string {
	return "Disallow try statements in test callbacks"
}

// Check reports every try statement that runs directly in a test callback.
func (r *NoTryInTestsRule) Check(ctx *jslint.Context) []jslint.Issue {
	var issues []jslint.Issue
	names := r.opts.frameworkNames()

	_ = ctx.WalkKinds([]ast.Kind{ast.KindTryStatement}, func(nodeCtx *jslint.Context) error {
		if testshape.InsideCallback(nodeCtx.Node, names) {
			issues = append(issues, jslint.IssueAt(r.Name(), jslint.SeverityError, nodeCtx.Node,
				MessageTryInTest, tryInTestMessage, nil))
		}
		return nil
	})

	return issues
}
