package tests

import (
	"slices"

	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/testshape"
)

// MessageMockOnlyTest is the message id of no-mock-only-test issues.
const MessageMockOnlyTest = "mockOnlyTest"

const mockOnlyTestMessage = "Test only asserts on mock function calls. " +
	"Add assertions on actual behavior (return values, state changes, etc.)."

// NoMockOnlyTestRule reports tests whose only assertions check how mocks
// were called.
type NoMockOnlyTestRule struct {
	opts *options
}

// NewNoMockOnlyTestRule creates a new no-mock-only-test rule.
func NewNoMockOnlyTestRule(opts ...Option) *NoMockOnlyTestRule {
	return &NoMockOnlyTestRule{opts: newOptions(opts)}
}

// Name returns the unique identifier for this rule.
func (r *NoMockOnlyTestRule) Name() string {
	return "no-mock-only-test"
}

// Description returns a human-readable description of what this rule checks.
func (r *NoMockOnlyTestRule) Description() string {
	return "Disallow tests that only assert on mock function calls without testing actual behavior"
}

// Check reports test calls that contain mock assertions and nothing else.
func (r *NoMockOnlyTestRule) Check(ctx *jslint.Context) []jslint.Issue {
	var issues []jslint.Issue

	_ = ctx.WalkKinds([]ast.Kind{ast.KindCallExpression}, func(nodeCtx *jslint.Context) error {
		call := nodeCtx.Node.(*ast.CallExpression)
		if !testshape.IsTestCall(call, r.opts.testNames) {
			return nil
		}
		callback := testshape.Callback(call)
		if callback == nil {
			return nil
		}

		mocks, behavior := 0, 0
		for _, assertion := range testshape.FindAssertions(callback, r.opts.assertionNames) {
			if slices.Contains(r.opts.mockMatchers, testshape.MatcherName(assertion)) {
				mocks++
			} else {
				behavior++
			}
		}
		if mocks > 0 && behavior == 0 {
			issues = append(issues, jslint.IssueAt(r.Name(), jslint.SeverityError, call,
				MessageMockOnlyTest, mockOnlyTestMessage, nil))
		}
		return nil
	})

	return issues
}
