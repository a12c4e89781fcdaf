// Package rules assembles the rule pack.
package rules

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/design"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/rules/tests"
)

// All returns one instance of every rule in the pack. Options configure the
// rules that inspect tests.
func All(opts ...tests.Option) []jslint.Rule {
	return []jslint.Rule{
		design.NewNoBareWrapperRule(),
		design.NewNoCodeAfterTryCatchRule(),
		design.NewNoInterfaceRule(),
		design.NewNoStandaloneClassRule(),
		tests.NewNoMockOnlyTestRule(opts...),
		tests.NewNoConditionalExpectRule(opts...),
		tests.NewNoConstantAssertionRule(opts...),
		tests.NewNoTryInTestsRule(opts...),
	}
}

// ByName returns the rule of the pack with the given name.
//
//nolint:ireturn // rules are handled through the interface
func ByName(name string, opts ...tests.Option) (jslint.Rule, bool) {
	for _, rule := range All(opts...) {
		if rule.Name() == name {
			return rule, true
		}
	}
	return nil, false
}
