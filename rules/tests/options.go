package tests

import "github.com/input-output-hk/catalyst-forge-libs/jslint/rules/testshape"

// DefaultMockMatchers are the matchers that only inspect mock calls.
var DefaultMockMatchers = []string{
	"toHaveBeenCalled",
	"toHaveBeenCalledWith",
	"toHaveBeenCalledTimes",
	"toHaveBeenLastCalledWith",
	"toHaveBeenNthCalledWith",
}

// options holds the configuration shared by the rules of this package.
type options struct {
	testNames      []string
	suiteNames     []string
	assertionNames []string
	mockMatchers   []string
}

// Option is a functional option for configuring a rule.
type Option func(*options)

// WithTestNames replaces the functions that declare a test (test, it).
func WithTestNames(names ...string) Option {
	return func(o *options) {
		o.testNames = names
	}
}

// WithSuiteNames replaces the functions that declare a suite (describe).
func WithSuiteNames(names ...string) Option {
	return func(o *options) {
		o.suiteNames = names
	}
}

// WithAssertionNames replaces the assertion entry functions (expect).
func WithAssertionNames(names ...string) Option {
	return func(o *options) {
		o.assertionNames = names
	}
}

// WithMockMatchers replaces the matchers treated as mock-only assertions.
func WithMockMatchers(matchers ...string) Option {
	return func(o *options) {
		o.mockMatchers = matchers
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		testNames:      testshape.TestNames,
		suiteNames:     []string{"describe"},
		assertionNames: []string{testshape.DefaultAssertionName},
		mockMatchers:   DefaultMockMatchers,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// frameworkNames returns the test and suite names together.
func (o *options) frameworkNames() []string {
	names := make([]string, 0, len(o.testNames)+len(o.suiteNames))
	names = append(names, o.testNames...)
	return append(names, o.suiteNames...)
}
