// Package jslint provides a rule-based linting framework for TypeScript and
// JavaScript sources. Rules inspect the syntax tree produced by the parser
// package and report issues through a Reporter.
package jslint

// Rule defines the interface that all linting rules must implement.
type Rule interface {
	// Name returns a unique identifier for the rule.
	// This should be a kebab-case string like "no-interface".
	Name() string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// Check examines the provided Context and returns any issues found.
	// Rules never fail: shapes they cannot analyze are skipped.
	Check(ctx *Context) []Issue
}
