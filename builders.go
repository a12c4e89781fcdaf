package jslint

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// CheckFunc represents a function that performs rule checking on a context.
// It returns a slice of issues found, or nil if no issues were detected.
type CheckFunc func(ctx *Context) []Issue

// NodeCheckFunc represents a function that checks a single node.
// It returns a slice of issues found for that node, or nil if no issues were detected.
type NodeCheckFunc func(ctx *Context, node ast.Node) []Issue

// SimpleRule creates a rule that uses a simple check function.
// This is the most basic rule builder for rules that need full access to the context.
//
//nolint:ireturn // Builder functions should return interfaces
func SimpleRule(name, description string, check CheckFunc) Rule {
	return &simpleRule{
		name:        name,
		description: description,
		check:       check,
	}
}

// simpleRule implements the Rule interface using a CheckFunc.
type simpleRule struct {
	name        string
	description string
	check       CheckFunc
}

// Name returns the unique identifier for this rule.
func (r *simpleRule) Name() string {
	return r.name
}

// Description returns a human-readable description of what this rule checks.
func (r *simpleRule) Description() string {
	return r.description
}

// Check executes the rule's check function and returns any issues found.
func (r *simpleRule) Check(ctx *Context) []Issue {
	return r.check(ctx)
}

// NodeRule creates a rule that checks nodes of the given kinds.
// The check function is called once per matching node in document order.
//
//nolint:ireturn // Builder functions should return interfaces
func NodeRule(name, description string, kinds []ast.Kind, check NodeCheckFunc) Rule {
	return &nodeRule{
		name:        name,
		description: description,
		kinds:       kinds,
		check:       check,
	}
}

// nodeRule implements the Rule interface for node-kind rules.
type nodeRule struct {
	name        string
	description string
	kinds       []ast.Kind
	check       NodeCheckFunc
}

// Name returns the unique identifier for this rule.
func (r *nodeRule) Name() string {
	return r.name
}

// Description returns a human-readable description of what this rule checks.
func (r *nodeRule) Description() string {
	return r.description
}

// Check walks every node of the registered kinds and applies the check function.
func (r *nodeRule) Check(ctx *Context) []Issue {
	var issues []Issue

	_ = ctx.WalkKinds(r.kinds, func(nodeCtx *Context) error {
		if nodeIssues := r.check(nodeCtx, nodeCtx.Node); nodeIssues != nil {
			issues = append(issues, nodeIssues...)
		}
		return nil
	})

	return issues
}

// Helper functions for common rule patterns

// HasKind checks if the current context contains a node of the given kind.
func HasKind(ctx *Context, kind ast.Kind) bool {
	found := false
	_ = ctx.WalkNodes(func(nodeCtx *Context) error {
		if nodeCtx.Node.Kind() == kind {
			found = true
			return errStopWalk
		}
		return nil
	})
	return found
}

// ContainsIdentifier checks if an identifier with the given name occurs in
// the current context.
func ContainsIdentifier(ctx *Context, name string) bool {
	found := false
	_ = ctx.WalkKinds([]ast.Kind{ast.KindIdentifier}, func(nodeCtx *Context) error {
		if id, _ := ast.IdentifierName(nodeCtx.Node); id == name {
			found = true
			return errStopWalk
		}
		return nil
	})
	return found
}
