// Package testshape recognizes the shape of Jest and Vitest style tests:
// test entry calls, their callbacks and the assertion chains inside them.
package testshape

import (
	"slices"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// DefaultAssertionName is the conventional assertion entry, as in expect(x).toBe(1).
const DefaultAssertionName = "expect"

var (
	// TestNames are the entries that declare a single test.
	TestNames = []string{"test", "it"}
	// FrameworkNames additionally include suites.
	FrameworkNames = []string{"test", "it", "describe"}
)

// EntryName returns the framework function a call invokes when it is one of
// names: test(), test.skip(), test.only() or test.each(table)().
func EntryName(call *ast.CallExpression, names []string) (string, bool) {
	if call == nil {
		return "", false
	}
	callee := call.Callee
	if inner, ok := callee.(*ast.CallExpression); ok {
		// test.each(table)('name', fn)
		m, ok := inner.Callee.(*ast.MemberExpression)
		if !ok {
			return "", false
		}
		callee = m
	}
	switch c := callee.(type) {
	case *ast.Identifier:
		if slices.Contains(names, c.Name) {
			return c.Name, true
		}
	case *ast.MemberExpression:
		if name, ok := ast.IdentifierName(c.Object); ok && slices.Contains(names, name) {
			return name, true
		}
	}
	return "", false
}

// IsTestCall reports whether call declares a test through one of names.
func IsTestCall(call *ast.CallExpression, names []string) bool {
	_, ok := EntryName(call, names)
	return ok
}

// Callback returns the function passed as the second argument of a test
// entry call, or nil when that argument is not an arrow or function expression.
func Callback(call *ast.CallExpression) ast.Node {
	if call == nil || len(call.Arguments) < 2 {
		return nil
	}
	switch cb := call.Arguments[1].(type) {
	case *ast.ArrowFunctionExpression, *ast.FunctionExpression:
		return cb
	}
	return nil
}

// FindAssertions returns the assertion calls inside a test callback in
// document order, nested functions included. An assertion is a matcher call
// on entry(subject), optionally through one modifier: expect(x).toBe(1),
// expect(x).not.toBe(1), expect(p).resolves.toBe(1).
func FindAssertions(callback ast.Node, entryNames []string) []*ast.CallExpression {
	body := ast.FunctionBody(callback)
	if body == nil {
		return nil
	}
	var out []*ast.CallExpression
	ast.Walk(body, func(n ast.Node) bool {
		if call, ok := n.(*ast.CallExpression); ok && AssertionEntry(call, entryNames) != nil {
			out = append(out, call)
		}
		return true
	})
	return out
}

// AssertionEntry returns the entry call of an assertion, the expect(x) in
// expect(x).not.toBe(1), or nil when call is not an assertion. At most one
// member step (not, resolves, rejects or any other) may sit between the
// entry and the matcher.
func AssertionEntry(call *ast.CallExpression, entryNames []string) *ast.CallExpression {
	callee, ok := call.Callee.(*ast.MemberExpression)
	if !ok {
		return nil
	}
	object := callee.Object
	if step, ok := object.(*ast.MemberExpression); ok {
		object = step.Object
	}
	entry, ok := object.(*ast.CallExpression)
	if !ok {
		return nil
	}
	if name, ok := ast.IdentifierName(entry.Callee); !ok || !slices.Contains(entryNames, name) {
		return nil
	}
	return entry
}

// AssertionSubject returns the value under test of an assertion call.
func AssertionSubject(call *ast.CallExpression, entryNames []string) ast.Node {
	entry := AssertionEntry(call, entryNames)
	if entry == nil || len(entry.Arguments) == 0 {
		return nil
	}
	return entry.Arguments[0]
}

// MatcherName returns the name of the matcher an assertion call invokes.
func MatcherName(call *ast.CallExpression) string {
	callee, ok := call.Callee.(*ast.MemberExpression)
	if !ok || callee.Computed {
		return ""
	}
	name, _ := ast.IdentifierName(callee.Property)
	return name
}

// IsMatcherChain reports whether call is a matcher call whose member chain,
// of any length, leads back to an assertion entry call. Bare entry calls
// are not matcher chains.
func IsMatcherChain(call *ast.CallExpression, entryNames []string) bool {
	callee, ok := call.Callee.(*ast.MemberExpression)
	if !ok {
		return false
	}
	object := callee.Object
	for {
		m, ok := object.(*ast.MemberExpression)
		if !ok {
			break
		}
		object = m.Object
	}
	entry, ok := object.(*ast.CallExpression)
	if !ok {
		return false
	}
	name, ok := ast.IdentifierName(entry.Callee)
	return ok && slices.Contains(entryNames, name)
}

// EnclosingCallback returns the innermost function expression between n and
// the root that is the callback of a test entry call through names.
func EnclosingCallback(n ast.Node, names []string) ast.Node {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		if isCallbackOf(cur, names) {
			return cur
		}
	}
	return nil
}

// InsideCallback reports whether n runs directly in a test callback. The
// search stops at function declarations and at any other function
// expression passed to a call, so helpers defined in a suite are not
// considered part of it.
func InsideCallback(n ast.Node, names []string) bool {
	for cur := n.Parent(); cur != nil; cur = cur.Parent() {
		switch cur.(type) {
		case *ast.FunctionDeclaration:
			return false
		case *ast.ArrowFunctionExpression, *ast.FunctionExpression:
			if _, ok := cur.Parent().(*ast.CallExpression); ok {
				return isCallbackOf(cur, names)
			}
		}
	}
	return false
}

func isCallbackOf(fn ast.Node, names []string) bool {
	switch fn.(type) {
	case *ast.ArrowFunctionExpression, *ast.FunctionExpression:
	default:
		return false
	}
	call, ok := fn.Parent().(*ast.CallExpression)
	if !ok || !IsTestCall(call, names) {
		return false
	}
	return len(call.Arguments) > 1 && call.Arguments[1] == fn
}
