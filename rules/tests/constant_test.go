package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/parser"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/scope"
)

// subjectOf parses src and returns the argument of its last expect call.
func subjectOf(t *testing.T, src string) (*ast.File, ast.Node) {
	t.Helper()
	f, err := parser.ParseString(src)
	require.NoError(t, err)

	var subject ast.Node
	ast.Walk(f.Program, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			return true
		}
		if name, _ := ast.IdentifierName(call.Callee); name == "expect" && len(call.Arguments) > 0 {
			subject = call.Arguments[0]
		}
		return true
	})
	require.NotNil(t, subject, "no expect call in source")
	return f, subject
}

func TestConstantEvaluator(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{name: "number literal", src: `expect(1)`, want: true},
		{name: "string literal", src: `expect('hello')`, want: true},
		{name: "null literal", src: `expect(null)`, want: true},
		{name: "regexp literal", src: `expect(/a+/g)`, want: true},
		{name: "undefined", src: `expect(undefined)`, want: true},
		{name: "plain template", src: "expect(`text`)", want: true},
		{name: "template over constant", src: "const n = 1; expect(`n=${n}`)", want: true},
		{name: "template over call", src: "expect(`n=${next()}`)", want: false},
		{name: "parameter", src: `function f(p) { expect(p); }`, want: false},
		{name: "destructured parameter", src: `function f({ a }) { expect(a); }`, want: false},
		{name: "catch parameter", src: `try {} catch (e) { expect(e); }`, want: false},
		{name: "function", src: `function g() {} expect(g)`, want: false},
		{name: "class", src: `class C {} expect(C)`, want: false},
		{name: "global", src: `expect(window)`, want: false},
		{name: "this", src: `expect(this)`, want: false},
		{name: "literal local", src: `const x = 1; expect(x)`, want: true},
		{name: "aliased local", src: `const a = 'v'; const b = a; expect(b)`, want: true},
		{name: "let without initializer", src: `let x; expect(x)`, want: false},
		{name: "reassigned let", src: `let x = 1; x = 2; expect(x)`, want: false},
		{name: "incremented let", src: `let x = 1; x++; expect(x)`, want: false},
		{name: "call initializer", src: `const x = compute(); expect(x)`, want: false},
		{name: "self reference", src: `const x = x; expect(x)`, want: false},
		{name: "mutual reference", src: `const a = b; const b = a; expect(a)`, want: false},
		{name: "destructuring cycle", src: `const { a } = b; const { b } = a; expect(a)`, want: false},
		{name: "destructuring cycle behind computed key", src: `const { a } = b; const { b } = a; const { [a]: v } = { x: 1 }; expect(v)`, want: true},
		{name: "computed key from destructuring cycle", src: `const { a } = b; const { b } = a; const { [a]: v } = { x: f() }; expect(v)`, want: false},
		{name: "namespace key cycle", src: `import * as ns from './m'; const { k } = ns[k]; expect(k)`, want: false},
		{name: "namespace member with cyclic key", src: `import * as ns from './m'; const { k } = ns[k]; expect(ns[k])`, want: false},
		{name: "call", src: `expect(f())`, want: false},
		{name: "arrow", src: `expect(() => 1)`, want: false},
		{name: "function expression", src: `expect(function () { return 1; })`, want: false},
		{name: "constant array", src: `expect([1, 'a', null, [true]])`, want: true},
		{name: "array with hole", src: `expect([1, , 3])`, want: true},
		{name: "array with spread", src: `expect([...xs])`, want: false},
		{name: "array with call", src: `expect([1, f()])`, want: false},
		{name: "constant object", src: `expect({ a: 1, b: { c: 'x' } })`, want: true},
		{name: "object with spread", src: `expect({ ...base })`, want: false},
		{name: "object with method", src: `expect({ run() {} })`, want: false},
		{name: "object with computed constant key", src: `const k = 'a'; expect({ [k]: 1 })`, want: true},
		{name: "object with computed dynamic key", src: `expect({ [key()]: 1 })`, want: false},
		{name: "member chain", src: `const obj = { a: { b: 1 } }; expect(obj.a.b)`, want: true},
		{name: "missing property", src: `const obj = { a: 1 }; expect(obj.b)`, want: false},
		{name: "member of nested member", src: `const obj = { a: { b: 1 } }; expect(obj.a.c)`, want: true},
		{name: "computed constant key", src: `const obj = { a: 1 }; const k = 'a'; expect(obj[k])`, want: true},
		{name: "computed dynamic key", src: `const obj = { a: 1 }; expect(obj[key()])`, want: false},
		{name: "array index", src: `const arr = [1, 2]; expect(arr[1])`, want: true},
		{name: "array index out of range", src: `const arr = [1, 2]; expect(arr[5])`, want: false},
		{name: "array index from variable", src: `const arr = [1, 2]; const i = 0; expect(arr[i])`, want: false},
		{name: "literal receiver", src: `expect('abc'.length)`, want: false},
		{name: "member of call", src: `expect(f().a)`, want: false},
		{name: "member of parameter", src: `function f(p) { expect(p.a); }`, want: false},
		{name: "object destructuring", src: `const { prop } = { prop: 5 }; expect(prop)`, want: true},
		{name: "renamed destructuring", src: `const { prop: alias } = { prop: 'v' }; expect(alias)`, want: true},
		{name: "array destructuring", src: `const [a, b] = [1, 2]; expect(b)`, want: true},
		{name: "array destructuring of dynamic aggregate", src: `const [a, b] = [1, g()]; expect(a)`, want: false},
		{name: "nested destructuring", src: `const { a: { b } } = { a: { b: 1 } }; expect(b)`, want: true},
		{name: "destructuring a variable", src: `const src = { p: 1 }; const { p } = src; expect(p)`, want: true},
		{name: "destructuring a call", src: `const { p } = load(); expect(p)`, want: false},
		{name: "constant default", src: `const { q = 2 } = { p: 1 }; expect(q)`, want: true},
		{name: "dynamic default", src: `const { q = f() } = { p: 1 }; expect(q)`, want: false},
		{name: "rest element", src: `const { ...rest } = { a: 1 }; expect(rest)`, want: true},
		{name: "as const", src: `const x = 1 as const; expect(x)`, want: true},
		{name: "non-null assertion", src: `const v = 'a'; expect(v!)`, want: true},
		{name: "unresolved import", src: `import { LIMIT } from './constants'; expect(LIMIT)`, want: false},
		{name: "shadowed by parameter", src: `const x = 1; function f(x) { expect(x); }`, want: false},
		{name: "opaque expression", src: `expect(1 + 2)`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, subject := subjectOf(t, tt.src)
			ev := NewConstantEvaluator(scope.NewResolver(), nil)
			assert.Equal(t, tt.want, ev.IsConstant(subject, f.Path))
		})
	}
}

func TestConstantEvaluatorIndependentCalls(t *testing.T) {
	f, subject := subjectOf(t, `const a = { x: 1 }; const b = [a, a, a]; expect(b)`)
	ev := NewConstantEvaluator(nil, nil)

	assert.True(t, ev.IsConstant(subject, f.Path))
	assert.True(t, ev.IsConstant(subject, f.Path), "repeated calls start from a fresh path")
	assert.False(t, ev.IsConstant(nil, f.Path))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "boolean", src: `expect(true)`, want: "true"},
		{name: "string", src: `expect('hello')`, want: "'hello'"},
		{name: "null", src: `expect(null)`, want: "null"},
		{name: "number", src: `expect(1.5)`, want: "1.5"},
		{name: "hex number", src: `expect(0x10)`, want: "16"},
		{name: "variable", src: `expect(x)`, want: "variable 'x'"},
		{name: "member chain", src: `expect(obj.a.b)`, want: "variable 'obj'.a.b"},
		{name: "computed member", src: `expect(obj['a'])`, want: "constant"},
		{name: "array", src: `expect([1])`, want: "constant"},
		{name: "type assertion", src: `expect(x as number)`, want: "variable 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, subject := subjectOf(t, tt.src)
			assert.Equal(t, tt.want, Describe(subject))
		})
	}
}
