package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
)

// firstOf returns the first node of type T in pre-order.
func firstOf[T ast.Node](t *testing.T, root ast.Node) T {
	t.Helper()
	var found T
	done := false
	ast.Walk(root, func(n ast.Node) bool {
		if done {
			return false
		}
		if v, ok := n.(T); ok {
			found = v
			done = true
			return false
		}
		return true
	})
	require.True(t, done, "no %T in tree", found)
	return found
}

func allOf[T ast.Node](root ast.Node) []T {
	var out []T
	ast.Walk(root, func(n ast.Node) bool {
		if v, ok := n.(T); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

func TestParseString(t *testing.T) {
	t.Run("variable declarations and literals", func(t *testing.T) {
		file, err := ParseString(`const a = 'hi', b = 42; let c = null; var d = true;`)
		require.NoError(t, err)
		require.Len(t, file.Program.Body, 3)

		decls := allOf[*ast.VariableDeclaration](file.Program)
		require.Len(t, decls, 3)
		assert.Equal(t, "const", decls[0].DeclKind)
		assert.Equal(t, "let", decls[1].DeclKind)
		assert.Equal(t, "var", decls[2].DeclKind)
		require.Len(t, decls[0].Declarations, 2)

		lits := allOf[*ast.Literal](file.Program)
		require.Len(t, lits, 4)
		assert.Equal(t, ast.LiteralString, lits[0].LitKind)
		assert.Equal(t, "hi", lits[0].Value)
		assert.Equal(t, ast.LiteralNumber, lits[1].LitKind)
		assert.Equal(t, 42.0, lits[1].Value)
		assert.Equal(t, ast.LiteralNull, lits[2].LitKind)
		assert.Equal(t, true, lits[3].Value)
	})

	t.Run("call and member expressions", func(t *testing.T) {
		file, err := ParseString(`expect(value).not.toBe(1);`)
		require.NoError(t, err)

		stmt, ok := file.Program.Body[0].(*ast.ExpressionStatement)
		require.True(t, ok)
		outer, ok := stmt.Expression.(*ast.CallExpression)
		require.True(t, ok)

		matcher, ok := outer.Callee.(*ast.MemberExpression)
		require.True(t, ok)
		assert.False(t, matcher.Computed)
		assert.Equal(t, "toBe", matcher.Property.(*ast.Identifier).Name)

		modifier, ok := matcher.Object.(*ast.MemberExpression)
		require.True(t, ok)
		assert.Equal(t, "not", modifier.Property.(*ast.Identifier).Name)

		entry, ok := modifier.Object.(*ast.CallExpression)
		require.True(t, ok)
		assert.Equal(t, "expect", entry.Callee.(*ast.Identifier).Name)
		require.Len(t, entry.Arguments, 1)
	})

	t.Run("computed member access", func(t *testing.T) {
		file, err := ParseString(`x[0]; y['k'];`)
		require.NoError(t, err)

		members := allOf[*ast.MemberExpression](file.Program)
		require.Len(t, members, 2)
		assert.True(t, members[0].Computed)
		assert.Equal(t, 0.0, members[0].Property.(*ast.Literal).Value)
		assert.Equal(t, "k", members[1].Property.(*ast.Literal).Value)
	})

	t.Run("array holes and spread", func(t *testing.T) {
		file, err := ParseString(`const a = [1, , 3, ...rest];`)
		require.NoError(t, err)

		arr := firstOf[*ast.ArrayExpression](t, file.Program)
		require.Len(t, arr.Elements, 4)
		assert.NotNil(t, arr.Elements[0])
		assert.Nil(t, arr.Elements[1])
		assert.IsType(t, &ast.SpreadElement{}, arr.Elements[3])
	})

	t.Run("object literal members", func(t *testing.T) {
		file, err := ParseString(`const o = { a: 1, 'b': 2, [k]: 3, c, ...d, m() { return 1; } };`)
		require.NoError(t, err)

		obj := firstOf[*ast.ObjectExpression](t, file.Program)
		require.Len(t, obj.Properties, 6)

		a := obj.Properties[0].(*ast.Property)
		assert.Equal(t, "a", a.Key.(*ast.Identifier).Name)
		assert.False(t, a.Computed)

		b := obj.Properties[1].(*ast.Property)
		assert.Equal(t, "b", b.Key.(*ast.Literal).Value)

		k := obj.Properties[2].(*ast.Property)
		assert.True(t, k.Computed)

		c := obj.Properties[3].(*ast.Property)
		assert.True(t, c.Shorthand)

		assert.IsType(t, &ast.SpreadElement{}, obj.Properties[4])

		m := obj.Properties[5].(*ast.Property)
		assert.True(t, m.Method)
		assert.IsType(t, &ast.FunctionExpression{}, m.Value)
	})

	t.Run("destructuring patterns", func(t *testing.T) {
		file, err := ParseString(`const { a, b: { c }, d = 1, ...rest } = obj; const [x, , y = 2, ...zs] = arr;`)
		require.NoError(t, err)

		decls := allOf[*ast.VariableDeclarator](file.Program)
		require.Len(t, decls, 2)

		obj, ok := decls[0].ID.(*ast.ObjectPattern)
		require.True(t, ok)
		require.Len(t, obj.Properties, 4)
		assert.True(t, obj.Properties[0].(*ast.Property).Shorthand)
		assert.IsType(t, &ast.ObjectPattern{}, obj.Properties[1].(*ast.Property).Value)
		assert.IsType(t, &ast.AssignmentPattern{}, obj.Properties[2].(*ast.Property).Value)
		assert.IsType(t, &ast.RestElement{}, obj.Properties[3])

		arr, ok := decls[1].ID.(*ast.ArrayPattern)
		require.True(t, ok)
		require.Len(t, arr.Elements, 4)
		assert.Nil(t, arr.Elements[1])
		assert.IsType(t, &ast.AssignmentPattern{}, arr.Elements[2])
		assert.IsType(t, &ast.RestElement{}, arr.Elements[3])
	})

	t.Run("functions", func(t *testing.T) {
		file, err := ParseString(`
function f(a, b = 1) { return a; }
const g = async (x: number) => x;
const h = function named() {};
`)
		require.NoError(t, err)

		fd := firstOf[*ast.FunctionDeclaration](t, file.Program)
		assert.Equal(t, "f", fd.ID.Name)
		require.Len(t, fd.Params, 2)
		assert.IsType(t, &ast.AssignmentPattern{}, fd.Params[1])

		arrow := firstOf[*ast.ArrowFunctionExpression](t, file.Program)
		assert.True(t, arrow.Async)
		assert.True(t, arrow.Expression)
		require.Len(t, arrow.Params, 1)
		assert.Equal(t, "x", arrow.Params[0].(*ast.Identifier).Name)

		fe := firstOf[*ast.FunctionExpression](t, file.Program)
		require.NotNil(t, fe.ID)
		assert.Equal(t, "named", fe.ID.Name)
	})

	t.Run("imports and exports", func(t *testing.T) {
		file, err := ParseString(`
import def, { a, b as c } from './mod';
import * as ns from './ns';
export const X = 1;
export { X as Y };
export { z } from './z';
export * from './all';
export default 42;
`)
		require.NoError(t, err)

		imports := allOf[*ast.ImportDeclaration](file.Program)
		require.Len(t, imports, 2)
		assert.Equal(t, "./mod", imports[0].Source.Value)
		require.Len(t, imports[0].Specifiers, 3)
		assert.IsType(t, &ast.ImportDefaultSpecifier{}, imports[0].Specifiers[0])
		aliased := imports[0].Specifiers[2].(*ast.ImportSpecifier)
		assert.Equal(t, "b", aliased.Imported.(*ast.Identifier).Name)
		assert.Equal(t, "c", aliased.Local.Name)
		assert.IsType(t, &ast.ImportNamespaceSpecifier{}, imports[1].Specifiers[0])

		named := allOf[*ast.ExportNamedDeclaration](file.Program)
		require.Len(t, named, 3)
		assert.IsType(t, &ast.VariableDeclaration{}, named[0].Declaration)
		require.Len(t, named[1].Specifiers, 1)
		assert.Equal(t, "X", named[1].Specifiers[0].Local.Name)
		assert.Equal(t, "Y", named[1].Specifiers[0].Exported.Name)
		require.NotNil(t, named[2].Source)
		assert.Equal(t, "./z", named[2].Source.Value)

		all := firstOf[*ast.ExportAllDeclaration](t, file.Program)
		assert.Equal(t, "./all", all.Source.Value)

		def := firstOf[*ast.ExportDefaultDeclaration](t, file.Program)
		assert.Equal(t, 42.0, def.Declaration.(*ast.Literal).Value)
	})

	t.Run("anonymous default class", func(t *testing.T) {
		file, err := ParseString(`export default class {}`)
		require.NoError(t, err)

		def := firstOf[*ast.ExportDefaultDeclaration](t, file.Program)
		class, ok := def.Declaration.(*ast.ClassDeclaration)
		require.True(t, ok)
		assert.Nil(t, class.ID)
		assert.Same(t, def, class.Parent())
	})

	t.Run("statements", func(t *testing.T) {
		file, err := ParseString(`
try { a(); } catch (e) { b(); } finally { c(); }
if (x) { y(); } else z();
switch (v) { case 1: one(); break; default: other(); }
const t = cond ? 1 : 2;
`)
		require.NoError(t, err)

		try := firstOf[*ast.TryStatement](t, file.Program)
		require.NotNil(t, try.Handler)
		assert.Equal(t, "e", try.Handler.Param.(*ast.Identifier).Name)
		require.NotNil(t, try.Finalizer)

		ifStmt := firstOf[*ast.IfStatement](t, file.Program)
		assert.IsType(t, &ast.Identifier{}, ifStmt.Test)
		assert.IsType(t, &ast.ExpressionStatement{}, ifStmt.Alternate)

		sw := firstOf[*ast.SwitchStatement](t, file.Program)
		require.Len(t, sw.Cases, 2)
		assert.NotNil(t, sw.Cases[0].Test)
		assert.Len(t, sw.Cases[0].Consequent, 2)
		assert.Nil(t, sw.Cases[1].Test)

		firstOf[*ast.ConditionalExpression](t, file.Program)
	})

	t.Run("classes and interfaces", func(t *testing.T) {
		file, err := ParseString(`
interface Shape { area(): number }
class Base {}
class Square extends Base implements Shape {
  constructor(private side: number) { super(); }
  area() { return this.side * this.side; }
}
`)
		require.NoError(t, err)

		iface := firstOf[*ast.InterfaceDeclaration](t, file.Program)
		assert.Equal(t, "Shape", iface.ID.Name)

		classes := allOf[*ast.ClassDeclaration](file.Program)
		require.Len(t, classes, 2)
		assert.Nil(t, classes[0].SuperClass)
		require.NotNil(t, classes[1].SuperClass)
		assert.Equal(t, "Base", classes[1].SuperClass.(*ast.Identifier).Name)

		methods := allOf[*ast.MethodDefinition](file.Program)
		require.Len(t, methods, 2)
		assert.Equal(t, "constructor", methods[0].MethodKind)
		assert.Equal(t, "area", methods[1].Key.(*ast.Identifier).Name)
	})

	t.Run("type assertions are kept transparent", func(t *testing.T) {
		file, err := ParseString(`const a = (x as number); const b = y!; const c = z satisfies string;`)
		require.NoError(t, err)

		asserts := allOf[*ast.TypeAssertion](file.Program)
		require.Len(t, asserts, 3)
		assert.Equal(t, "as", asserts[0].Operator)
		assert.Equal(t, "!", asserts[1].Operator)
		assert.Equal(t, "satisfies", asserts[2].Operator)
		assert.Equal(t, "x", ast.Unwrap(asserts[0]).(*ast.Identifier).Name)
	})

	t.Run("template literals", func(t *testing.T) {
		file, err := ParseString("const s = `a${b}c\\n`;")
		require.NoError(t, err)

		tl := firstOf[*ast.TemplateLiteral](t, file.Program)
		assert.Equal(t, []string{"a", "c\n"}, tl.Quasis)
		require.Len(t, tl.Expressions, 1)
		assert.Equal(t, "b", tl.Expressions[0].(*ast.Identifier).Name)
	})

	t.Run("parents are linked", func(t *testing.T) {
		file, err := ParseString(`const a = [1];`)
		require.NoError(t, err)

		lit := firstOf[*ast.Literal](t, file.Program)
		require.NotNil(t, lit.Parent())
		assert.Equal(t, ast.KindArrayExpression, lit.Parent().Kind())
		assert.Same(t, file.Program, ast.ProgramOf(lit))
	})

	t.Run("source locations", func(t *testing.T) {
		file, err := ParseString("\n  foo();")
		require.NoError(t, err)

		call := firstOf[*ast.CallExpression](t, file.Program)
		loc := call.Location()
		assert.Equal(t, DefaultName, loc.File)
		assert.Equal(t, 2, loc.StartLine)
		assert.Equal(t, 2, loc.StartColumn)
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("lenient mode keeps going", func(t *testing.T) {
		file, err := ParseString(`const = ;`)
		require.NoError(t, err)
		assert.NotNil(t, file.Program)
	})

	t.Run("strict mode fails on syntax errors", func(t *testing.T) {
		_, err := ParseStringWithOptions(`const = ;`, &ParseOptions{StrictMode: true})
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeParseFailed))
	})

	t.Run("reader", func(t *testing.T) {
		file, err := ParseReader(strings.NewReader(`let a = 1;`), "mod.js")
		require.NoError(t, err)
		assert.Equal(t, ast.DialectJavaScript, file.Dialect)
		assert.Equal(t, "mod.js", file.Path)
	})
}

func TestDialectForPath(t *testing.T) {
	tests := map[string]ast.Dialect{
		"a.ts":      ast.DialectTypeScript,
		"a.mts":     ast.DialectTypeScript,
		"a.tsx":     ast.DialectTSX,
		"a.js":      ast.DialectJavaScript,
		"a.jsx":     ast.DialectJavaScript,
		"a.cjs":     ast.DialectJavaScript,
		"no-suffix": ast.DialectTypeScript,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, DialectForPath(path))
		})
	}
}

func TestLiteralDecoding(t *testing.T) {
	t.Run("escapes", func(t *testing.T) {
		assert.Equal(t, "a\nb", unquote(`'a\nb'`))
		assert.Equal(t, "it's", unquote(`'it\'s'`))
		assert.Equal(t, "A", unquote(`"\x41"`))
		assert.Equal(t, "é", unquote(`"é"`))
		assert.Equal(t, "😀", unquote(`"\u{1F600}"`))
		assert.Equal(t, "q", unquote(`"\q"`))
	})

	t.Run("numbers", func(t *testing.T) {
		assert.Equal(t, 255.0, parseNumber("0xff"))
		assert.Equal(t, 8.0, parseNumber("0o10"))
		assert.Equal(t, 5.0, parseNumber("0b101"))
		assert.Equal(t, 1000000.0, parseNumber("1_000_000"))
		assert.Equal(t, 0.5, parseNumber(".5"))
		assert.Equal(t, 8.0, parseNumber("010"))
		assert.True(t, math.IsNaN(parseNumber("zz")))
	})
}
