package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

func TestNoConstantAssertionRule(t *testing.T) {
	rule := NewNoConstantAssertionRule()
	assert.Equal(t, "no-constant-assertion", rule.Name())
	assert.NotEmpty(t, rule.Description())

	tests := []struct {
		name       string
		src        string
		wantValues []string
	}{
		{
			name:       "literal subject",
			src:        `test('t', () => { expect(true).toBe(true); })`,
			wantValues: []string{"true"},
		},
		{
			name:       "computed subject",
			src:        `test('t', () => { const x = compute(); expect(x).toBe(1); })`,
			wantValues: nil,
		},
		{
			name:       "destructured literal",
			src:        `test('t', () => { const { prop } = { prop: 5 }; expect(prop).toBe(5); })`,
			wantValues: []string{"variable 'prop'"},
		},
		{
			name: "one constant and one dynamic assertion",
			src: `
it('t', () => {
  const result = run();
  expect(result).toEqual({ ok: true });
  expect('fixed').toBe('fixed');
});`,
			wantValues: []string{"'fixed'"},
		},
		{
			name:       "member chain",
			src:        `test('t', () => { const obj = { a: { b: 1 } }; expect(obj.a.b).toBe(1); })`,
			wantValues: []string{"variable 'obj'.a.b"},
		},
		{
			name:       "negated matcher",
			src:        `test('t', () => { expect(null).not.toBeUndefined(); })`,
			wantValues: []string{"null"},
		},
		{
			name:       "constant from module scope",
			src:        "const LIMIT = 10;\ntest('t', () => { expect(LIMIT).toBe(10); })",
			wantValues: []string{"variable 'LIMIT'"},
		},
		{
			name:       "parameter of each table",
			src:        `test.each([1, 2])('t %d', (n) => { expect(n).toBeGreaterThan(0); })`,
			wantValues: nil,
		},
		{
			name:       "skipped test",
			src:        `test.skip('t', () => { expect(42).toBe(42); })`,
			wantValues: []string{"42"},
		},
		{
			name:       "assertion in nested closure",
			src:        `it('t', async () => { await act(() => { expect('x').toBe('x'); }); })`,
			wantValues: []string{"'x'"},
		},
		{
			name:       "outside any test",
			src:        `expect(true).toBe(true);`,
			wantValues: nil,
		},
		{
			name:       "describe is not a test",
			src:        `describe('s', () => { expect(1).toBe(1); })`,
			wantValues: nil,
		},
		{
			name:       "callback passed by reference",
			src:        `function body() { expect(1).toBe(1); } test('t', body);`,
			wantValues: nil,
		},
		{
			name:       "bare expect call",
			src:        `test('t', () => { expect(1); })`,
			wantValues: nil,
		},
		{
			name:       "self referencing constant",
			src:        `test('t', () => { const x = x; expect(x).toBe(1); })`,
			wantValues: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := check(t, rule, tt.src)
			require.Len(t, issues, len(tt.wantValues))
			for i, issue := range issues {
				assert.Equal(t, "no-constant-assertion", issue.Rule)
				assert.Equal(t, jslint.SeverityError, issue.Severity)
				assert.Equal(t, MessageConstantAssertion, issue.MessageID)
				assert.Equal(t, tt.wantValues[i], issue.Data["value"])
				assert.Equal(t,
					"Assertion on constant value "+tt.wantValues[i]+" always produces the same result",
					issue.Message)
			}
		})
	}
}

func TestNoConstantAssertionLocation(t *testing.T) {
	src := "test('t', () => {\n  const x = run();\n  expect(x).toBe(1);\n  expect(1).toBe(1);\n});\n"
	issues := check(t, NewNoConstantAssertionRule(), src)
	require.Len(t, issues, 1)
	require.NotNil(t, issues[0].Location)
	assert.Equal(t, 4, issues[0].Location.StartLine)
	assert.Equal(t, 2, issues[0].Location.StartColumn)
}

func TestNoConstantAssertionNestedTests(t *testing.T) {
	src := `test('outer', () => { test('inner', () => { expect(1).toBe(1); }); })`
	issues := check(t, NewNoConstantAssertionRule(), src)
	assert.Len(t, issues, 1)
}

func TestNoConstantAssertionCyclicDestructuring(t *testing.T) {
	src := `
const { a } = b;
const { b } = a;
const { [a]: v } = { x: 1 };
test('t', () => {
  expect(v).toBe(1);
  expect(a).toBe(1);
});`

	issues := check(t, NewNoConstantAssertionRule(), src)
	require.Len(t, issues, 1)
	assert.Equal(t, "variable 'v'", issues[0].Data["value"])
}

func TestNoConstantAssertionOptions(t *testing.T) {
	src := `
spec('t', () => {
  assertThat(1).isEqualTo(1);
  expect(2).toBe(2);
});`

	t.Run("defaults ignore unknown entries", func(t *testing.T) {
		assert.Empty(t, check(t, NewNoConstantAssertionRule(), src))
	})

	t.Run("custom test and assertion names", func(t *testing.T) {
		rule := NewNoConstantAssertionRule(WithTestNames("spec"), WithAssertionNames("assertThat"))
		issues := check(t, rule, src)
		require.Len(t, issues, 1)
		assert.Equal(t, "1", issues[0].Data["value"])
	})
}

const projectFixture = `
-- /project/src/constants.ts --
export const LIMIT = 10;
export const CONFIG = { retries: 3, nested: { deep: 'x' } };
export let counter = 0;
export function bump() { counter++; }
export function make() { return 1; }
export const computed = make();
export default 'fallback';
-- /project/src/reexport.ts --
export { LIMIT as MAX } from './constants';
-- /project/src/cycle-a.ts --
import { B } from './cycle-b';
export const A = B;
-- /project/src/cycle-b.ts --
import { A } from './cycle-a';
export const B = A;
-- /project/src/app.test.ts --
import fallback, { LIMIT, CONFIG, counter, make, computed, nope } from './constants';
import * as ns from './constants';
import { MAX } from './reexport';
import { A } from './cycle-a';
import { external } from 'lodash';

test('imports', () => {
  expect(LIMIT).toBe(10);
  expect(CONFIG.retries).toBe(3);
  expect(CONFIG.nested.deep).toBe('x');
  expect(counter).toBe(0);
  expect(make).toBeDefined();
  expect(computed).toBe(1);
  expect(MAX).toBe(10);
  expect(fallback).toBe('fallback');
  expect(ns.LIMIT).toBe(10);
  expect(A).toBeUndefined();
  expect(nope).toBeUndefined();
  expect(external).toBeDefined();
});
`

func TestNoConstantAssertionAcrossModules(t *testing.T) {
	project := newProject(t, projectFixture)

	t.Run("with module resolution", func(t *testing.T) {
		issues, err := jslint.LintFiles(context.Background(), project,
			[]string{"/project/src/app.test.ts"}, NewNoConstantAssertionRule())
		require.NoError(t, err)

		assert.Equal(t, []string{
			"variable 'LIMIT'",
			"variable 'CONFIG'.retries",
			"variable 'CONFIG'.nested.deep",
			"variable 'MAX'",
			"variable 'fallback'",
			"variable 'ns'.LIMIT",
		}, values(issues))
		for _, issue := range issues {
			assert.Equal(t, "/project/src/app.test.ts", issue.Location.File)
		}
	})

	t.Run("without module resolution", func(t *testing.T) {
		f, err := project.File(context.Background(), "/project/src/app.test.ts")
		require.NoError(t, err)

		issues := NewNoConstantAssertionRule().Check(jslint.NewContext(f))
		assert.Empty(t, issues)
	})

	t.Run("evaluator follows the import cycle to a stop", func(t *testing.T) {
		f, err := project.File(context.Background(), "/project/src/cycle-a.ts")
		require.NoError(t, err)

		decl := f.Program.Body[1].(*ast.ExportNamedDeclaration).Declaration.(*ast.VariableDeclaration)
		ev := NewConstantEvaluator(nil, project)
		assert.False(t, ev.IsConstant(decl.Declarations[0].Init, f.Path))
	})
}
