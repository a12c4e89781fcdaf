package jslint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/modules"
)

func callRule() Rule {
	return NodeRule("call", "Reports calls", []ast.Kind{ast.KindCallExpression},
		func(ctx *Context, node ast.Node) []Issue {
			return []Issue{NewIssue("call", SeverityInfo, "call in "+ctx.Path(), node.Location())}
		})
}

func TestLint(t *testing.T) {
	ctx := NewContext(parseFile(t, `f(); g();`))
	invalid := SimpleRule("invalid", "Reports an invalid issue", func(*Context) []Issue {
		return []Issue{{Rule: "invalid"}}
	})

	issues := Lint(ctx, callRule(), invalid)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, "call", issue.Rule)
	}
	assert.Empty(t, Lint(ctx))
}

func TestLintFiles(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, memFS.WriteFile("src/a.ts", []byte("f();\n"), 0o644))
	require.NoError(t, memFS.WriteFile("src/b.ts", []byte("import { x } from './a';\ng(x); h();\n"), 0o644))
	project := modules.NewProject(modules.WithFilesystem(memFS))

	t.Run("lints every file", func(t *testing.T) {
		issues, err := LintFiles(context.Background(), project, []string{"src/a.ts", "src/b.ts"}, callRule())
		require.NoError(t, err)
		require.Len(t, issues, 3)
		assert.Equal(t, "call in src/a.ts", issues[0].Message)
		assert.Equal(t, "call in src/b.ts", issues[2].Message)
		assert.Equal(t, 2, issues[1].Location.StartLine)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LintFiles(context.Background(), project, []string{"src/missing.ts"}, callRule())
		assert.Error(t, err)
	})

	t.Run("nil project", func(t *testing.T) {
		_, err := LintFiles(context.Background(), nil, []string{"src/a.ts"}, callRule())
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := LintFiles(cancelled, modules.NewProject(modules.WithFilesystem(memFS)), []string{"src/a.ts"}, callRule())
		assert.Error(t, err)
	})
}
