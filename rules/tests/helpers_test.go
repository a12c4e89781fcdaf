package tests

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/modules"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/parser"
)

// check parses src as a single file and runs rule over it.
func check(t *testing.T, rule jslint.Rule, src string) []jslint.Issue {
	t.Helper()
	f, err := parser.ParseString(src)
	require.NoError(t, err)
	return rule.Check(jslint.NewContext(f))
}

// newProject materializes a txtar archive into an in-memory project.
func newProject(t *testing.T, archive string) *modules.Project {
	t.Helper()
	memFS := billy.NewInMemoryFS()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		require.NoError(t, memFS.WriteFile(f.Name, f.Data, 0o644))
	}
	return modules.NewProject(modules.WithFilesystem(memFS))
}

// values returns the rendered value of each constant assertion issue.
func values(issues []jslint.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		v, _ := issue.Data["value"].(string)
		out = append(out, v)
	}
	return out
}
