package jslint

import (
	"context"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/modules"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/scope"
)

// Lint runs every rule against ctx and returns the valid issues they report,
// rule by rule.
func Lint(ctx *Context, rules ...Rule) []Issue {
	var issues []Issue
	for _, rule := range rules {
		for _, issue := range rule.Check(ctx) {
			if !issue.IsValid() {
				if ctx.Logger != nil {
					ctx.Logger.Debug("dropping invalid issue", "rule", rule.Name(), "path", ctx.Path())
				}
				continue
			}
			issues = append(issues, issue)
		}
	}
	return issues
}

// LintFiles loads paths through project and lints each of them with rules.
// Imports are resolved through the same project. Files are parsed
// concurrently; rules then run file by file.
func LintFiles(ctx context.Context, project *modules.Project, paths []string, rules ...Rule) ([]Issue, error) {
	if project == nil {
		return nil, errors.New(errors.CodeInvalidInput, "project is required")
	}
	if err := project.Preload(ctx, paths...); err != nil {
		return nil, err
	}

	bindings := scope.NewResolver()
	var issues []Issue
	for _, path := range paths {
		file, err := project.File(ctx, path)
		if err != nil {
			return nil, err
		}
		lintCtx := NewContext(file, WithBindings(bindings), WithModules(project))
		issues = append(issues, Lint(lintCtx, rules...)...)
	}
	return issues, nil
}
