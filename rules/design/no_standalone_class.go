package design

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// MessageStandaloneClass is the message id of no-standalone-class issues.
const MessageStandaloneClass = "standaloneClass"

const standaloneClassTemplate = `Class "{{className}}" does not extend another class. ` +
	`Use functions and types instead, or extend an existing class.`

// NewNoStandaloneClassRule creates a rule that reports class declarations
// without an extends clause.
//
//nolint:ireturn // Builder functions should return interfaces
func NewNoStandaloneClassRule() jslint.Rule {
	const name = "no-standalone-class"
	return jslint.NodeRule(
		name,
		"Disallow classes that do not extend another class",
		[]ast.Kind{ast.KindClassDeclaration},
		func(_ *jslint.Context, node ast.Node) []jslint.Issue {
			decl := node.(*ast.ClassDeclaration)
			if decl.SuperClass != nil {
				return nil
			}
			className := "anonymous class"
			if decl.ID != nil {
				className = decl.ID.Name
			}
			return []jslint.Issue{jslint.IssueAt(name, jslint.SeverityWarning, node, MessageStandaloneClass,
				standaloneClassTemplate, map[string]interface{}{"className": className})}
		},
	)
}
