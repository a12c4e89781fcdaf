package design

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// MessageNoInterface is the message id of no-interface issues.
const MessageNoInterface = "noInterface"

const noInterfaceTemplate = `Interface "{{interfaceName}}" should be a type alias instead. ` +
	`Use "type {{interfaceName}} = { ... }" instead.`

// NewNoInterfaceRule creates a rule that reports interface declarations.
//
//nolint:ireturn // Builder functions should return interfaces
func NewNoInterfaceRule() jslint.Rule {
	const name = "no-interface"
	return jslint.NodeRule(
		name,
		"Disallow interface declarations",
		[]ast.Kind{ast.KindInterfaceDeclaration},
		func(_ *jslint.Context, node ast.Node) []jslint.Issue {
			decl := node.(*ast.InterfaceDeclaration)
			var interfaceName string
			if decl.ID != nil {
				interfaceName = decl.ID.Name
			}
			return []jslint.Issue{jslint.IssueAt(name, jslint.SeverityWarning, node, MessageNoInterface,
				noInterfaceTemplate, map[string]interface{}{"interfaceName": interfaceName})}
		},
	)
}
