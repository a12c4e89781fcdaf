// Package design provides rules about how TypeScript code is structured:
// wrappers that add nothing, fallbacks after try blocks, interfaces and
// classes that stand alone.
package design

import (
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// MessageBareWrapper is the message id of no-bare-wrapper issues.
const MessageBareWrapper = "bareWrapper"

const bareWrapperTemplate = `Function "{{functionName}}" is a bare wrapper around "{{wrappedFunction}}". ` +
	`Call {{wrappedFunction}} directly or add additional logic.`

// NewNoBareWrapperRule creates a rule that reports functions whose only
// job is to call another function with their own parameters, unchanged.
//
//nolint:ireturn // Builder functions should return interfaces
func NewNoBareWrapperRule() jslint.Rule {
	const name = "no-bare-wrapper"
	return jslint.NodeRule(
		name,
		"Disallow functions that do nothing other than call another function with their own inputs",
		[]ast.Kind{ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindArrowFunctionExpression},
		func(_ *jslint.Context, node ast.Node) []jslint.Issue {
			call := wrappedCall(node)
			if call == nil {
				return nil
			}
			return []jslint.Issue{jslint.IssueAt(name, jslint.SeverityWarning, node, MessageBareWrapper,
				bareWrapperTemplate, map[string]interface{}{
					"functionName":    functionName(node),
					"wrappedFunction": calleeName(call),
				})}
		},
	)
}

// wrappedCall returns the call a bare wrapper forwards to, or nil.
func wrappedCall(fn ast.Node) *ast.CallExpression {
	var call *ast.CallExpression
	switch body := ast.FunctionBody(fn).(type) {
	case nil:
		return nil
	case *ast.BlockStatement:
		if len(body.Body) != 1 {
			return nil
		}
		ret, ok := body.Body[0].(*ast.ReturnStatement)
		if !ok {
			return nil
		}
		if call, ok = ret.Argument.(*ast.CallExpression); !ok {
			return nil
		}
	case *ast.CallExpression:
		call = body
	default:
		return nil
	}

	if !passesThrough(ast.FunctionParams(fn), call.Arguments) {
		return nil
	}
	return call
}

// passesThrough reports whether args are exactly the identifier params, in order.
func passesThrough(params, args []ast.Node) bool {
	if len(params) != len(args) {
		return false
	}
	for i := range params {
		p, ok := ast.IdentifierName(params[i])
		if !ok {
			return false
		}
		a, ok := ast.IdentifierName(args[i])
		if !ok || a != p {
			return false
		}
	}
	return true
}

func functionName(fn ast.Node) string {
	switch f := fn.(type) {
	case *ast.FunctionDeclaration:
		if f.ID != nil {
			return f.ID.Name
		}
	case *ast.FunctionExpression:
		if f.ID != nil {
			return f.ID.Name
		}
	case *ast.ArrowFunctionExpression:
		if d, ok := f.Parent().(*ast.VariableDeclarator); ok {
			if name, ok := ast.IdentifierName(d.ID); ok {
				return name
			}
		}
		return "arrow function"
	}

	if m, ok := fn.Parent().(*ast.MethodDefinition); ok {
		if name, ok := ast.IdentifierName(m.Key); ok {
			return name
		}
	}
	return "anonymous function"
}

// calleeName renders a callee as a dotted path such as this.service.load.
func calleeName(call *ast.CallExpression) string {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		return callee.Name
	case *ast.MemberExpression:
		var parts []string
		var cur ast.Node = callee
		for {
			m, ok := cur.(*ast.MemberExpression)
			if !ok {
				break
			}
			if name, ok := ast.IdentifierName(m.Property); ok {
				parts = append([]string{name}, parts...)
			}
			cur = m.Object
		}
		switch root := cur.(type) {
		case *ast.ThisExpression:
			parts = append([]string{"this"}, parts...)
		case *ast.Identifier:
			parts = append([]string{root.Name}, parts...)
		}
		return strings.Join(parts, ".")
	}
	return "unknown"
}
