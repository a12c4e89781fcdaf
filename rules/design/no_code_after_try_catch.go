package design

import (
	"github.com/input-output-hk/catalyst-forge-libs/jslint"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// MessageCodeAfterTryCatch is the message id of no-code-after-try-catch issues.
const MessageCodeAfterTryCatch = "codeAfterTryCatch"

const codeAfterTryCatchMessage = "Code after try/catch/finally block. This appears to be an incorrect fallback. " +
	"Either return from within the try/catch blocks or refactor the code."

// NewNoCodeAfterTryCatchRule creates a rule that reports statements that
// follow a try in a function body, where they usually act as a silent
// fallback.
//
//nolint:ireturn // Builder functions should return interfaces
func NewNoCodeAfterTryCatchRule() jslint.Rule {
	const name = "no-code-after-try-catch"
	return jslint.NodeRule(
		name,
		"Disallow code after try/catch/finally blocks in functions",
		[]ast.Kind{ast.KindTryStatement},
		func(_ *jslint.Context, node ast.Node) []jslint.Issue {
			if !codeAfterTry(node.(*ast.TryStatement)) {
				return nil
			}
			return []jslint.Issue{jslint.IssueAt(name, jslint.SeverityError, node,
				MessageCodeAfterTryCatch, codeAfterTryCatchMessage, nil)}
		},
	)
}

func codeAfterTry(try *ast.TryStatement) bool {
	block, ok := try.Parent().(*ast.BlockStatement)
	if !ok {
		return false
	}

	// a statement of a function body
	if ast.IsFunction(block.Parent()) {
		return followed(block, try)
	}

	// nested, but both the try and the catch leave the function
	if !exitsOnAllPaths(try) {
		return false
	}
	var stmt ast.Node = try
	for cur := stmt.Parent(); cur != nil; cur = cur.Parent() {
		if ast.IsFunction(cur) {
			return false
		}
		if body, ok := cur.(*ast.BlockStatement); ok && ast.IsFunction(body.Parent()) {
			return followed(body, stmt)
		}
		stmt = cur
	}
	return false
}

// followed reports whether stmt is a statement of block with more after it.
func followed(block *ast.BlockStatement, stmt ast.Node) bool {
	for i, s := range block.Body {
		if s == stmt {
			return i < len(block.Body)-1
		}
	}
	return false
}

func exitsOnAllPaths(try *ast.TryStatement) bool {
	if !endsWithExit(try.Block) {
		return false
	}
	if try.Handler != nil && !endsWithExit(try.Handler.Body) {
		return false
	}
	return true
}

func endsWithExit(block *ast.BlockStatement) bool {
	if block == nil || len(block.Body) == 0 {
		return false
	}
	switch block.Body[len(block.Body)-1].(type) {
	case *ast.ReturnStatement, *ast.ThrowStatement:
		return true
	}
	return false
}
