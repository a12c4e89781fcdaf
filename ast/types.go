// Package ast provides the syntax tree model the rules operate on.
// Nodes follow the ESTree shape for the constructs the rules inspect and
// collapse every other construct into an Opaque node that keeps its children.
package ast

// SourceLocation represents a position in the source file.
type SourceLocation struct {
	File        string // Source file path
	StartLine   int    // 1-based line number where element starts
	StartColumn int    // 0-based column where element starts
	EndLine     int    // 1-based line number where element ends
	EndColumn   int    // 0-based column where element ends
}

// Kind represents the type of a syntax node.
type Kind int

// Node kinds enumeration
const (
	KindUnknown Kind = iota
	KindProgram
	KindIdentifier
	KindLiteral
	KindTemplateLiteral
	KindCallExpression
	KindNewExpression
	KindMemberExpression
	KindObjectExpression
	KindProperty
	KindArrayExpression
	KindSpreadElement
	KindArrowFunctionExpression
	KindFunctionExpression
	KindFunctionDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindAssignmentExpression
	KindUpdateExpression
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportSpecifier
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindBlockStatement
	KindExpressionStatement
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindIfStatement
	KindSwitchStatement
	KindSwitchCase
	KindConditionalExpression
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindInterfaceDeclaration
	KindThisExpression
	KindTypeAssertion
	KindOpaque
)

// kindNames maps Kind to its ESTree type name
var kindNames = map[Kind]string{
	KindProgram:                  "Program",
	KindIdentifier:               "Identifier",
	KindLiteral:                  "Literal",
	KindTemplateLiteral:          "TemplateLiteral",
	KindCallExpression:           "CallExpression",
	KindNewExpression:            "NewExpression",
	KindMemberExpression:         "MemberExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindArrayExpression:          "ArrayExpression",
	KindSpreadElement:            "SpreadElement",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindFunctionExpression:       "FunctionExpression",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindAssignmentPattern:        "AssignmentPattern",
	KindRestElement:              "RestElement",
	KindAssignmentExpression:     "AssignmentExpression",
	KindUpdateExpression:         "UpdateExpression",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindExportNamedDeclaration:   "ExportNamedDeclaration",
	KindExportSpecifier:          "ExportSpecifier",
	KindExportDefaultDeclaration: "ExportDefaultDeclaration",
	KindExportAllDeclaration:     "ExportAllDeclaration",
	KindBlockStatement:           "BlockStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindReturnStatement:          "ReturnStatement",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindCatchClause:              "CatchClause",
	KindIfStatement:              "IfStatement",
	KindSwitchStatement:          "SwitchStatement",
	KindSwitchCase:               "SwitchCase",
	KindConditionalExpression:    "ConditionalExpression",
	KindClassDeclaration:         "ClassDeclaration",
	KindClassExpression:          "ClassExpression",
	KindClassBody:                "ClassBody",
	KindMethodDefinition:         "MethodDefinition",
	KindInterfaceDeclaration:     "TSInterfaceDeclaration",
	KindThisExpression:           "ThisExpression",
	KindTypeAssertion:            "TSAsExpression",
	KindOpaque:                   "Opaque",
}

// String returns the ESTree type name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// LiteralKind distinguishes the runtime type of a Literal.
type LiteralKind int

// Literal kinds enumeration
const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBoolean
	LiteralNull
	LiteralRegExp
	LiteralBigInt
)

// Dialect selects the grammar a file is parsed with.
type Dialect int

// Dialects enumeration
const (
	DialectAuto Dialect = iota
	DialectTypeScript
	DialectTSX
	DialectJavaScript
)

// String returns the name of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectAuto:
		return "auto"
	case DialectTypeScript:
		return "typescript"
	case DialectTSX:
		return "tsx"
	case DialectJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// File is a parsed source file. Path is the file identity used by module
// resolution.
type File struct {
	Path    string
	Dialect Dialect
	Source  []byte
	Program *Program
}
