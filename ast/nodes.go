package ast

// Node is implemented by every syntax tree node. The set of implementations
// is closed: Children dispatches over all of them.
type Node interface {
	// Kind returns the node's tag.
	Kind() Kind
	// Parent returns the enclosing node, or nil for the root and for nodes
	// that have not been linked.
	Parent() Node
	// Location returns the node's position in its source file.
	Location() *SourceLocation

	base() *Base
}

// Base holds the fields shared by all nodes. Parent is a non-owning back-edge
// set by Link.
type Base struct {
	Loc    SourceLocation
	parent Node
}

// Parent returns the enclosing node.
func (b *Base) Parent() Node { return b.parent }

// Location returns the node's source location.
func (b *Base) Location() *SourceLocation { return &b.Loc }

func (b *Base) base() *Base { return b }

// Program is the root of a file.
type Program struct {
	Base
	Path string
	Body []Node
}

// Identifier is a name reference or binding.
type Identifier struct {
	Base
	Name string
}

// Literal is a string, number, boolean, null, regular expression or bigint
// literal. Value holds a string, float64, bool or nil; regular expressions and
// bigints keep their source text in Value.
type Literal struct {
	Base
	LitKind LiteralKind
	Raw     string
	Value   interface{}
}

// TemplateLiteral is a backtick string. Quasis has one more element than
// Expressions.
type TemplateLiteral struct {
	Base
	Quasis      []string
	Expressions []Node
}

// CallExpression is a function call. Tagged templates are calls with a single
// TemplateLiteral argument.
type CallExpression struct {
	Base
	Callee    Node
	Arguments []Node
	Optional  bool
}

// NewExpression is a constructor call.
type NewExpression struct {
	Base
	Callee    Node
	Arguments []Node
}

// MemberExpression is a property access. Property is an Identifier when the
// access is not computed.
type MemberExpression struct {
	Base
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

// ObjectExpression is an object literal. Properties holds *Property and
// *SpreadElement nodes.
type ObjectExpression struct {
	Base
	Properties []Node
}

// Property is an object literal member or an object pattern member.
type Property struct {
	Base
	Key       Node
	Value     Node
	Computed  bool
	Shorthand bool
	Method    bool
}

// ArrayExpression is an array literal. A nil element is a hole.
type ArrayExpression struct {
	Base
	Elements []Node
}

// SpreadElement is `...argument` in calls, arrays and objects.
type SpreadElement struct {
	Base
	Argument Node
}

// ArrowFunctionExpression is `(params) => body`. Body is a *BlockStatement or
// an expression when Expression is set.
type ArrowFunctionExpression struct {
	Base
	Params     []Node
	Body       Node
	Expression bool
	Async      bool
}

// FunctionExpression is a function value, including method bodies.
type FunctionExpression struct {
	Base
	ID        *Identifier
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// FunctionDeclaration is a named function statement.
type FunctionDeclaration struct {
	Base
	ID        *Identifier
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

// VariableDeclaration is a var, let or const statement.
type VariableDeclaration struct {
	Base
	DeclKind     string
	Declarations []*VariableDeclarator
}

// VariableDeclarator binds ID, an Identifier or a pattern, to Init.
type VariableDeclarator struct {
	Base
	ID   Node
	Init Node
}

// ObjectPattern is a destructuring object pattern. Properties holds *Property
// and *RestElement nodes.
type ObjectPattern struct {
	Base
	Properties []Node
}

// ArrayPattern is a destructuring array pattern. A nil element is a hole.
type ArrayPattern struct {
	Base
	Elements []Node
}

// AssignmentPattern is a pattern with a default value.
type AssignmentPattern struct {
	Base
	Left  Node
	Right Node
}

// RestElement is `...argument` in patterns and parameter lists.
type RestElement struct {
	Base
	Argument Node
}

// AssignmentExpression is `left op right`.
type AssignmentExpression struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

// UpdateExpression is `++x`, `x--` and friends.
type UpdateExpression struct {
	Base
	Operator string
	Argument Node
}

// ImportDeclaration is an import statement.
type ImportDeclaration struct {
	Base
	Specifiers []Node
	Source     *Literal
}

// ImportSpecifier is `{ imported as local }`. Imported is an Identifier or a
// string Literal.
type ImportSpecifier struct {
	Base
	Imported Node
	Local    *Identifier
}

// ImportDefaultSpecifier is `import local from ...`.
type ImportDefaultSpecifier struct {
	Base
	Local *Identifier
}

// ImportNamespaceSpecifier is `import * as local from ...`.
type ImportNamespaceSpecifier struct {
	Base
	Local *Identifier
}

// ExportNamedDeclaration is `export <declaration>` or `export { ... } [from ...]`.
type ExportNamedDeclaration struct {
	Base
	Declaration Node
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

// ExportSpecifier is `local as exported` inside an export clause.
type ExportSpecifier struct {
	Base
	Local    *Identifier
	Exported *Identifier
}

// ExportDefaultDeclaration is `export default <declaration or expression>`.
type ExportDefaultDeclaration struct {
	Base
	Declaration Node
}

// ExportAllDeclaration is `export * [as exported] from source`.
type ExportAllDeclaration struct {
	Base
	Exported *Identifier
	Source   *Literal
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Base
	Body []Node
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	Base
	Expression Node
}

// ReturnStatement is `return [argument]`.
type ReturnStatement struct {
	Base
	Argument Node
}

// ThrowStatement is `throw argument`.
type ThrowStatement struct {
	Base
	Argument Node
}

// TryStatement is try/catch/finally. Handler and Finalizer may be nil.
type TryStatement struct {
	Base
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

// CatchClause is `catch (param) body`. Param may be nil.
type CatchClause struct {
	Base
	Param Node
	Body  *BlockStatement
}

// IfStatement is if/else. Alternate may be nil.
type IfStatement struct {
	Base
	Test       Node
	Consequent Node
	Alternate  Node
}

// SwitchStatement is a switch with its cases.
type SwitchStatement struct {
	Base
	Discriminant Node
	Cases        []*SwitchCase
}

// SwitchCase is a case or, when Test is nil, the default clause.
type SwitchCase struct {
	Base
	Test       Node
	Consequent []Node
}

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	Base
	Test       Node
	Consequent Node
	Alternate  Node
}

// ClassDeclaration is a class statement. ID is nil for `export default class`.
type ClassDeclaration struct {
	Base
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
}

// ClassExpression is a class value.
type ClassExpression struct {
	Base
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
}

// ClassBody holds *MethodDefinition and Opaque field definitions.
type ClassBody struct {
	Base
	Body []Node
}

// MethodDefinition is a class method, getter, setter or constructor.
type MethodDefinition struct {
	Base
	Key        Node
	Value      *FunctionExpression
	MethodKind string
	Computed   bool
	Static     bool
}

// InterfaceDeclaration is a TypeScript interface.
type InterfaceDeclaration struct {
	Base
	ID *Identifier
}

// ThisExpression is `this`.
type ThisExpression struct {
	Base
}

// TypeAssertion is a TypeScript construct erased at runtime: `x as T`,
// `x satisfies T`, `x!` and `<T>x`. Operator is "as", "satisfies", "!" or "<>".
type TypeAssertion struct {
	Base
	Operator   string
	Expression Node
}

// Opaque stands for any construct the rules do not inspect. Type is the
// grammar's node type name and Nodes are its converted children.
type Opaque struct {
	Base
	Type  string
	Nodes []Node
}

func (*Program) Kind() Kind                  { return KindProgram }
func (*Identifier) Kind() Kind               { return KindIdentifier }
func (*Literal) Kind() Kind                  { return KindLiteral }
func (*TemplateLiteral) Kind() Kind          { return KindTemplateLiteral }
func (*CallExpression) Kind() Kind           { return KindCallExpression }
func (*NewExpression) Kind() Kind            { return KindNewExpression }
func (*MemberExpression) Kind() Kind         { return KindMemberExpression }
func (*ObjectExpression) Kind() Kind         { return KindObjectExpression }
func (*Property) Kind() Kind                 { return KindProperty }
func (*ArrayExpression) Kind() Kind          { return KindArrayExpression }
func (*SpreadElement) Kind() Kind            { return KindSpreadElement }
func (*ArrowFunctionExpression) Kind() Kind  { return KindArrowFunctionExpression }
func (*FunctionExpression) Kind() Kind       { return KindFunctionExpression }
func (*FunctionDeclaration) Kind() Kind      { return KindFunctionDeclaration }
func (*VariableDeclaration) Kind() Kind      { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind       { return KindVariableDeclarator }
func (*ObjectPattern) Kind() Kind            { return KindObjectPattern }
func (*ArrayPattern) Kind() Kind             { return KindArrayPattern }
func (*AssignmentPattern) Kind() Kind        { return KindAssignmentPattern }
func (*RestElement) Kind() Kind              { return KindRestElement }
func (*AssignmentExpression) Kind() Kind     { return KindAssignmentExpression }
func (*UpdateExpression) Kind() Kind         { return KindUpdateExpression }
func (*ImportDeclaration) Kind() Kind        { return KindImportDeclaration }
func (*ImportSpecifier) Kind() Kind          { return KindImportSpecifier }
func (*ImportDefaultSpecifier) Kind() Kind   { return KindImportDefaultSpecifier }
func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
func (*ExportNamedDeclaration) Kind() Kind   { return KindExportNamedDeclaration }
func (*ExportSpecifier) Kind() Kind          { return KindExportSpecifier }
func (*ExportDefaultDeclaration) Kind() Kind { return KindExportDefaultDeclaration }
func (*ExportAllDeclaration) Kind() Kind     { return KindExportAllDeclaration }
func (*BlockStatement) Kind() Kind           { return KindBlockStatement }
func (*ExpressionStatement) Kind() Kind      { return KindExpressionStatement }
func (*ReturnStatement) Kind() Kind          { return KindReturnStatement }
func (*ThrowStatement) Kind() Kind           { return KindThrowStatement }
func (*TryStatement) Kind() Kind             { return KindTryStatement }
func (*CatchClause) Kind() Kind              { return KindCatchClause }
func (*IfStatement) Kind() Kind              { return KindIfStatement }
func (*SwitchStatement) Kind() Kind          { return KindSwitchStatement }
func (*SwitchCase) Kind() Kind               { return KindSwitchCase }
func (*ConditionalExpression) Kind() Kind    { return KindConditionalExpression }
func (*ClassDeclaration) Kind() Kind         { return KindClassDeclaration }
func (*ClassExpression) Kind() Kind          { return KindClassExpression }
func (*ClassBody) Kind() Kind                { return KindClassBody }
func (*MethodDefinition) Kind() Kind         { return KindMethodDefinition }
func (*InterfaceDeclaration) Kind() Kind     { return KindInterfaceDeclaration }
func (*ThisExpression) Kind() Kind           { return KindThisExpression }
func (*TypeAssertion) Kind() Kind            { return KindTypeAssertion }
func (*Opaque) Kind() Kind                   { return KindOpaque }
