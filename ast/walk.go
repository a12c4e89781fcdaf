package ast

// Children returns the direct children of n in source order. Holes in arrays
// and patterns are skipped.
//
//nolint:gocyclo,cyclop // Exhaustive dispatch over the closed node set
func Children(n Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, c := range nodes {
			if c != nil {
				out = append(out, c)
			}
		}
	}

	switch x := n.(type) {
	case *Program:
		add(x.Body...)
	case *Identifier, *Literal, *ThisExpression:
	case *TemplateLiteral:
		add(x.Expressions...)
	case *CallExpression:
		add(x.Callee)
		add(x.Arguments...)
	case *NewExpression:
		add(x.Callee)
		add(x.Arguments...)
	case *MemberExpression:
		add(x.Object, x.Property)
	case *ObjectExpression:
		add(x.Properties...)
	case *Property:
		if !x.Shorthand {
			add(x.Key)
		}
		add(x.Value)
	case *ArrayExpression:
		add(x.Elements...)
	case *SpreadElement:
		add(x.Argument)
	case *ArrowFunctionExpression:
		add(x.Params...)
		add(x.Body)
	case *FunctionExpression:
		if x.ID != nil {
			add(x.ID)
		}
		add(x.Params...)
		if x.Body != nil {
			add(x.Body)
		}
	case *FunctionDeclaration:
		if x.ID != nil {
			add(x.ID)
		}
		add(x.Params...)
		if x.Body != nil {
			add(x.Body)
		}
	case *VariableDeclaration:
		for _, d := range x.Declarations {
			add(d)
		}
	case *VariableDeclarator:
		add(x.ID, x.Init)
	case *ObjectPattern:
		add(x.Properties...)
	case *ArrayPattern:
		add(x.Elements...)
	case *AssignmentPattern:
		add(x.Left, x.Right)
	case *RestElement:
		add(x.Argument)
	case *AssignmentExpression:
		add(x.Left, x.Right)
	case *UpdateExpression:
		add(x.Argument)
	case *ImportDeclaration:
		add(x.Specifiers...)
		if x.Source != nil {
			add(x.Source)
		}
	case *ImportSpecifier:
		if x.Imported != nil && (x.Local == nil || x.Imported != Node(x.Local)) {
			add(x.Imported)
		}
		if x.Local != nil {
			add(x.Local)
		}
	case *ImportDefaultSpecifier:
		if x.Local != nil {
			add(x.Local)
		}
	case *ImportNamespaceSpecifier:
		if x.Local != nil {
			add(x.Local)
		}
	case *ExportNamedDeclaration:
		add(x.Declaration)
		for _, s := range x.Specifiers {
			add(s)
		}
		if x.Source != nil {
			add(x.Source)
		}
	case *ExportSpecifier:
		if x.Local != nil {
			add(x.Local)
		}
		if x.Exported != nil && x.Exported != x.Local {
			add(x.Exported)
		}
	case *ExportDefaultDeclaration:
		add(x.Declaration)
	case *ExportAllDeclaration:
		if x.Exported != nil {
			add(x.Exported)
		}
		if x.Source != nil {
			add(x.Source)
		}
	case *BlockStatement:
		add(x.Body...)
	case *ExpressionStatement:
		add(x.Expression)
	case *ReturnStatement:
		add(x.Argument)
	case *ThrowStatement:
		add(x.Argument)
	case *TryStatement:
		if x.Block != nil {
			add(x.Block)
		}
		if x.Handler != nil {
			add(x.Handler)
		}
		if x.Finalizer != nil {
			add(x.Finalizer)
		}
	case *CatchClause:
		add(x.Param)
		if x.Body != nil {
			add(x.Body)
		}
	case *IfStatement:
		add(x.Test, x.Consequent, x.Alternate)
	case *SwitchStatement:
		add(x.Discriminant)
		for _, c := range x.Cases {
			add(c)
		}
	case *SwitchCase:
		add(x.Test)
		add(x.Consequent...)
	case *ConditionalExpression:
		add(x.Test, x.Consequent, x.Alternate)
	case *ClassDeclaration:
		if x.ID != nil {
			add(x.ID)
		}
		add(x.SuperClass)
		if x.Body != nil {
			add(x.Body)
		}
	case *ClassExpression:
		if x.ID != nil {
			add(x.ID)
		}
		add(x.SuperClass)
		if x.Body != nil {
			add(x.Body)
		}
	case *ClassBody:
		add(x.Body...)
	case *MethodDefinition:
		add(x.Key)
		if x.Value != nil {
			add(x.Value)
		}
	case *InterfaceDeclaration:
		if x.ID != nil {
			add(x.ID)
		}
	case *TypeAssertion:
		add(x.Expression)
	case *Opaque:
		add(x.Nodes...)
	}
	return out
}

// Walk traverses the tree rooted at n in pre-order. If fn returns false the
// children of the current node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Inspect traverses the tree rooted at n in pre-order and calls fn for every
// node together with its parent.
func Inspect(n Node, fn func(node, parent Node)) {
	var visit func(node, parent Node)
	visit = func(node, parent Node) {
		fn(node, parent)
		for _, c := range Children(node) {
			visit(c, node)
		}
	}
	if n != nil {
		visit(n, nil)
	}
}

// Link sets the parent back-edge of every node below root. Parsers call it
// once after building a tree.
func Link(root Node) {
	Inspect(root, func(node, parent Node) {
		node.base().parent = parent
	})
}

// Root returns the outermost ancestor of n.
func Root(n Node) Node {
	for n != nil && n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// ProgramOf returns the Program n belongs to, or nil when n is detached.
func ProgramOf(n Node) *Program {
	p, _ := Root(n).(*Program)
	return p
}

// IsFunction reports whether n is a function declaration, expression or arrow.
func IsFunction(n Node) bool {
	switch n.(type) {
	case *FunctionDeclaration, *FunctionExpression, *ArrowFunctionExpression:
		return true
	}
	return false
}

// Unwrap strips TypeScript type assertions around n.
func Unwrap(n Node) Node {
	for {
		ta, ok := n.(*TypeAssertion)
		if !ok {
			return n
		}
		n = ta.Expression
	}
}

// FunctionBody returns the body of a function node: a *BlockStatement or,
// for concise arrows, an expression. It returns nil for other nodes.
func FunctionBody(n Node) Node {
	switch f := n.(type) {
	case *ArrowFunctionExpression:
		return f.Body
	case *FunctionExpression:
		if f.Body != nil {
			return f.Body
		}
	case *FunctionDeclaration:
		if f.Body != nil {
			return f.Body
		}
	}
	return nil
}

// FunctionParams returns the parameter list of a function node.
func FunctionParams(n Node) []Node {
	switch f := n.(type) {
	case *ArrowFunctionExpression:
		return f.Params
	case *FunctionExpression:
		return f.Params
	case *FunctionDeclaration:
		return f.Params
	}
	return nil
}

// IdentifierName returns the name of n when it is an Identifier.
func IdentifierName(n Node) (string, bool) {
	id, ok := n.(*Identifier)
	if !ok || id == nil {
		return "", false
	}
	return id.Name, true
}
