package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// skipped lists grammar nodes that carry no runtime semantics.
var skipped = map[string]bool{
	"comment":                   true,
	"hash_bang_line":            true,
	"html_comment":              true,
	"optional_chain":            true,
	"type_annotation":           true,
	"type_arguments":            true,
	"type_parameters":           true,
	"asserts_annotation":        true,
	"type_predicate_annotation": true,
	"accessibility_modifier":    true,
	"override_modifier":         true,
	"decorator":                 true,
	"method_signature":          true,
	"abstract_method_signature": true,
	"index_signature":           true,
	"property_signature":        true,
	"empty_statement":           true,
}

// typeOnly lists declarations that are erased at runtime. They are kept as
// childless Opaque nodes so statement positions stay intact.
var typeOnly = map[string]bool{
	"type_alias_declaration": true,
	"ambient_declaration":    true,
	"function_signature":     true,
}

// converter maps a tree-sitter tree onto ast nodes. Nil node-typed fields are
// always untyped nil.
type converter struct {
	src  []byte
	path string
}

func (c *converter) base(n *sitter.Node) ast.Base {
	return ast.Base{Loc: location(n, c.path)}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) program(root *sitter.Node) *ast.Program {
	return &ast.Program{
		Base: c.base(root),
		Path: c.path,
		Body: c.namedList(root),
	}
}

// namedList converts every named child of n, dropping skipped ones.
func (c *converter) namedList(n *sitter.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var out []ast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if conv := c.node(n.NamedChild(i)); conv != nil {
			out = append(out, conv)
		}
	}
	return out
}

// firstNamed returns the first named child that is not skipped.
func (c *converter) firstNamed(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if !skipped[child.Type()] {
			return child
		}
	}
	return nil
}

// hasToken reports whether n has a direct anonymous child with the given text.
func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == token {
			return true
		}
	}
	return false
}

func hasNamedChild(n *sitter.Node, typ string) bool {
	return namedChildOfType(n, typ) != nil
}

func namedChildOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

func (c *converter) field(n *sitter.Node, name string) ast.Node {
	return c.node(n.ChildByFieldName(name))
}

// node converts one tree-sitter node. It returns nil for nodes without
// runtime meaning.
//
//nolint:gocyclo,cyclop,funlen // Grammar dispatch
func (c *converter) node(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	typ := n.Type()
	if skipped[typ] {
		return nil
	}
	if typeOnly[typ] {
		return &ast.Opaque{Base: c.base(n), Type: typ}
	}

	switch typ {
	case "identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern", "private_property_identifier",
		"type_identifier", "statement_identifier":
		return c.identifier(n)
	case "undefined":
		return &ast.Identifier{Base: c.base(n), Name: "undefined"}
	case "this":
		return &ast.ThisExpression{Base: c.base(n)}
	case "string", "number", "true", "false", "null", "regex":
		return c.literal(n)
	case "template_string":
		return c.template(n)
	case "parenthesized_expression":
		return c.node(c.firstNamed(n))
	case "expression_statement":
		expr := c.node(c.firstNamed(n))
		if expr == nil {
			return nil
		}
		return &ast.ExpressionStatement{Base: c.base(n), Expression: expr}
	case "call_expression":
		return c.call(n)
	case "new_expression":
		return &ast.NewExpression{
			Base:      c.base(n),
			Callee:    c.field(n, "constructor"),
			Arguments: c.namedList(n.ChildByFieldName("arguments")),
		}
	case "member_expression":
		return &ast.MemberExpression{
			Base:     c.base(n),
			Object:   c.field(n, "object"),
			Property: c.field(n, "property"),
			Optional: hasNamedChild(n, "optional_chain") || hasToken(n, "?."),
		}
	case "subscript_expression":
		return &ast.MemberExpression{
			Base:     c.base(n),
			Object:   c.field(n, "object"),
			Property: c.field(n, "index"),
			Computed: true,
			Optional: hasNamedChild(n, "optional_chain") || hasToken(n, "?."),
		}
	case "object":
		return c.object(n)
	case "array":
		return &ast.ArrayExpression{Base: c.base(n), Elements: c.elements(n, c.node)}
	case "spread_element":
		return &ast.SpreadElement{Base: c.base(n), Argument: c.node(c.firstNamed(n))}
	case "arrow_function":
		return c.arrow(n)
	case "function", "function_expression", "generator_function":
		return c.functionExpression(n)
	case "function_declaration", "generator_function_declaration":
		fe := c.functionExpression(n)
		return &ast.FunctionDeclaration{
			Base:      fe.Base,
			ID:        fe.ID,
			Params:    fe.Params,
			Body:      fe.Body,
			Async:     fe.Async,
			Generator: fe.Generator,
		}
	case "lexical_declaration", "variable_declaration":
		return c.variableDeclaration(n)
	case "object_pattern", "array_pattern", "assignment_pattern", "rest_pattern":
		return c.pattern(n)
	case "assignment_expression", "augmented_assignment_expression":
		op := "="
		if opNode := n.ChildByFieldName("operator"); opNode != nil {
			op = c.text(opNode)
		}
		return &ast.AssignmentExpression{
			Base:     c.base(n),
			Operator: op,
			Left:     c.pattern(n.ChildByFieldName("left")),
			Right:    c.field(n, "right"),
		}
	case "update_expression":
		op := ""
		if opNode := n.ChildByFieldName("operator"); opNode != nil {
			op = c.text(opNode)
		}
		return &ast.UpdateExpression{Base: c.base(n), Operator: op, Argument: c.field(n, "argument")}
	case "import_statement":
		return c.importDeclaration(n)
	case "export_statement":
		return c.exportDeclaration(n)
	case "statement_block":
		return c.block(n)
	case "return_statement":
		return &ast.ReturnStatement{Base: c.base(n), Argument: c.node(c.firstNamed(n))}
	case "throw_statement":
		return &ast.ThrowStatement{Base: c.base(n), Argument: c.node(c.firstNamed(n))}
	case "try_statement":
		return c.tryStatement(n)
	case "if_statement":
		stmt := &ast.IfStatement{
			Base:       c.base(n),
			Test:       c.field(n, "condition"),
			Consequent: c.field(n, "consequence"),
		}
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == "else_clause" {
				stmt.Alternate = c.node(c.firstNamed(alt))
			} else {
				stmt.Alternate = c.node(alt)
			}
		}
		return stmt
	case "switch_statement":
		return c.switchStatement(n)
	case "ternary_expression":
		return &ast.ConditionalExpression{
			Base:       c.base(n),
			Test:       c.field(n, "condition"),
			Consequent: c.field(n, "consequence"),
			Alternate:  c.field(n, "alternative"),
		}
	case "class_declaration", "abstract_class_declaration":
		id, super, body := c.classParts(n)
		return &ast.ClassDeclaration{Base: c.base(n), ID: id, SuperClass: super, Body: body}
	case "class":
		id, super, body := c.classParts(n)
		return &ast.ClassExpression{Base: c.base(n), ID: id, SuperClass: super, Body: body}
	case "interface_declaration":
		decl := &ast.InterfaceDeclaration{Base: c.base(n)}
		if name := n.ChildByFieldName("name"); name != nil {
			decl.ID = c.identifier(name)
		}
		return decl
	case "as_expression", "satisfies_expression":
		op := "as"
		if typ == "satisfies_expression" {
			op = "satisfies"
		}
		return &ast.TypeAssertion{Base: c.base(n), Operator: op, Expression: c.node(c.firstNamed(n))}
	case "non_null_expression":
		return &ast.TypeAssertion{Base: c.base(n), Operator: "!", Expression: c.node(c.firstNamed(n))}
	case "type_assertion":
		var expr ast.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if child := n.NamedChild(i); child.Type() != "type_arguments" {
				expr = c.node(child)
			}
		}
		return &ast.TypeAssertion{Base: c.base(n), Operator: "<>", Expression: expr}
	case "for_in_statement":
		return c.forIn(n)
	default:
		return &ast.Opaque{Base: c.base(n), Type: typ, Nodes: c.namedList(n)}
	}
}

func (c *converter) identifier(n *sitter.Node) *ast.Identifier {
	return &ast.Identifier{Base: c.base(n), Name: c.text(n)}
}

func (c *converter) literal(n *sitter.Node) *ast.Literal {
	raw := c.text(n)
	lit := &ast.Literal{Base: c.base(n), Raw: raw}
	switch n.Type() {
	case "string":
		lit.LitKind = ast.LiteralString
		lit.Value = unquote(raw)
	case "number":
		if isBigInt(raw) {
			lit.LitKind = ast.LiteralBigInt
			lit.Value = raw
		} else {
			lit.LitKind = ast.LiteralNumber
			lit.Value = parseNumber(raw)
		}
	case "true", "false":
		lit.LitKind = ast.LiteralBoolean
		lit.Value = n.Type() == "true"
	case "null":
		lit.LitKind = ast.LiteralNull
	case "regex":
		lit.LitKind = ast.LiteralRegExp
		lit.Value = raw
	}
	return lit
}

// template slices the raw text between substitutions so the result does not
// depend on how the grammar tokenizes string fragments.
func (c *converter) template(n *sitter.Node) *ast.TemplateLiteral {
	tl := &ast.TemplateLiteral{Base: c.base(n)}
	cursor := n.StartByte() + 1
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "template_substitution" {
			continue
		}
		tl.Quasis = append(tl.Quasis, unescape(string(c.src[cursor:child.StartByte()])))
		tl.Expressions = append(tl.Expressions, c.node(c.firstNamed(child)))
		cursor = child.EndByte()
	}
	end := n.EndByte()
	if end > cursor {
		end--
	}
	tl.Quasis = append(tl.Quasis, unescape(string(c.src[cursor:end])))
	return tl
}

func (c *converter) call(n *sitter.Node) *ast.CallExpression {
	call := &ast.CallExpression{
		Base:     c.base(n),
		Callee:   c.field(n, "function"),
		Optional: hasNamedChild(n, "optional_chain") || hasToken(n, "?."),
	}
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call
	}
	if args.Type() == "template_string" {
		call.Arguments = []ast.Node{c.template(args)}
		return call
	}
	call.Arguments = c.namedList(args)
	return call
}

func (c *converter) object(n *sitter.Node) *ast.ObjectExpression {
	obj := &ast.ObjectExpression{Base: c.base(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "pair":
			key, computed := c.propertyKey(child.ChildByFieldName("key"))
			obj.Properties = append(obj.Properties, &ast.Property{
				Base:     c.base(child),
				Key:      key,
				Value:    c.field(child, "value"),
				Computed: computed,
			})
		case "shorthand_property_identifier":
			obj.Properties = append(obj.Properties, &ast.Property{
				Base:      c.base(child),
				Key:       c.identifier(child),
				Value:     c.identifier(child),
				Shorthand: true,
			})
		case "spread_element":
			obj.Properties = append(obj.Properties, c.node(child))
		case "method_definition":
			key, computed := c.propertyKey(child.ChildByFieldName("name"))
			obj.Properties = append(obj.Properties, &ast.Property{
				Base:     c.base(child),
				Key:      key,
				Value:    c.functionExpression(child),
				Computed: computed,
				Method:   true,
			})
		}
	}
	return obj
}

// propertyKey converts an object or class member key and reports whether it
// is computed.
func (c *converter) propertyKey(n *sitter.Node) (ast.Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Type() == "computed_property_name" {
		return c.node(c.firstNamed(n)), true
	}
	return c.node(n), false
}

// elements converts array literal or array pattern children, recording holes
// as nil.
func (c *converter) elements(n *sitter.Node, conv func(*sitter.Node) ast.Node) []ast.Node {
	var out []ast.Node
	expecting := true
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch {
		case !child.IsNamed() && child.Type() == ",":
			if expecting {
				out = append(out, nil)
			}
			expecting = true
		case child.IsNamed() && !skipped[child.Type()]:
			if el := conv(child); el != nil {
				out = append(out, el)
				expecting = false
			}
		}
	}
	return out
}

func (c *converter) arrow(n *sitter.Node) *ast.ArrowFunctionExpression {
	fn := &ast.ArrowFunctionExpression{Base: c.base(n), Async: hasToken(n, "async")}
	if param := n.ChildByFieldName("parameter"); param != nil {
		fn.Params = []ast.Node{c.pattern(param)}
	} else {
		fn.Params = c.params(n.ChildByFieldName("parameters"))
	}
	body := n.ChildByFieldName("body")
	if body != nil && body.Type() == "statement_block" {
		fn.Body = c.block(body)
	} else {
		fn.Body = c.node(body)
		fn.Expression = true
	}
	return fn
}

// functionExpression converts anything shaped like a function: expressions,
// declarations and method definitions.
func (c *converter) functionExpression(n *sitter.Node) *ast.FunctionExpression {
	fn := &ast.FunctionExpression{
		Base:      c.base(n),
		Params:    c.params(n.ChildByFieldName("parameters")),
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
	}
	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
		fn.ID = c.identifier(name)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		fn.Body = c.block(body)
	}
	return fn
}

func (c *converter) params(n *sitter.Node) []ast.Node {
	if n == nil {
		return nil
	}
	var out []ast.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "required_parameter", "optional_parameter":
			pat := c.pattern(child.ChildByFieldName("pattern"))
			if pat == nil {
				continue
			}
			if value := child.ChildByFieldName("value"); value != nil {
				pat = &ast.AssignmentPattern{Base: c.base(child), Left: pat, Right: c.node(value)}
			}
			out = append(out, pat)
		default:
			if pat := c.pattern(child); pat != nil {
				out = append(out, pat)
			}
		}
	}
	return out
}

func (c *converter) block(n *sitter.Node) *ast.BlockStatement {
	return &ast.BlockStatement{Base: c.base(n), Body: c.namedList(n)}
}

func (c *converter) variableDeclaration(n *sitter.Node) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{Base: c.base(n), DeclKind: "var"}
	if kind := n.ChildByFieldName("kind"); kind != nil {
		decl.DeclKind = c.text(kind)
	} else if n.Type() == "lexical_declaration" && n.ChildCount() > 0 {
		decl.DeclKind = c.text(n.Child(0))
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		decl.Declarations = append(decl.Declarations, &ast.VariableDeclarator{
			Base: c.base(child),
			ID:   c.pattern(child.ChildByFieldName("name")),
			Init: c.field(child, "value"),
		})
	}
	return decl
}

// pattern converts a binding or assignment target.
func (c *converter) pattern(n *sitter.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern", "undefined":
		return c.identifier(n)
	case "object_pattern":
		return c.objectPattern(n)
	case "array_pattern":
		return &ast.ArrayPattern{Base: c.base(n), Elements: c.elements(n, c.pattern)}
	case "assignment_pattern":
		return &ast.AssignmentPattern{
			Base:  c.base(n),
			Left:  c.pattern(n.ChildByFieldName("left")),
			Right: c.field(n, "right"),
		}
	case "rest_pattern":
		return &ast.RestElement{Base: c.base(n), Argument: c.pattern(c.firstNamed(n))}
	case "parenthesized_expression":
		return c.pattern(c.firstNamed(n))
	default:
		return c.node(n)
	}
}

func (c *converter) objectPattern(n *sitter.Node) *ast.ObjectPattern {
	pat := &ast.ObjectPattern{Base: c.base(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "pair_pattern":
			key, computed := c.propertyKey(child.ChildByFieldName("key"))
			pat.Properties = append(pat.Properties, &ast.Property{
				Base:     c.base(child),
				Key:      key,
				Value:    c.pattern(child.ChildByFieldName("value")),
				Computed: computed,
			})
		case "shorthand_property_identifier_pattern":
			pat.Properties = append(pat.Properties, &ast.Property{
				Base:      c.base(child),
				Key:       c.identifier(child),
				Value:     c.identifier(child),
				Shorthand: true,
			})
		case "object_assignment_pattern":
			left := child.ChildByFieldName("left")
			if left == nil {
				continue
			}
			target := c.pattern(left)
			var key ast.Node = target
			if left.Type() == "shorthand_property_identifier_pattern" {
				key = c.identifier(left)
			}
			pat.Properties = append(pat.Properties, &ast.Property{
				Base:      c.base(child),
				Key:       key,
				Value:     &ast.AssignmentPattern{Base: c.base(child), Left: target, Right: c.field(child, "right")},
				Shorthand: true,
			})
		case "rest_pattern":
			pat.Properties = append(pat.Properties, c.pattern(child))
		}
	}
	return pat
}

func (c *converter) importDeclaration(n *sitter.Node) *ast.ImportDeclaration {
	decl := &ast.ImportDeclaration{Base: c.base(n)}
	if src := n.ChildByFieldName("source"); src != nil {
		decl.Source = c.literal(src)
	}
	clause := namedChildOfType(n, "import_clause")
	if clause == nil {
		return decl
	}
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{
				Base:  c.base(child),
				Local: c.identifier(child),
			})
		case "namespace_import":
			if id := namedChildOfType(child, "identifier"); id != nil {
				decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespaceSpecifier{
					Base:  c.base(child),
					Local: c.identifier(id),
				})
			}
		case "named_imports":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				spec := child.NamedChild(j)
				if spec.Type() != "import_specifier" {
					continue
				}
				name := spec.ChildByFieldName("name")
				if name == nil {
					continue
				}
				local := name
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					local = alias
				}
				decl.Specifiers = append(decl.Specifiers, &ast.ImportSpecifier{
					Base:     c.base(spec),
					Imported: c.node(name),
					Local:    c.identifier(local),
				})
			}
		}
	}
	return decl
}

func (c *converter) exportDeclaration(n *sitter.Node) ast.Node {
	isDefault := hasToken(n, "default")

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		converted := c.node(decl)
		if isDefault {
			return &ast.ExportDefaultDeclaration{Base: c.base(n), Declaration: converted}
		}
		return &ast.ExportNamedDeclaration{Base: c.base(n), Declaration: converted}
	}
	if value := n.ChildByFieldName("value"); value != nil {
		return &ast.ExportDefaultDeclaration{Base: c.base(n), Declaration: defaultDeclaration(c.node(value))}
	}

	var source *ast.Literal
	if src := n.ChildByFieldName("source"); src != nil {
		source = c.literal(src)
	}

	if clause := namedChildOfType(n, "export_clause"); clause != nil {
		decl := &ast.ExportNamedDeclaration{Base: c.base(n), Source: source}
		for i := 0; i < int(clause.NamedChildCount()); i++ {
			spec := clause.NamedChild(i)
			if spec.Type() != "export_specifier" {
				continue
			}
			name := spec.ChildByFieldName("name")
			if name == nil {
				continue
			}
			exported := name
			if alias := spec.ChildByFieldName("alias"); alias != nil {
				exported = alias
			}
			decl.Specifiers = append(decl.Specifiers, &ast.ExportSpecifier{
				Base:     c.base(spec),
				Local:    c.exportName(name),
				Exported: c.exportName(exported),
			})
		}
		return decl
	}

	if hasToken(n, "*") {
		all := &ast.ExportAllDeclaration{Base: c.base(n), Source: source}
		if ns := namedChildOfType(n, "namespace_export"); ns != nil {
			if id := c.firstNamed(ns); id != nil {
				all.Exported = c.exportName(id)
			}
		}
		return all
	}

	return &ast.Opaque{Base: c.base(n), Type: n.Type(), Nodes: c.namedList(n)}
}

// defaultDeclaration turns the anonymous class or function of
// `export default class {}` into a declaration, as ESTree does.
func defaultDeclaration(n ast.Node) ast.Node {
	switch x := n.(type) {
	case *ast.ClassExpression:
		return &ast.ClassDeclaration{Base: x.Base, ID: x.ID, SuperClass: x.SuperClass, Body: x.Body}
	case *ast.FunctionExpression:
		return &ast.FunctionDeclaration{
			Base: x.Base, ID: x.ID, Params: x.Params, Body: x.Body, Async: x.Async, Generator: x.Generator,
		}
	}
	return n
}

// exportName converts an export specifier name, which may be a string.
func (c *converter) exportName(n *sitter.Node) *ast.Identifier {
	if n.Type() == "string" {
		return &ast.Identifier{Base: c.base(n), Name: unquote(c.text(n))}
	}
	return c.identifier(n)
}

func (c *converter) tryStatement(n *sitter.Node) *ast.TryStatement {
	stmt := &ast.TryStatement{Base: c.base(n)}
	if body := n.ChildByFieldName("body"); body != nil {
		stmt.Block = c.block(body)
	}
	if handler := n.ChildByFieldName("handler"); handler != nil {
		clause := &ast.CatchClause{Base: c.base(handler), Param: c.pattern(handler.ChildByFieldName("parameter"))}
		if body := handler.ChildByFieldName("body"); body != nil {
			clause.Body = c.block(body)
		}
		stmt.Handler = clause
	}
	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		if body := finalizer.ChildByFieldName("body"); body != nil {
			stmt.Finalizer = c.block(body)
		}
	}
	return stmt
}

func (c *converter) switchStatement(n *sitter.Node) *ast.SwitchStatement {
	stmt := &ast.SwitchStatement{Base: c.base(n), Discriminant: c.field(n, "value")}
	body := n.ChildByFieldName("body")
	if body == nil {
		return stmt
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() != "switch_case" && child.Type() != "switch_default" {
			continue
		}
		sc := &ast.SwitchCase{Base: c.base(child)}
		value := child.ChildByFieldName("value")
		if value != nil {
			sc.Test = c.node(value)
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			stmtNode := child.NamedChild(j)
			if value != nil && sameNode(stmtNode, value) {
				continue
			}
			if conv := c.node(stmtNode); conv != nil {
				sc.Consequent = append(sc.Consequent, conv)
			}
		}
		stmt.Cases = append(stmt.Cases, sc)
	}
	return stmt
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func (c *converter) classParts(n *sitter.Node) (*ast.Identifier, ast.Node, *ast.ClassBody) {
	var id *ast.Identifier
	if name := n.ChildByFieldName("name"); name != nil {
		id = c.identifier(name)
	}

	var super ast.Node
	if heritage := namedChildOfType(n, "class_heritage"); heritage != nil {
		if ext := namedChildOfType(heritage, "extends_clause"); ext != nil {
			if value := ext.ChildByFieldName("value"); value != nil {
				super = c.node(value)
			} else {
				super = c.node(c.firstNamed(ext))
			}
		} else if !hasNamedChild(heritage, "implements_clause") {
			super = c.node(c.firstNamed(heritage))
		}
	}

	var body *ast.ClassBody
	if b := n.ChildByFieldName("body"); b != nil {
		body = c.classBody(b)
	}
	return id, super, body
}

func (c *converter) classBody(n *sitter.Node) *ast.ClassBody {
	body := &ast.ClassBody{Base: c.base(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "method_definition":
			key, computed := c.propertyKey(child.ChildByFieldName("name"))
			kind := "method"
			switch {
			case hasToken(child, "get"):
				kind = "get"
			case hasToken(child, "set"):
				kind = "set"
			case key != nil && !computed && isNamed(key, "constructor"):
				kind = "constructor"
			}
			body.Body = append(body.Body, &ast.MethodDefinition{
				Base:       c.base(child),
				Key:        key,
				Value:      c.functionExpression(child),
				MethodKind: kind,
				Computed:   computed,
				Static:     hasToken(child, "static"),
			})
		case "field_definition", "public_field_definition":
			keyNode := child.ChildByFieldName("property")
			if keyNode == nil {
				keyNode = child.ChildByFieldName("name")
			}
			field := &ast.Opaque{Base: c.base(child), Type: child.Type()}
			if key, _ := c.propertyKey(keyNode); key != nil {
				field.Nodes = append(field.Nodes, key)
			}
			if value := c.field(child, "value"); value != nil {
				field.Nodes = append(field.Nodes, value)
			}
			body.Body = append(body.Body, field)
		default:
			if conv := c.node(child); conv != nil {
				body.Body = append(body.Body, conv)
			}
		}
	}
	return body
}

func isNamed(n ast.Node, name string) bool {
	id, ok := n.(*ast.Identifier)
	return ok && id.Name == name
}

// forIn keeps the loop variable of `for (const x of xs)` as a declaration
// without initializer so scope analysis sees the binding.
func (c *converter) forIn(n *sitter.Node) ast.Node {
	loop := &ast.Opaque{Base: c.base(n), Type: n.Type()}
	left := n.ChildByFieldName("left")
	if kind := n.ChildByFieldName("kind"); kind != nil && left != nil {
		loop.Nodes = append(loop.Nodes, &ast.VariableDeclaration{
			Base:     c.base(left),
			DeclKind: c.text(kind),
			Declarations: []*ast.VariableDeclarator{{
				Base: c.base(left),
				ID:   c.pattern(left),
			}},
		})
	} else if left != nil {
		if target := c.pattern(left); target != nil {
			loop.Nodes = append(loop.Nodes, &ast.AssignmentExpression{
				Base:     c.base(left),
				Operator: "=",
				Left:     target,
			})
		}
	}
	if right := c.field(n, "right"); right != nil {
		loop.Nodes = append(loop.Nodes, right)
	}
	if body := c.field(n, "body"); body != nil {
		loop.Nodes = append(loop.Nodes, body)
	}
	return loop
}
