package scope

import (
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
)

// loopTypes are the Opaque node types that open a block scope for their
// loop variable.
var loopTypes = map[string]bool{
	"for_statement":    true,
	"for_in_statement": true,
}

// Resolver resolves identifiers to bindings. It is safe for concurrent use;
// the scope table of each Program is built on first use and cached.
type Resolver struct {
	mu     sync.Mutex
	tables map[*ast.Program]*table
}

// NewResolver creates a Resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{tables: make(map[*ast.Program]*table)}
}

// ResolveBinding returns the binding the identifier refers to. It reports
// false for globals, unresolved names and detached nodes.
func (r *Resolver) ResolveBinding(id *ast.Identifier) (*Binding, bool) {
	if id == nil {
		return nil, false
	}
	prog := ast.ProgramOf(id)
	if prog == nil {
		return nil, false
	}
	return r.table(prog).lookup(id)
}

// Forget drops the cached scope table of prog.
func (r *Resolver) Forget(prog *ast.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tables, prog)
}

func (r *Resolver) table(prog *ast.Program) *table {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tables[prog]; ok {
		return t
	}
	t := build(prog)
	r.tables[prog] = t
	return t
}

// scopeEntry is one lexical scope.
type scopeEntry struct {
	parent   *scopeEntry
	function bool
	bindings map[string]*Binding
}

func (s *scopeEntry) declare(b *Binding) {
	if prev, ok := s.bindings[b.Name]; ok {
		// A redeclared var behaves like an assignment.
		prev.Reassigned = true
		return
	}
	s.bindings[b.Name] = b
}

// functionScope returns the nearest scope var declarations hoist to.
func (s *scopeEntry) functionScope() *scopeEntry {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.function {
			return cur
		}
	}
	return s
}

type table struct {
	scopes map[ast.Node]*scopeEntry
}

func (t *table) lookup(id *ast.Identifier) (*Binding, bool) {
	for n := id.Parent(); n != nil; n = n.Parent() {
		s, ok := t.scopes[n]
		if !ok {
			continue
		}
		for cur := s; cur != nil; cur = cur.parent {
			if b, ok := cur.bindings[id.Name]; ok {
				return b, true
			}
		}
		return nil, false
	}
	return nil, false
}

type builder struct {
	t        *table
	root     *scopeEntry
	assigned []*ast.Identifier
}

func build(prog *ast.Program) *table {
	t := &table{scopes: make(map[ast.Node]*scopeEntry)}
	b := &builder{t: t}
	b.root = b.open(prog, nil, true)
	for _, stmt := range prog.Body {
		b.visit(stmt, b.root)
	}
	for _, id := range b.assigned {
		if binding, ok := t.lookup(id); ok {
			binding.Reassigned = true
		}
	}
	return t
}

func (b *builder) open(n ast.Node, parent *scopeEntry, function bool) *scopeEntry {
	s := &scopeEntry{parent: parent, function: function, bindings: make(map[string]*Binding)}
	b.t.scopes[n] = s
	return s
}

func (b *builder) visitAll(nodes []ast.Node, s *scopeEntry) {
	for _, n := range nodes {
		b.visit(n, s)
	}
}

//nolint:gocyclo,cyclop // Declaration dispatch
func (b *builder) visit(n ast.Node, s *scopeEntry) {
	if n == nil {
		return
	}

	switch x := n.(type) {
	case *ast.FunctionDeclaration:
		if x.ID != nil {
			s.declare(&Binding{Kind: KindFunction, Name: x.ID.Name, Identifier: x.ID, Declaration: x})
		}
		b.function(x, nil, x.Params, blockOrNil(x.Body), s)
		return
	case *ast.FunctionExpression:
		b.function(x, x.ID, x.Params, blockOrNil(x.Body), s)
		return
	case *ast.ArrowFunctionExpression:
		b.function(x, nil, x.Params, x.Body, s)
		return
	case *ast.ClassDeclaration:
		if x.ID != nil {
			s.declare(&Binding{Kind: KindClass, Name: x.ID.Name, Identifier: x.ID, Declaration: x})
		}
	case *ast.ClassExpression:
		inner := b.open(x, s, false)
		if x.ID != nil {
			inner.declare(&Binding{Kind: KindClass, Name: x.ID.Name, Identifier: x.ID, Declaration: x})
		}
		b.visit(x.SuperClass, s)
		if x.Body != nil {
			b.visit(x.Body, inner)
		}
		return
	case *ast.BlockStatement:
		b.visitAll(x.Body, b.open(x, s, false))
		return
	case *ast.SwitchStatement:
		b.visit(x.Discriminant, s)
		inner := b.open(x, s, false)
		for _, c := range x.Cases {
			b.visit(c, inner)
		}
		return
	case *ast.CatchClause:
		inner := b.open(x, s, false)
		for _, id := range BoundIdentifiers(x.Param) {
			inner.declare(&Binding{Kind: KindCatchParameter, Name: id.Name, Identifier: id, Declaration: x})
		}
		b.visitPatternDefaults(x.Param, inner)
		if x.Body != nil {
			b.visit(x.Body, inner)
		}
		return
	case *ast.Opaque:
		if loopTypes[x.Type] {
			b.visitAll(x.Nodes, b.open(x, s, false))
			return
		}
	case *ast.VariableDeclaration:
		target := s
		if x.DeclKind == "var" {
			target = s.functionScope()
		}
		for _, d := range x.Declarations {
			for _, id := range BoundIdentifiers(d.ID) {
				target.declare(&Binding{
					Kind:        KindVariable,
					Name:        id.Name,
					Identifier:  id,
					Declaration: d,
					Declarator:  d,
					DeclKind:    x.DeclKind,
				})
			}
			b.visitPatternDefaults(d.ID, s)
			b.visit(d.Init, s)
		}
		return
	case *ast.ImportDeclaration:
		b.declareImport(x)
		return
	case *ast.AssignmentExpression:
		b.assigned = append(b.assigned, BoundIdentifiers(x.Left)...)
	case *ast.UpdateExpression:
		if id, ok := x.Argument.(*ast.Identifier); ok {
			b.assigned = append(b.assigned, id)
		}
	}

	for _, c := range ast.Children(n) {
		b.visit(c, s)
	}
}

func (b *builder) function(fn ast.Node, id *ast.Identifier, params []ast.Node, body ast.Node, s *scopeEntry) {
	inner := b.open(fn, s, true)
	if id != nil {
		inner.declare(&Binding{Kind: KindFunction, Name: id.Name, Identifier: id, Declaration: fn})
	}
	for _, p := range params {
		for _, pid := range BoundIdentifiers(p) {
			inner.declare(&Binding{Kind: KindParameter, Name: pid.Name, Identifier: pid, Declaration: fn})
		}
		b.visitPatternDefaults(p, inner)
	}
	if body != nil {
		b.visit(body, inner)
	}
}

// visitPatternDefaults visits the expressions nested in a binding pattern:
// default values and computed keys.
func (b *builder) visitPatternDefaults(pattern ast.Node, s *scopeEntry) {
	switch p := pattern.(type) {
	case *ast.AssignmentPattern:
		b.visitPatternDefaults(p.Left, s)
		b.visit(p.Right, s)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			switch pp := prop.(type) {
			case *ast.Property:
				if pp.Computed {
					b.visit(pp.Key, s)
				}
				b.visitPatternDefaults(pp.Value, s)
			case *ast.RestElement:
				b.visitPatternDefaults(pp.Argument, s)
			}
		}
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			b.visitPatternDefaults(el, s)
		}
	case *ast.RestElement:
		b.visitPatternDefaults(p.Argument, s)
	}
}

func (b *builder) declareImport(decl *ast.ImportDeclaration) {
	source := ""
	if decl.Source != nil {
		source, _ = decl.Source.Value.(string)
	}
	for _, spec := range decl.Specifiers {
		binding := &Binding{Kind: KindImport, Source: source, Declaration: spec}
		switch sp := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			binding.Identifier, binding.Imported = sp.Local, Default
		case *ast.ImportNamespaceSpecifier:
			binding.Identifier, binding.Imported = sp.Local, Namespace
		case *ast.ImportSpecifier:
			binding.Identifier, binding.Imported = sp.Local, importedName(sp.Imported)
		default:
			continue
		}
		if binding.Identifier == nil {
			continue
		}
		binding.Name = binding.Identifier.Name
		b.root.declare(binding)
	}
}

func blockOrNil(b *ast.BlockStatement) ast.Node {
	if b == nil {
		return nil
	}
	return b
}

func importedName(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Identifier:
		return x.Name
	case *ast.Literal:
		if s, ok := x.Value.(string); ok {
			return s
		}
	}
	return ""
}

// BoundIdentifiers returns the identifiers a binding or assignment pattern
// declares, in source order. Member expression targets bind nothing.
func BoundIdentifiers(pattern ast.Node) []*ast.Identifier {
	var out []*ast.Identifier
	var collect func(n ast.Node)
	collect = func(n ast.Node) {
		switch p := n.(type) {
		case *ast.Identifier:
			out = append(out, p)
		case *ast.AssignmentPattern:
			collect(p.Left)
		case *ast.RestElement:
			collect(p.Argument)
		case *ast.ObjectPattern:
			for _, prop := range p.Properties {
				switch pp := prop.(type) {
				case *ast.Property:
					collect(pp.Value)
				case *ast.RestElement:
					collect(pp.Argument)
				}
			}
		case *ast.ArrayPattern:
			for _, el := range p.Elements {
				collect(el)
			}
		case *ast.ObjectExpression:
			// destructuring assignment targets parsed as expressions
			for _, prop := range p.Properties {
				if pp, ok := prop.(*ast.Property); ok {
					collect(pp.Value)
				}
			}
		case *ast.ArrayExpression:
			for _, el := range p.Elements {
				collect(el)
			}
		case *ast.TypeAssertion:
			collect(p.Expression)
		}
	}
	collect(pattern)
	return out
}
