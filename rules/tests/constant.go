// Package tests holds the rules that check the bodies of Jest and Vitest
// style tests, most notably no-constant-assertion and the constant
// analysis behind it.
package tests

import (
	"math"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/modules"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/scope"
)

// ConstantEvaluator decides whether an expression always evaluates to the
// same value. It follows variable initializers, destructuring patterns,
// member accesses and imports, and never evaluates calls. Any lookup that
// fails makes the expression non-constant.
type ConstantEvaluator struct {
	bindings scope.BindingResolver
	modules  modules.Resolver
}

// NewConstantEvaluator creates an evaluator. resolver may be nil, in which
// case imported values are never constant.
func NewConstantEvaluator(bindings scope.BindingResolver, resolver modules.Resolver) *ConstantEvaluator {
	if bindings == nil {
		bindings = scope.NewResolver()
	}
	return &ConstantEvaluator{bindings: bindings, modules: resolver}
}

// IsConstant reports whether node, located in file, is constant. Each call
// starts from an empty path.
func (e *ConstantEvaluator) IsConstant(node ast.Node, file string) bool {
	ev := &evaluation{
		ConstantEvaluator: e,
		memo:              make(map[ast.Node]bool),
		resolving:         make(map[ast.Node]bool),
	}
	return ev.constant(node, file)
}

// path is the chain of nodes entered by the current branch of an
// evaluation. It is never mutated; with returns an extended copy.
type path struct {
	node ast.Node
	next *path
}

func (p *path) contains(n ast.Node) bool {
	for cur := p; cur != nil; cur = cur.next {
		if cur.node == n {
			return true
		}
	}
	return false
}

func (p *path) with(n ast.Node) *path {
	return &path{node: n, next: p}
}

// evaluation is the state of one top-level IsConstant call. memo records
// nodes already proven constant. resolving holds the nodes resolve is
// currently following, across key lookups and destructuring steps.
type evaluation struct {
	*ConstantEvaluator
	memo      map[ast.Node]bool
	resolving map[ast.Node]bool
}

func (ev *evaluation) constant(n ast.Node, file string, p *path) bool {
	if n == nil {
		return false
	}
	if _, ok := n.(*ast.Literal); ok {
		return true
	}
	if p.contains(n) {
		return false
	}
	if ev.memo[n] {
		return true
	}

	file = fileOf(n, file)
	p = p.with(n)

	var ok bool
	switch x := n.(type) {
	case *ast.Identifier:
		ok = ev.identifier(x, file, p)
	case *ast.MemberExpression:
		ok = ev.member(x, file, p)
	case *ast.ArrayExpression:
		ok = ev.array(x, file, p)
	case *ast.ObjectExpression:
		ok = ev.object(x, file, p)
	case *ast.TemplateLiteral:
		ok = ev.all(x.Expressions, file, p)
	case *ast.TypeAssertion:
		ok = ev.constant(x.Expression, file, p)
	default:
		// calls, functions, this and every opaque construct
		ok = false
	}

	if ok {
		ev.memo[n] = true
	}
	return ok
}

func (ev *evaluation) all(nodes []ast.Node, file string, p *path) bool {
	for _, n := range nodes {
		if !ev.constant(n, file, p) {
			return false
		}
	}
	return true
}

func (ev *evaluation) identifier(id *ast.Identifier, file string, p *path) bool {
	if id.Name == "undefined" {
		return true
	}
	b, ok := ev.bindings.ResolveBinding(id)
	if !ok {
		return false
	}

	switch b.Kind {
	case scope.KindVariable:
		if b.Reassigned || b.Init() == nil {
			return false
		}
		if !b.Destructured() {
			return ev.constant(b.Init(), file, p)
		}
		if !ev.constant(b.Init(), file, p) {
			return false
		}
		sub, subFile, found := ev.destructured(b, file)
		if !found {
			return true
		}
		return ev.constant(sub, subFile, p)
	case scope.KindImport:
		if b.Imported == scope.Namespace {
			return false
		}
		target, targetFile, found := ev.imported(b, file, b.Imported)
		if !found {
			return false
		}
		return ev.constant(target, targetFile, p)
	default:
		return false
	}
}

func (ev *evaluation) member(m *ast.MemberExpression, file string, p *path) bool {
	if target, targetFile, ok := ev.namespaceMember(m, file); ok {
		return ev.constant(target, targetFile, p)
	}
	if !ev.constant(m.Object, file, p) {
		return false
	}
	if m.Computed && !ev.constant(m.Property, file, p) {
		return false
	}

	switch base := ast.Unwrap(m.Object).(type) {
	case *ast.MemberExpression:
		return true
	case *ast.ObjectExpression, *ast.ArrayExpression, *ast.Identifier:
		agg, aggFile, ok := ev.resolve(base, file)
		if !ok {
			return false
		}
		value, found := ev.index(agg, m, file)
		if !found {
			return false
		}
		return ev.constant(value, fileOf(value, aggFile), p)
	default:
		return false
	}
}

func (ev *evaluation) array(a *ast.ArrayExpression, file string, p *path) bool {
	for _, el := range a.Elements {
		if el == nil {
			continue
		}
		if _, spread := el.(*ast.SpreadElement); spread {
			return false
		}
		if !ev.constant(el, file, p) {
			return false
		}
	}
	return true
}

func (ev *evaluation) object(o *ast.ObjectExpression, file string, p *path) bool {
	for _, prop := range o.Properties {
		pr, ok := prop.(*ast.Property)
		if !ok {
			return false
		}
		if pr.Method {
			return false
		}
		if pr.Computed && !ev.constant(pr.Key, file, p) {
			return false
		}
		if !ev.constant(pr.Value, file, p) {
			return false
		}
	}
	return true
}

// imported returns the node an import binding refers to and the file it
// lives in.
func (ev *evaluation) imported(b *scope.Binding, file, name string) (ast.Node, string, bool) {
	if ev.modules == nil {
		return nil, "", false
	}
	target, ok := ev.modules.ResolveModule(b.Source, fileOf(b.Identifier, file))
	if !ok {
		return nil, "", false
	}
	node, ok := ev.modules.ExportedInitializer(target, name)
	if !ok || node == nil {
		return nil, "", false
	}
	return node, fileOf(node, target), true
}

// namespaceMember resolves ns.name and ns['name'] where ns is a namespace import.
func (ev *evaluation) namespaceMember(m *ast.MemberExpression, file string) (ast.Node, string, bool) {
	id, ok := ast.Unwrap(m.Object).(*ast.Identifier)
	if !ok {
		return nil, "", false
	}
	b, ok := ev.bindings.ResolveBinding(id)
	if !ok || b.Kind != scope.KindImport || b.Imported != scope.Namespace {
		return nil, "", false
	}
	name, ok := ev.memberKey(m, file)
	if !ok {
		return nil, "", false
	}
	return ev.imported(b, file, name)
}

// resolve follows identifiers, member accesses and imports to the
// expression a value is built from. A node reached again while it is
// still being followed is a cyclic alias and does not resolve.
func (ev *evaluation) resolve(n ast.Node, file string) (ast.Node, string, bool) {
	n = ast.Unwrap(n)
	if n == nil {
		return nil, "", false
	}
	if ev.resolving[n] {
		return nil, "", false
	}
	ev.resolving[n] = true
	defer delete(ev.resolving, n)
	file = fileOf(n, file)

	switch x := n.(type) {
	case *ast.Identifier:
		if x.Name == "undefined" {
			return x, file, true
		}
		b, ok := ev.bindings.ResolveBinding(x)
		if !ok {
			return nil, "", false
		}
		switch b.Kind {
		case scope.KindVariable:
			if b.Reassigned || b.Init() == nil {
				return nil, "", false
			}
			if !b.Destructured() {
				return ev.resolve(b.Init(), file)
			}
			sub, subFile, found := ev.destructured(b, file)
			if !found {
				return nil, "", false
			}
			return ev.resolve(sub, subFile)
		case scope.KindImport:
			if b.Imported == scope.Namespace {
				return nil, "", false
			}
			target, targetFile, ok := ev.imported(b, file, b.Imported)
			if !ok {
				return nil, "", false
			}
			return ev.resolve(target, targetFile)
		}
		return nil, "", false
	case *ast.MemberExpression:
		if target, targetFile, ok := ev.namespaceMember(x, file); ok {
			return ev.resolve(target, targetFile)
		}
		agg, aggFile, ok := ev.resolve(x.Object, file)
		if !ok {
			return nil, "", false
		}
		value, found := ev.index(agg, x, file)
		if !found {
			return nil, "", false
		}
		return ev.resolve(value, fileOf(value, aggFile))
	default:
		return n, file, true
	}
}

// index looks up the property m accesses on the resolved aggregate agg.
func (ev *evaluation) index(agg ast.Node, m *ast.MemberExpression, file string) (ast.Node, bool) {
	switch a := agg.(type) {
	case *ast.ObjectExpression:
		key, ok := ev.memberKey(m, file)
		if !ok {
			return nil, false
		}
		return ev.property(a, key, file)
	case *ast.ArrayExpression:
		if !m.Computed {
			return nil, false
		}
		lit, ok := ast.Unwrap(m.Property).(*ast.Literal)
		if !ok || lit.LitKind != ast.LiteralNumber {
			return nil, false
		}
		i, ok := arrayIndex(lit.Value)
		if !ok {
			return nil, false
		}
		return element(a, i)
	}
	return nil, false
}

// memberKey returns the static property name of a member access.
func (ev *evaluation) memberKey(m *ast.MemberExpression, file string) (string, bool) {
	if !m.Computed {
		return ast.IdentifierName(m.Property)
	}
	return ev.staticKey(m.Property, file)
}

// staticKey renders a key expression the way JavaScript converts property
// keys to strings.
func (ev *evaluation) staticKey(n ast.Node, file string) (string, bool) {
	value, _, ok := ev.resolve(n, file)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case *ast.Literal:
		switch v.LitKind {
		case ast.LiteralRegExp:
			return "", false
		default:
			return v.String(), true
		}
	case *ast.TemplateLiteral:
		if len(v.Expressions) == 0 && len(v.Quasis) == 1 {
			return v.Quasis[0], true
		}
	case *ast.Identifier:
		if v.Name == "undefined" {
			return "undefined", true
		}
	}
	return "", false
}

// property returns the value of the last property named key. Object
// literals with spreads are not searched.
func (ev *evaluation) property(o *ast.ObjectExpression, key, file string) (ast.Node, bool) {
	for i := len(o.Properties) - 1; i >= 0; i-- {
		pr, ok := o.Properties[i].(*ast.Property)
		if !ok {
			return nil, false
		}
		name, ok := ev.propertyName(pr, file)
		if ok && name == key {
			return pr.Value, true
		}
	}
	return nil, false
}

func (ev *evaluation) propertyName(pr *ast.Property, file string) (string, bool) {
	if pr.Computed {
		return ev.staticKey(pr.Key, file)
	}
	switch k := pr.Key.(type) {
	case *ast.Identifier:
		return k.Name, true
	case *ast.Literal:
		return k.String(), true
	}
	return "", false
}

func element(a *ast.ArrayExpression, i int) (ast.Node, bool) {
	if i < 0 || i >= len(a.Elements) {
		return nil, false
	}
	for _, el := range a.Elements[:i+1] {
		if _, spread := el.(*ast.SpreadElement); spread {
			return nil, false
		}
	}
	el := a.Elements[i]
	if el == nil {
		return nil, false
	}
	return el, true
}

func arrayIndex(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// step is one level of a destructuring pattern: a property key or an array
// index, and the default that applies when the source lacks it.
type step struct {
	key      string
	index    int
	isIndex  bool
	fallback ast.Node
}

// destructured locates the sub-expression of a destructured declarator's
// initializer bound to b. found is false when the pattern cannot be
// followed statically, for example through a rest element.
func (ev *evaluation) destructured(b *scope.Binding, file string) (ast.Node, string, bool) {
	steps, ok := ev.patternSteps(b.Declarator.ID, b.Identifier, file)
	if !ok {
		return nil, "", false
	}

	cur, curFile := b.Init(), file
	for _, s := range steps {
		next, nextFile, ok := ev.apply(cur, curFile, s)
		if !ok {
			if s.fallback == nil {
				return nil, "", false
			}
			next, nextFile = s.fallback, fileOf(s.fallback, file)
		}
		cur, curFile = next, nextFile
	}
	return cur, curFile, true
}

func (ev *evaluation) apply(n ast.Node, file string, s step) (ast.Node, string, bool) {
	agg, aggFile, ok := ev.resolve(n, file)
	if !ok {
		return nil, "", false
	}
	var value ast.Node
	switch a := agg.(type) {
	case *ast.ObjectExpression:
		if s.isIndex {
			return nil, "", false
		}
		value, ok = ev.property(a, s.key, aggFile)
	case *ast.ArrayExpression:
		if !s.isIndex {
			return nil, "", false
		}
		value, ok = element(a, s.index)
	default:
		return nil, "", false
	}
	if !ok {
		return nil, "", false
	}
	return value, fileOf(value, aggFile), true
}

// patternSteps returns the keys and indices leading from pattern to target.
func (ev *evaluation) patternSteps(pattern ast.Node, target *ast.Identifier, file string) ([]step, bool) {
	switch p := pattern.(type) {
	case *ast.Identifier:
		return nil, p == target
	case *ast.AssignmentPattern:
		return ev.patternSteps(p.Left, target, file)
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			pr, ok := prop.(*ast.Property)
			if !ok {
				continue
			}
			value, fallback := splitDefault(pr.Value)
			rest, ok := ev.patternSteps(value, target, file)
			if !ok {
				continue
			}
			key, ok := ev.propertyName(pr, file)
			if !ok {
				return nil, false
			}
			return append([]step{{key: key, fallback: fallback}}, rest...), true
		}
	case *ast.ArrayPattern:
		for i, el := range p.Elements {
			if el == nil {
				continue
			}
			if _, rest := el.(*ast.RestElement); rest {
				return nil, false
			}
			value, fallback := splitDefault(el)
			rest, ok := ev.patternSteps(value, target, file)
			if !ok {
				continue
			}
			return append([]step{{index: i, isIndex: true, fallback: fallback}}, rest...), true
		}
	}
	return nil, false
}

func splitDefault(n ast.Node) (ast.Node, ast.Node) {
	if ap, ok := n.(*ast.AssignmentPattern); ok {
		return ap.Left, ap.Right
	}
	return n, nil
}

// fileOf returns the path of the file n belongs to, or fallback for
// detached nodes.
func fileOf(n ast.Node, fallback string) string {
	if n == nil {
		return fallback
	}
	if prog := ast.ProgramOf(n); prog != nil && prog.Path != "" {
		return prog.Path
	}
	return fallback
}

// Describe renders where a constant value comes from: the literal itself,
// the variable it is read from, or a dotted member chain.
func Describe(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Literal:
		switch x.LitKind {
		case ast.LiteralNull:
			return "null"
		case ast.LiteralString:
			return "'" + x.String() + "'"
		default:
			return x.String()
		}
	case *ast.Identifier:
		return "variable '" + x.Name + "'"
	case *ast.MemberExpression:
		if name, ok := ast.IdentifierName(x.Property); ok && !x.Computed {
			return Describe(x.Object) + "." + name
		}
	case *ast.TypeAssertion:
		return Describe(x.Expression)
	}
	return "constant"
}
