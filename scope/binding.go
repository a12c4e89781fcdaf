// Package scope resolves identifier references to the declarations that bind
// them. Scope tables are built lazily, once per Program.
package scope

import "github.com/input-output-hk/catalyst-forge-libs/jslint/ast"

// Kind classifies a binding by the construct that declared it.
type Kind int

// Binding kinds enumeration
const (
	KindParameter Kind = iota
	KindVariable
	KindImport
	KindFunction
	KindClass
	KindCatchParameter
)

// String returns the string representation of the binding kind.
func (k Kind) String() string {
	switch k {
	case KindParameter:
		return "parameter"
	case KindVariable:
		return "variable"
	case KindImport:
		return "import"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindCatchParameter:
		return "catch-parameter"
	default:
		return "unknown"
	}
}

// Namespace is the imported name of `import * as ns`.
const Namespace = "*"

// Default is the imported name of a default import.
const Default = "default"

// Binding describes one declared name. Bindings are read-only once the scope
// table that owns them is built.
type Binding struct {
	Kind Kind
	Name string
	// Identifier is the declaring occurrence of the name.
	Identifier *ast.Identifier
	// Declaration is the declaring construct: a VariableDeclarator, the
	// function, class or import specifier, or the owning function or catch
	// clause for parameters.
	Declaration ast.Node
	// Declarator and DeclKind are set for variables.
	Declarator *ast.VariableDeclarator
	DeclKind   string
	// Source and Imported are set for imports. Imported is Default, Namespace
	// or an export name.
	Source   string
	Imported string
	// Reassigned is set when the name is the target of an assignment or
	// update anywhere in the file.
	Reassigned bool
}

// Init returns the declarator's initializer for variables.
func (b *Binding) Init() ast.Node {
	if b.Declarator == nil {
		return nil
	}
	return b.Declarator.Init
}

// Destructured reports whether the variable is bound through a pattern.
func (b *Binding) Destructured() bool {
	if b.Declarator == nil {
		return false
	}
	_, isID := b.Declarator.ID.(*ast.Identifier)
	return !isID
}

// BindingResolver resolves a reference to its binding. The scope is implied
// by the identifier's position in its linked tree.
type BindingResolver interface {
	ResolveBinding(id *ast.Identifier) (*Binding, bool)
}
