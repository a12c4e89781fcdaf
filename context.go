package jslint

import (
	"errors"
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/modules"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/scope"
)

// errStopWalk ends a walk early without reporting an error to the caller.
var errStopWalk = errors.New("stop walk")

// Context provides rules with the file being linted, the node currently
// examined and the resolution services the analysis needs. Node contexts
// share the cache and services of their root.
type Context struct {
	// File is the source file being linted.
	File *ast.File

	// Node is the node being examined (nil for the file-level context).
	Node ast.Node

	// Parent provides access to the parent context in the hierarchy.
	Parent *Context

	// Bindings resolves identifiers to their declarations.
	Bindings scope.BindingResolver

	// Modules resolves imports across files. It may be nil, in which case
	// imported values are never considered resolvable.
	Modules modules.Resolver

	// Logger receives debug output from rules. It may be nil.
	Logger *slog.Logger

	// cache stores rule-specific data to avoid recomputation.
	// Keys should be prefixed with the rule name to avoid conflicts.
	cache map[string]interface{}
}

// ContextOption configures a root Context.
type ContextOption func(*Context)

// WithBindings sets the binding resolver. The default is a fresh
// scope.Resolver.
func WithBindings(resolver scope.BindingResolver) ContextOption {
	return func(ctx *Context) {
		ctx.Bindings = resolver
	}
}

// WithModules sets the cross-module resolver.
func WithModules(resolver modules.Resolver) ContextOption {
	return func(ctx *Context) {
		ctx.Modules = resolver
	}
}

// WithLogger sets the logger handed to rules.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(ctx *Context) {
		ctx.Logger = logger
	}
}

// NewContext creates a new root Context for a file.
func NewContext(file *ast.File, opts ...ContextOption) *Context {
	ctx := &Context{
		File:  file,
		cache: make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.Bindings == nil {
		ctx.Bindings = scope.NewResolver()
	}
	return ctx
}

// NewNodeContext creates a Context for a node below parent.
// This inherits the cache and services of the parent context.
func NewNodeContext(parent *Context, node ast.Node) *Context {
	return &Context{
		File:     parent.File,
		Node:     node,
		Parent:   parent,
		Bindings: parent.Bindings,
		Modules:  parent.Modules,
		Logger:   parent.Logger,
		cache:    parent.cache,
	}
}

// IsFileLevel returns true if this context is not bound to a node.
func (ctx *Context) IsFileLevel() bool {
	return ctx.Node == nil
}

// Path returns the path of the file being linted.
func (ctx *Context) Path() string {
	if ctx.File == nil {
		return ""
	}
	return ctx.File.Path
}

// GetCache retrieves a cached value by key.
// Returns nil if the key doesn't exist.
func (ctx *Context) GetCache(key string) interface{} {
	return ctx.cache[key]
}

// SetCache stores a value in the cache with the given key.
func (ctx *Context) SetCache(key string, value interface{}) {
	ctx.cache[key] = value
}

// GetRootContext returns the file-level context by traversing up the parent chain.
func (ctx *Context) GetRootContext() *Context {
	current := ctx
	for current.Parent != nil {
		current = current.Parent
	}
	return current
}

// WalkNodes executes fn for every node of the file in document order.
// The function receives a node context whose parent is ctx.
// Walking stops if the function returns an error.
func (ctx *Context) WalkNodes(fn func(nodeCtx *Context) error) error {
	if ctx.File == nil || ctx.File.Program == nil {
		return nil
	}
	root := ctx.Node
	if root == nil {
		root = ctx.File.Program
	}

	var walkErr error
	ast.Walk(root, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}
		if err := fn(NewNodeContext(ctx, n)); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	if errors.Is(walkErr, errStopWalk) {
		return nil
	}
	return walkErr
}

// WalkKinds executes fn for every node of one of the given kinds, in
// document order. Walking stops if the function returns an error.
func (ctx *Context) WalkKinds(kinds []ast.Kind, fn func(nodeCtx *Context) error) error {
	want := make(map[ast.Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	return ctx.WalkNodes(func(nodeCtx *Context) error {
		if !want[nodeCtx.Node.Kind()] {
			return nil
		}
		return fn(nodeCtx)
	})
}
