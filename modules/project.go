// Package modules resolves relative imports between the files of a project
// and finds the initializers of exported names. Files are read through an
// fs.Filesystem and parsed on first use.
package modules

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"golang.org/x/sync/errgroup"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/parser"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/scope"
)

// Resolver is the cross-module lookup used by constant analysis.
type Resolver interface {
	// ResolveModule maps an import specifier written in fromFile to the path
	// of the imported file.
	ResolveModule(specifier, fromFile string) (string, bool)
	// ExportedInitializer returns the node an export name of file evaluates
	// to. The node may live in another file when the name is re-exported.
	ExportedInitializer(file, exportName string) (ast.Node, bool)
}

// Project is a lazily parsed set of source files. It is safe for concurrent use.
type Project struct {
	opts *projectOptions

	mu    sync.Mutex
	files map[string]*entry
}

// entry caches the outcome of loading one file, failures included.
type entry struct {
	once  sync.Once
	added bool
	file  *ast.File
	err   error
}

var _ Resolver = (*Project)(nil)

// NewProject creates an empty project.
func NewProject(opts ...Option) *Project {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.filesystem == nil {
		options.filesystem = billy.NewBaseOSFS()
	}
	return &Project{
		opts:  options,
		files: make(map[string]*entry),
	}
}

// Add registers an already parsed file under its path, replacing any cached
// version.
func (p *Project) Add(file *ast.File) {
	e := &entry{file: file, added: true}
	e.once.Do(func() {})

	p.mu.Lock()
	defer p.mu.Unlock()
	p.files[filepath.Clean(file.Path)] = e
}

// File returns the parsed file at path, parsing it on first use.
func (p *Project) File(ctx context.Context, path string) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeCanceled, "context cancelled")
	}
	path = filepath.Clean(path)

	p.mu.Lock()
	e, ok := p.files[path]
	if !ok {
		e = &entry{}
		p.files[path] = e
	}
	p.mu.Unlock()

	e.once.Do(func() {
		e.file, e.err = parser.ParseWithOptionsContext(ctx, path, &parser.ParseOptions{
			Filesystem: p.opts.filesystem,
			Logger:     p.opts.logger,
			StrictMode: p.opts.strict,
		})
		if e.err != nil && p.opts.logger != nil {
			p.opts.logger.DebugContext(ctx, "failed to load module", "path", path, "error", e.err)
		}
	})
	return e.file, e.err
}

// Preload parses paths concurrently and returns the first failure.
func (p *Project) Preload(ctx context.Context, paths ...string) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.opts.concurrency > 0 {
		g.SetLimit(p.opts.concurrency)
	}
	for _, path := range paths {
		g.Go(func() error {
			_, err := p.File(gctx, path)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return errors.WrapWithContext(err, errors.CodeOf(err), "failed to preload project files",
			map[string]interface{}{"count": len(paths)})
	}
	return nil
}

// ResolveModule maps a relative specifier to an existing file. Bare and
// absolute specifiers are not resolved.
func (p *Project) ResolveModule(specifier, fromFile string) (string, bool) {
	if !isRelative(specifier) {
		return "", false
	}
	base := filepath.Join(filepath.Dir(fromFile), filepath.FromSlash(specifier))

	for _, candidate := range p.candidates(base) {
		if p.exists(candidate) {
			return candidate, true
		}
	}

	if p.opts.logger != nil {
		p.opts.logger.Debug("module not resolved", "specifier", specifier, "from", fromFile)
	}
	return "", false
}

// ExportedInitializer returns the node exportName of file evaluates to: the
// initializer of an exported const, the exported function or class, the
// default export expression, or the local identifier behind an export
// specifier, let or var. Re-exports are followed.
func (p *Project) ExportedInitializer(file, exportName string) (ast.Node, bool) {
	return p.exported(filepath.Clean(file), exportName, make(map[string]bool))
}

func (p *Project) exported(path, name string, seen map[string]bool) (ast.Node, bool) {
	key := path + "#" + name
	if seen[key] {
		return nil, false
	}
	seen[key] = true

	f, err := p.File(context.Background(), path)
	if err != nil {
		return nil, false
	}

	var starSources []string
	for _, stmt := range f.Program.Body {
		switch decl := stmt.(type) {
		case *ast.ExportNamedDeclaration:
			if decl.Declaration != nil {
				if n, ok := declared(decl.Declaration, name); ok {
					return n, true
				}
				continue
			}
			for _, spec := range decl.Specifiers {
				if spec.Exported == nil || spec.Exported.Name != name || spec.Local == nil {
					continue
				}
				if decl.Source == nil {
					return spec.Local, true
				}
				target, ok := p.ResolveModule(sourceOf(decl.Source), path)
				if !ok {
					return nil, false
				}
				return p.exported(target, spec.Local.Name, seen)
			}
		case *ast.ExportDefaultDeclaration:
			if name == "default" && decl.Declaration != nil {
				return decl.Declaration, true
			}
		case *ast.ExportAllDeclaration:
			if decl.Exported == nil && decl.Source != nil {
				starSources = append(starSources, sourceOf(decl.Source))
			}
		}
	}

	if name == "default" {
		return nil, false
	}
	for _, src := range starSources {
		target, ok := p.ResolveModule(src, path)
		if !ok {
			continue
		}
		if n, ok := p.exported(target, name, seen); ok {
			return n, true
		}
	}

	if p.opts.logger != nil {
		p.opts.logger.Debug("export not found", "path", path, "export", name)
	}
	return nil, false
}

// declared finds name among the bindings of an exported declaration.
func declared(decl ast.Node, name string) (ast.Node, bool) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, declarator := range d.Declarations {
			if id, ok := declarator.ID.(*ast.Identifier); ok {
				if id.Name != name {
					continue
				}
				if d.DeclKind == "const" && declarator.Init != nil {
					return declarator.Init, true
				}
				return id, true
			}
			for _, id := range scope.BoundIdentifiers(declarator.ID) {
				if id.Name == name {
					return id, true
				}
			}
		}
	case *ast.FunctionDeclaration:
		if d.ID != nil && d.ID.Name == name {
			return d, true
		}
	case *ast.ClassDeclaration:
		if d.ID != nil && d.ID.Name == name {
			return d, true
		}
	}
	return nil, false
}

func (p *Project) candidates(base string) []string {
	var out []string
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	switch ext {
	case ".js":
		out = append(out, stem+".ts", stem+".tsx", base)
	case ".jsx":
		out = append(out, stem+".tsx", base)
	case ".mjs":
		out = append(out, stem+".mts", base)
	case ".cjs":
		out = append(out, stem+".cts", base)
	default:
		if p.knownExtension(ext) {
			out = append(out, base)
		}
	}

	for _, e := range p.opts.extensions {
		out = append(out, base+e)
	}
	for _, e := range p.opts.extensions {
		out = append(out, filepath.Join(base, "index"+e))
	}
	return out
}

func (p *Project) knownExtension(ext string) bool {
	for _, e := range p.opts.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (p *Project) exists(path string) bool {
	p.mu.Lock()
	e, cached := p.files[path]
	p.mu.Unlock()
	if cached && e.added {
		return true
	}

	info, err := p.opts.filesystem.Stat(path)
	return err == nil && !info.IsDir()
}

func isRelative(specifier string) bool {
	return specifier == "." || specifier == ".." ||
		strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

func sourceOf(lit *ast.Literal) string {
	s, _ := lit.Value.(string)
	return s
}
