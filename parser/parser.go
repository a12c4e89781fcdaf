// Package parser converts TypeScript and JavaScript source into the ast
// package's syntax tree. Parsing itself is done by tree-sitter; this package
// maps the concrete syntax tree onto ESTree-shaped nodes.
package parser

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	fs "github.com/input-output-hk/catalyst-forge-libs/fs"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/input-output-hk/catalyst-forge-libs/jslint/ast"
	"github.com/input-output-hk/catalyst-forge-libs/jslint/errors"
)

// DefaultName is the file name used for sources parsed from strings.
const DefaultName = "input.ts"

// maxReportedSyntaxErrors caps how many syntax errors are logged or returned
// for one file.
const maxReportedSyntaxErrors = 5

// ParseOptions provides options for parsing source files.
type ParseOptions struct {
	// Dialect selects the grammar. DialectAuto picks it from the file
	// extension and falls back to TypeScript.
	Dialect ast.Dialect
	// StrictMode fails the parse when the source contains syntax errors.
	// Otherwise erroneous regions are kept as Opaque nodes.
	StrictMode bool
	// Filesystem allows injecting a custom filesystem implementation.
	// If nil, defaults to billy.NewBaseOSFS()
	Filesystem fs.Filesystem
	// Logger receives syntax error diagnostics. If nil, logging is disabled.
	Logger *slog.Logger
}

// Parse parses a source file from the given path.
func Parse(path string) (*ast.File, error) {
	return ParseContext(context.Background(), path)
}

// ParseWithOptions parses a source file with custom options.
func ParseWithOptions(path string, opts *ParseOptions) (*ast.File, error) {
	return ParseWithOptionsContext(context.Background(), path, opts)
}

// ParseContext parses a source file with cancellation support.
func ParseContext(ctx context.Context, path string) (*ast.File, error) {
	return ParseWithOptionsContext(ctx, path, nil)
}

// ParseWithOptionsContext parses a source file with custom options and cancellation support.
func ParseWithOptionsContext(ctx context.Context, path string, opts *ParseOptions) (*ast.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeCanceled, "context cancelled")
	}

	if opts == nil {
		opts = &ParseOptions{}
	}

	filesystem := opts.Filesystem
	if filesystem == nil {
		filesystem = billy.NewBaseOSFS()
	}

	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeNotFound, "failed to read source file",
			map[string]interface{}{"path": path})
	}

	return ParseSource(ctx, path, content, opts)
}

// ParseString parses TypeScript source from a string.
func ParseString(content string) (*ast.File, error) {
	return ParseStringWithOptions(content, nil)
}

// ParseStringWithOptions parses source from a string with options.
func ParseStringWithOptions(content string, opts *ParseOptions) (*ast.File, error) {
	return ParseSource(context.Background(), DefaultName, []byte(content), opts)
}

// ParseReader parses source from an io.Reader. The name is used as the file
// path and to pick the dialect.
func ParseReader(reader io.Reader, name string) (*ast.File, error) {
	return ParseReaderWithOptions(reader, name, nil)
}

// ParseReaderWithOptions parses source from an io.Reader with options.
func ParseReaderWithOptions(reader io.Reader, name string, opts *ParseOptions) (*ast.File, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to read from reader",
			map[string]interface{}{"path": name})
	}
	return ParseSource(context.Background(), name, content, opts)
}

// ParseSource parses content as the file at path.
func ParseSource(ctx context.Context, path string, content []byte, opts *ParseOptions) (*ast.File, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}
	dialect := opts.Dialect
	if dialect == ast.DialectAuto {
		dialect = DialectForPath(path)
	}
	lang, err := language(dialect)
	if err != nil {
		return nil, err
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(lang)

	tree, err := p.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeParseFailed, "tree-sitter parse failed",
			map[string]interface{}{"path": path})
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		syntaxErrs := collectSyntaxErrors(root, path)
		if opts.Logger != nil {
			for _, e := range syntaxErrs {
				opts.Logger.DebugContext(ctx, "syntax error",
					"path", path,
					"line", e.StartLine,
					"column", e.StartColumn)
			}
		}
		if opts.StrictMode {
			first := syntaxErrs[0]
			return nil, errors.New(errors.CodeParseFailed, "source contains syntax errors").
				WithContext("path", path).
				WithContext("line", first.StartLine).
				WithContext("column", first.StartColumn).
				WithContext("count", len(syntaxErrs))
		}
	}

	c := &converter{src: content, path: path}
	program := c.program(root)
	ast.Link(program)

	return &ast.File{
		Path:    path,
		Dialect: dialect,
		Source:  content,
		Program: program,
	}, nil
}

// DialectForPath picks the grammar for a file from its extension.
func DialectForPath(path string) ast.Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return ast.DialectTSX
	case ".js", ".jsx", ".mjs", ".cjs":
		return ast.DialectJavaScript
	default:
		return ast.DialectTypeScript
	}
}

func language(d ast.Dialect) (*sitter.Language, error) {
	switch d {
	case ast.DialectTypeScript:
		return typescript.GetLanguage(), nil
	case ast.DialectTSX:
		return tsx.GetLanguage(), nil
	case ast.DialectJavaScript:
		return javascript.GetLanguage(), nil
	default:
		return nil, errors.Newf(errors.CodeUnsupported, "unsupported dialect: %s", d)
	}
}

// collectSyntaxErrors returns the locations of ERROR and missing nodes,
// outermost first.
func collectSyntaxErrors(root *sitter.Node, path string) []ast.SourceLocation {
	var out []ast.SourceLocation
	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if len(out) >= maxReportedSyntaxErrors {
			return
		}
		if n.IsError() || n.IsMissing() {
			out = append(out, location(n, path))
			return
		}
		if !n.HasError() {
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			visit(n.Child(i))
		}
	}
	visit(root)
	if len(out) == 0 {
		out = append(out, location(root, path))
	}
	return out
}

func location(n *sitter.Node, path string) ast.SourceLocation {
	start, end := n.StartPoint(), n.EndPoint()
	return ast.SourceLocation{
		File:        path,
		StartLine:   int(start.Row) + 1,
		StartColumn: int(start.Column),
		EndLine:     int(end.Row) + 1,
		EndColumn:   int(end.Column),
	}
}
