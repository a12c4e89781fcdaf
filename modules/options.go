package modules

import (
	"log/slog"

	fs "github.com/input-output-hk/catalyst-forge-libs/fs"
)

// DefaultExtensions are tried, in order, for extensionless specifiers.
var DefaultExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs"}

// projectOptions holds configuration options for a Project.
type projectOptions struct {
	filesystem  fs.Filesystem
	logger      *slog.Logger
	extensions  []string
	concurrency int
	strict      bool
}

// Option is a functional option for configuring a Project.
type Option func(*projectOptions)

// WithFilesystem reads source files through filesystem.
// If filesystem is nil, the OS filesystem is used.
func WithFilesystem(filesystem fs.Filesystem) Option {
	return func(opts *projectOptions) {
		opts.filesystem = filesystem
	}
}

// WithLogger configures the project with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *projectOptions) {
		opts.logger = logger
	}
}

// WithExtensions replaces the file extensions tried during resolution.
func WithExtensions(extensions ...string) Option {
	return func(opts *projectOptions) {
		opts.extensions = extensions
	}
}

// WithConcurrency bounds how many files Preload parses at once.
// Values below one mean no bound.
func WithConcurrency(n int) Option {
	return func(opts *projectOptions) {
		opts.concurrency = n
	}
}

// WithStrictParsing makes files with syntax errors fail to load.
func WithStrictParsing(strict bool) Option {
	return func(opts *projectOptions) {
		opts.strict = strict
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *projectOptions {
	return &projectOptions{
		filesystem:  nil, // OS filesystem
		logger:      nil, // No default logger
		extensions:  DefaultExtensions,
		concurrency: 8,
	}
}
