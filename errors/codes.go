// Package errors provides the structured error type used at the fallible
// boundaries of the rule pack: parsing source files, reading them from a
// filesystem and resolving modules across a project.
package errors

// ErrorCode represents a specific error condition in the rule pack.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeModuleNotFound indicates an import specifier could not be resolved to a file.
	CodeModuleNotFound ErrorCode = "MODULE_NOT_FOUND"

	// CodeExportNotFound indicates a module does not export the requested name.
	CodeExportNotFound ErrorCode = "EXPORT_NOT_FOUND"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeParseFailed indicates source text could not be parsed into a syntax tree.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// CodeUnsupported indicates a file type or language dialect is not supported.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// System errors.

	// CodeCanceled indicates the operation was canceled through its context.
	CodeCanceled ErrorCode = "CANCELED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
