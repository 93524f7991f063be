// Package errs defines the error taxonomy shared by all ordercheck
// components. Every failure surfaced to the user is one of four kinds:
// a path that cannot be read, an input that cannot be parsed, an input
// whose shape is wrong, or an output that cannot be written.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindFileAccess indicates a path is missing or unreadable.
	KindFileAccess Kind = iota + 1

	// KindParse indicates a malformed PDF or CSV input.
	KindParse

	// KindSchema indicates a structurally valid input whose shape is
	// unusable: a missing key column, a missing field, a duplicate key.
	KindSchema

	// KindWrite indicates the output file cannot be created or written.
	KindWrite
)

// String returns the user-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFileAccess:
		return "file access error"
	case KindParse:
		return "parse error"
	case KindSchema:
		return "schema error"
	case KindWrite:
		return "write error"
	}
	return "error"
}

// Error carries the failure kind together with the operation and path it
// occurred on, so messages always name the failing file and reason.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "read order file"
	Path string // file path if applicable
	Err  error  // underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Access wraps err as a FileAccess error.
func Access(op, path string, err error) error {
	return &Error{Kind: KindFileAccess, Op: op, Path: path, Err: err}
}

// Parse wraps err as a Parse error.
func Parse(op, path string, err error) error {
	return &Error{Kind: KindParse, Op: op, Path: path, Err: err}
}

// Schema wraps err as a Schema error.
func Schema(op, path string, err error) error {
	return &Error{Kind: KindSchema, Op: op, Path: path, Err: err}
}

// Write wraps err as a Write error.
func Write(op, path string, err error) error {
	return &Error{Kind: KindWrite, Op: op, Path: path, Err: err}
}

// Schemaf builds a Schema error from a format string.
func Schemaf(op, path, format string, args ...interface{}) error {
	return &Error{Kind: KindSchema, Op: op, Path: path, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether any error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
