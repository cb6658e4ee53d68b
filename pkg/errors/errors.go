package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a failure to load or decode an external file, such
// as a locale table or viewer configuration, with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a schema violation in an untrusted component
// tree. Path holds the ordered field/index segments from the tree root to
// the offending node; an empty path refers to the root itself.
type ValidationError struct {
	Path    []string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError for the given path.
func NewValidationError(path []string, message string, err error) error {
	return &ValidationError{Path: append([]string(nil), path...), Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Path) > 0 {
		return fmt.Sprintf("validation error: %s: %s", e.PathString(), e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PathString renders the field path in dotted form, e.g.
// "extra[0].hoverEvent.contents[1]".
func (e *ValidationError) PathString() string {
	if e == nil || len(e.Path) == 0 {
		return "(root)"
	}
	return strings.Join(e.Path, ".")
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
