package catalog

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrEmptyCatalog indicates a definition with no prohibited-claim lists.
	ErrEmptyCatalog = errors.New("catalog has no prohibited claim patterns")
)

// NotFoundError indicates a policy pack lookup for an unknown ID. It is a
// distinct error type so callers can tell an operator mistake apart from a
// successful-but-empty listing.
type NotFoundError struct {
	PackID string
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("policy pack %q not found", e.PackID)
}

// IsNotFound reports whether err is a policy pack NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// CompileError indicates an invalid regex in the catalog definition.
type CompileError struct {
	Section string
	Pattern string
	Cause   error
}

// Error returns the error message.
func (e *CompileError) Error() string {
	return fmt.Sprintf("catalog section %s: invalid pattern %q: %v", e.Section, e.Pattern, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *CompileError) Unwrap() error {
	return e.Cause
}
