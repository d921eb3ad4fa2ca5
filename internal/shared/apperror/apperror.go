// Package apperror defines the error taxonomy shared by all layers.
// The service layer raises an Error with a kind and a human-readable
// reason; the HTTP layer maps the kind to a status code.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindInternal is an unexpected failure. It is the zero value so
	// that unclassified errors default to it.
	KindInternal Kind = iota

	// KindInvalidArgument is a client-induced violation of a
	// precondition or business rule.
	KindInvalidArgument

	// KindNotFound means the addressed entity does not exist.
	KindNotFound

	// KindConflict is a uniqueness or foreign-key race detected by the
	// database after the service-level pre-checks passed.
	KindConflict
)

// String returns the wire name of the kind, as used in error bodies.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// Error carries a kind plus a reason suitable for the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// InvalidArgument builds an INVALID_ARGUMENT error with the given reason.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NOT_FOUND error with the given reason.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a CONFLICT error with the given reason.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err. Errors that are not an *Error are
// reported as KindInternal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
