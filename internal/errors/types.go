// Package errors provides the error kinds returned by the hvmnd client.
// Callers branch on Kind instead of matching message text.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies which stage of a request produced an error.
type Kind int

const (
	// Transport errors happen below HTTP: refused connections, DNS failures,
	// timeouts, cancelled contexts.
	Transport Kind = iota

	// MalformedResponse means the server answered with a body that is not a
	// JSON object.
	MalformedResponse

	// API errors carry a server-supplied message: a 2xx response with a
	// negative success flag, or a non-2xx status other than 404.
	API

	// NotFound is produced only on request through Response.Err; the
	// response handler itself treats 404 as an empty result.
	NotFound
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Transport:
		return "Transport"
	case MalformedResponse:
		return "MalformedResponse"
	case API:
		return "API"
	case NotFound:
		return "NotFound"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type returned by client operations.
type Error struct {
	Kind       Kind
	Op         string // client operation, e.g. "get nodes"
	StatusCode int    // HTTP status code (0 for transport errors)
	Message    string // server message or fallback text
	Err        error  // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Op != "" && e.Message != "":
		return e.Op + ": " + e.Message
	case e.Message != "":
		return e.Message
	case e.Err != nil && e.Op != "":
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf reports the kind of err and whether err is an *Error at all.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
