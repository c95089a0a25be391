package errors

import (
	"fmt"
	"net/http"
)

// NewTransportError wraps a failure that happened before any HTTP response
// was received.
func NewTransportError(op string, err error) *Error {
	return &Error{
		Kind: Transport,
		Op:   op,
		Err:  fmt.Errorf("%s network error: %w", op, err),
	}
}

// NewAPIError builds an application-level error from the server message.
func NewAPIError(op string, statusCode int, message string) *Error {
	return &Error{
		Kind:       API,
		Op:         op,
		StatusCode: statusCode,
		Message:    "API Error: " + message,
	}
}

// NewInvalidResponseError reports a successful status whose body could not
// be decoded.
func NewInvalidResponseError(op string, statusCode int, raw string, cause error) *Error {
	return &Error{
		Kind:       MalformedResponse,
		Op:         op,
		StatusCode: statusCode,
		Message:    "Invalid response: " + raw,
		Err:        cause,
	}
}

// NewHTTPStatusError reports a failing status whose body could not be
// decoded. The message follows the familiar
// "404 Client Error: Not Found for url: ..." shape.
func NewHTTPStatusError(op string, statusCode int, reason, url string, cause error) *Error {
	class := "Client"
	if statusCode >= http.StatusInternalServerError {
		class = "Server"
	}
	return &Error{
		Kind:       MalformedResponse,
		Op:         op,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("%d %s Error: %s for url: %s", statusCode, class, reason, url),
		Err:        cause,
	}
}

// NewNotFoundError converts a soft-not-found result into an error.
func NewNotFoundError(op, message string) *Error {
	return &Error{
		Kind:       NotFound,
		Op:         op,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}
