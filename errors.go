package client

import apierrors "github.com/Smarandii/hvmnd-api-client/internal/errors"

// Error is returned by every failing operation. Branch on Kind rather than
// on the message.
type Error = apierrors.Error

// ErrorKind classifies an Error.
type ErrorKind = apierrors.Kind

const (
	KindTransport         = apierrors.Transport
	KindMalformedResponse = apierrors.MalformedResponse
	KindAPI               = apierrors.API
	KindNotFound          = apierrors.NotFound
)

// KindOf reports the kind of err and whether err came from this client.
func KindOf(err error) (ErrorKind, bool) { return apierrors.KindOf(err) }

// IsTransport reports whether err is a connection-level failure.
func IsTransport(err error) bool { return apierrors.Is(err, apierrors.Transport) }

// IsMalformedResponse reports whether the server sent a body that is not a
// JSON object.
func IsMalformedResponse(err error) bool { return apierrors.Is(err, apierrors.MalformedResponse) }

// IsAPI reports whether the server rejected the request with a message.
func IsAPI(err error) bool { return apierrors.Is(err, apierrors.API) }

// IsNotFound reports whether err came from Response.Err on a soft-not-found
// result.
func IsNotFound(err error) bool { return apierrors.Is(err, apierrors.NotFound) }
