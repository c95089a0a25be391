package client

import (
	"time"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Node        = types.Node
	Payment     = types.Payment
	User        = types.User
	QuizMapping = types.QuizMapping

	// Filters and requests
	NodeFilter    = types.NodeFilter
	PaymentFilter = types.PaymentFilter
	UserFilter    = types.UserFilter
	UserInput     = types.UserInput

	// Responses
	Response    = types.Response
	NodeList    = types.NodeList
	PaymentList = types.PaymentList
	UserList    = types.UserList
)

// ParseTimestamp parses ISO-8601 text as the client does for list results.
func ParseTimestamp(s string) (time.Time, error) { return types.ParseTimestamp(s) }

// FormatTimestamp renders t the way the client sends timestamps: UTC,
// RFC 3339, "Z" suffix.
func FormatTimestamp(t time.Time) string { return types.FormatTimestamp(t) }
