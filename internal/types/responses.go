package types

import (
	"encoding/json"
	"fmt"

	apierrors "github.com/Smarandii/hvmnd-api-client/internal/errors"
)

// RawField is an undecoded JSON value.
type RawField = json.RawMessage

// ------------------------------
// Response Types
// ------------------------------

// Response is the handled JSON envelope returned by every endpoint.
type Response struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Data    RawField `json:"data,omitempty"`

	// Body holds every top-level field exactly as the server sent it.
	Body map[string]RawField `json:"-"`

	// NotFound is set when the server answered 404 and the handler
	// substituted an empty result.
	NotFound bool `json:"-"`

	StatusCode int `json:"-"`
}

// DecodeData unmarshals the data field into v. A missing or null data field
// leaves v untouched.
func (r *Response) DecodeData(v any) error {
	if r == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// Field unmarshals the top-level body field name into v and reports whether
// it was present.
func (r *Response) Field(name string, v any) (bool, error) {
	if r == nil {
		return false, nil
	}
	raw, ok := r.Body[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode field %s: %w", name, err)
	}
	return true, nil
}

// Err returns a NotFound error for soft-not-found responses and nil
// otherwise.
func (r *Response) Err() error {
	if r == nil || !r.NotFound {
		return nil
	}
	return apierrors.NewNotFoundError("", r.Error)
}

// NodeList is the result of GET /nodes.
type NodeList struct {
	Response
	Nodes []Node `json:"-"`
}

// PaymentList is the result of GET /payments.
type PaymentList struct {
	Response
	Payments []Payment `json:"-"`
}

// UserList is the result of GET /users.
type UserList struct {
	Response
	Users []User `json:"-"`
}
