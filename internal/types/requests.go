package types

// ------------------------------
// Filters
// ------------------------------

// Zero-valued filter fields are left out of the query string.

// NodeFilter narrows GET /nodes.
type NodeFilter struct {
	ID             int64
	Renter         string // a renter id, or "non_null" for any rented node
	Status         string
	AnyDeskAddress string
	Software       string
}

// PaymentFilter narrows GET /payments.
type PaymentFilter struct {
	ID     int64
	UserID int64
	Status string
	Limit  int
}

// UserFilter narrows GET /users.
type UserFilter struct {
	ID         int64
	TelegramID int64
	Username   string
	Limit      int
}

// ------------------------------
// Request Types
// ------------------------------

// UserInput is the create-or-update payload for POST /users. Nil fields are
// not sent.
type UserInput struct {
	TelegramID   int64    `json:"telegram_id"`
	FirstName    *string  `json:"first_name,omitempty"`
	LastName     *string  `json:"last_name,omitempty"`
	Username     *string  `json:"username,omitempty"`
	LanguageCode *string  `json:"language_code,omitempty"`
	TotalSpent   *float64 `json:"total_spent,omitempty"`
	Balance      *float64 `json:"balance,omitempty"`
	Banned       *bool    `json:"banned,omitempty"`
}

// CreatePaymentRequest is the body of POST /payments.
type CreatePaymentRequest struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

// SaveHashRequest is the body of POST /quiz/save-hash.
type SaveHashRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SaveAnswerRequest is the body of POST /quiz/save-answer.
type SaveAnswerRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}
