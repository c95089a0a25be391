package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Node is a rentable compute node. Fields the client does not model are kept
// in Extra so a fetched node can be sent back unchanged.
type Node struct {
	ID                         int64      `json:"id"`
	Renter                     *int64     `json:"renter"`
	Status                     string     `json:"status"`
	AnyDeskAddress             string     `json:"any_desk_address"`
	AnyDeskPassword            string     `json:"any_desk_password,omitempty"`
	RentStartTime              *time.Time `json:"rent_start_time"`
	LastBalanceUpdateTimestamp *time.Time `json:"last_balance_update_timestamp"`

	Extra map[string]RawField `json:"-"`
}

// Payment is a payment ticket.
type Payment struct {
	ID       int64      `json:"id"`
	UserID   int64      `json:"user_id"`
	Amount   float64    `json:"amount"`
	Status   string     `json:"status"`
	Datetime *time.Time `json:"datetime"`
}

// User is a Telegram user known to the API.
type User struct {
	ID           int64   `json:"id"`
	TelegramID   int64   `json:"telegram_id"`
	FirstName    string  `json:"first_name,omitempty"`
	LastName     string  `json:"last_name,omitempty"`
	Username     string  `json:"username,omitempty"`
	LanguageCode string  `json:"language_code,omitempty"`
	TotalSpent   float64 `json:"total_spent"`
	Balance      float64 `json:"balance"`
	Banned       bool    `json:"banned"`
}

// QuizMapping links a question/answer pair to its answer hash.
type QuizMapping struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Hash     string `json:"hash,omitempty"`
}
