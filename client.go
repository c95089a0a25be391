// Package client is a Go client for the hvmnd API: compute nodes, payments,
// users and the quiz feature. Every method is one synchronous HTTP round
// trip.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Smarandii/hvmnd-api-client/internal/api"
)

const defaultUserAgent = "hvmnd-api-client"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one hvmnd API. It keeps no per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	rest      *resty.Client
	log       zerolog.Logger
	userAgent string
	debug     bool

	readyInitial time.Duration
	readyMax     time.Duration
}

// New constructs a Client for the API rooted at baseURL, e.g.
// "http://localhost:8080". Additional options can be provided via
// functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid baseURL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:      trimmed,
		http:         &http.Client{Timeout: 30 * time.Second},
		log:          log.Logger.With().Str("component", "hvmnd_client").Logger(),
		userAgent:    defaultUserAgent,
		readyInitial: 200 * time.Millisecond,
		readyMax:     5 * time.Second,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport, log: c.log}
	}
	c.rest = api.NewRestClient(c.http, c.baseURL, c.log, c.userAgent)
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Node operations
// --------------------------------------------------------------------

// GetNodes lists nodes matching filter. Zero-valued filter fields are not
// sent. A 404 from the server yields an empty, NotFound list, not an error.
func (c *Client) GetNodes(ctx context.Context, filter NodeFilter) (*NodeList, error) {
	return api.GetNodes(ctx, c.rest, c.log, filter)
}

// UpdateNode sends node to the API. Timestamps are written as UTC with a
// "Z" suffix.
func (c *Client) UpdateNode(ctx context.Context, node Node) (*Response, error) {
	return api.UpdateNode(ctx, c.rest, c.log, node)
}

// --------------------------------------------------------------------
// Payment operations
// --------------------------------------------------------------------

// GetPayments lists payments matching filter.
func (c *Client) GetPayments(ctx context.Context, filter PaymentFilter) (*PaymentList, error) {
	return api.GetPayments(ctx, c.rest, c.log, filter)
}

// CreatePaymentTicket opens a payment ticket for the user.
func (c *Client) CreatePaymentTicket(ctx context.Context, userID int64, amount float64) (*Response, error) {
	return api.CreatePaymentTicket(ctx, c.rest, c.log, userID, amount)
}

// CompletePayment marks a payment ticket as completed.
func (c *Client) CompletePayment(ctx context.Context, id int64) (*Response, error) {
	return api.CompletePayment(ctx, c.rest, c.log, id)
}

// CancelPayment marks a payment ticket as cancelled.
func (c *Client) CancelPayment(ctx context.Context, id int64) (*Response, error) {
	return api.CancelPayment(ctx, c.rest, c.log, id)
}

// --------------------------------------------------------------------
// User operations
// --------------------------------------------------------------------

// GetUsers lists users matching filter.
func (c *Client) GetUsers(ctx context.Context, filter UserFilter) (*UserList, error) {
	return api.GetUsers(ctx, c.rest, c.log, filter)
}

// CreateOrUpdateUser upserts a user keyed by Telegram ID.
func (c *Client) CreateOrUpdateUser(ctx context.Context, input UserInput) (*Response, error) {
	return api.CreateOrUpdateUser(ctx, c.rest, c.log, input)
}

// --------------------------------------------------------------------
// Quiz operations
// --------------------------------------------------------------------

// SaveHashMapping stores a question/answer pair and returns the server's
// reply, which includes the hash.
func (c *Client) SaveHashMapping(ctx context.Context, question, answer string) (*Response, error) {
	return api.SaveHashMapping(ctx, c.rest, c.log, question, answer)
}

// GetQuestionAnswerByHash looks up a question/answer pair by hash.
func (c *Client) GetQuestionAnswerByHash(ctx context.Context, answerHash string) (*Response, error) {
	return api.GetQuestionAnswerByHash(ctx, c.rest, c.log, answerHash)
}

// SaveUserAnswer records a user's answer to a question.
func (c *Client) SaveUserAnswer(ctx context.Context, telegramID int64, question, answer string) (*Response, error) {
	return api.SaveUserAnswer(ctx, c.rest, c.log, telegramID, question, answer)
}

// --------------------------------------------------------------------
// Health
// --------------------------------------------------------------------

// Ping reports whether the API answered GET /ping with 200. It never
// returns an error: connection failures read as false.
func (c *Client) Ping(ctx context.Context) bool {
	return api.Ping(ctx, c.rest, c.log)
}
