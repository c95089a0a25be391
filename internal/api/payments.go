package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// GetPayments lists payments matching filter.
func GetPayments(ctx context.Context, rc *resty.Client, logger zerolog.Logger, filter types.PaymentFilter) (*types.PaymentList, error) {
	const op = "get payments"
	q := url.Values{}
	setInt64(q, "id", filter.ID)
	setInt64(q, "user_id", filter.UserID)
	setString(q, "status", filter.Status)
	setInt(q, "limit", filter.Limit)

	resp, err := do(ctx, rc, logger, op, http.MethodGet, "/payments", q, nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeRecords(op, resp)
	if err != nil {
		return nil, err
	}

	parse, skip := timestampParser(logger, op), skipHandler(logger, op)
	payments := make([]types.Payment, 0, len(recs))
	for _, raw := range recs {
		p, err := types.PaymentFromRecord(raw, parse, skip)
		if err != nil {
			skipRecord(logger, op, raw, err)
			continue
		}
		payments = append(payments, p)
	}
	return &types.PaymentList{Response: *resp, Payments: payments}, nil
}

// CreatePaymentTicket opens a payment ticket for userID.
func CreatePaymentTicket(ctx context.Context, rc *resty.Client, logger zerolog.Logger, userID int64, amount float64) (*types.Response, error) {
	body := types.CreatePaymentRequest{UserID: userID, Amount: amount}
	return do(ctx, rc, logger, "create payment ticket", http.MethodPost, "/payments", nil, body)
}

// CompletePayment marks payment id as completed.
func CompletePayment(ctx context.Context, rc *resty.Client, logger zerolog.Logger, id int64) (*types.Response, error) {
	return do(ctx, rc, logger, "complete payment", http.MethodPatch, fmt.Sprintf("/payments/complete/%d", id), nil, nil)
}

// CancelPayment marks payment id as cancelled.
func CancelPayment(ctx context.Context, rc *resty.Client, logger zerolog.Logger, id int64) (*types.Response, error) {
	return do(ctx, rc, logger, "cancel payment", http.MethodPatch, fmt.Sprintf("/payments/cancel/%d", id), nil, nil)
}
