package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/Smarandii/hvmnd-api-client"
)

func TestGetPayments_ParsesDatetimeAndOmitsFilters(t *testing.T) {
	t.Parallel()
	queries := make(chan url.Values, 2)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query()
		writeJSON(w, http.StatusOK, `{"success":true,"data":[
			{"id":9,"user_id":3,"amount":50,"status":"pending","datetime":"2024-06-01T09:00:00+00:00"},
			{"id":10,"user_id":3,"amount":25.5,"status":"completed","datetime":null}
		]}`)
	}))
	ctx := context.Background()

	list, err := c.GetPayments(ctx, client.PaymentFilter{UserID: 3, Limit: 5})
	require.NoError(t, err)
	q := <-queries
	assert.Equal(t, "3", q.Get("user_id"))
	assert.Equal(t, "5", q.Get("limit"))
	assert.False(t, q.Has("id"))
	assert.False(t, q.Has("status"))

	require.Len(t, list.Payments, 2)
	require.NotNil(t, list.Payments[0].Datetime)
	assert.True(t, list.Payments[0].Datetime.Equal(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)))
	assert.Nil(t, list.Payments[1].Datetime)

	_, err = c.GetPayments(ctx, client.PaymentFilter{})
	require.NoError(t, err)
	assert.Empty(t, <-queries)
}

func TestPaymentLifecycle(t *testing.T) {
	t.Parallel()
	type call struct {
		method, path string
		body         map[string]any
	}
	calls := make(chan call, 3)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(b, &body)
		calls <- call{r.Method, r.URL.Path, body}
		switch r.URL.Path {
		case "/payments":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"payment_ticket_id":17}}`)
		case "/payments/complete/17":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"payment_ticket_id":"17","status":"completed"}}`)
		case "/payments/cancel/17":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"payment_ticket_id":"17","status":"cancelled"}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"success":false,"error":"no route"}`)
		}
	}))
	ctx := context.Background()

	created, err := c.CreatePaymentTicket(ctx, 3, 50)
	require.NoError(t, err)
	var ticket struct {
		ID int64 `json:"payment_ticket_id"`
	}
	require.NoError(t, created.DecodeData(&ticket))
	assert.Equal(t, int64(17), ticket.ID)
	first := <-calls
	assert.Equal(t, http.MethodPost, first.method)
	assert.Equal(t, float64(3), first.body["user_id"])
	assert.Equal(t, float64(50), first.body["amount"])

	_, err = c.CompletePayment(ctx, ticket.ID)
	require.NoError(t, err)
	second := <-calls
	assert.Equal(t, http.MethodPatch, second.method)
	assert.Equal(t, "/payments/complete/17", second.path)

	cancelled, err := c.CancelPayment(ctx, ticket.ID)
	require.NoError(t, err)
	third := <-calls
	assert.Equal(t, http.MethodPatch, third.method)
	var status struct {
		Status string `json:"status"`
	}
	require.NoError(t, cancelled.DecodeData(&status))
	assert.Equal(t, "cancelled", status.Status)
}

func TestGetPayments_AmountAsString(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success":true,"data":[{"id":1,"user_id":2,"amount":"50.00","status":"pending","datetime":"2024-01-01 15:00:00+03"}]}`)
	}))

	list, err := c.GetPayments(context.Background(), client.PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, list.Payments, 1)
	assert.Equal(t, 50.0, list.Payments[0].Amount)
	require.NotNil(t, list.Payments[0].Datetime)
	assert.True(t, list.Payments[0].Datetime.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
}
