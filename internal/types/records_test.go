package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strictParser parses with ParseTimestamp and records the fields it saw.
func strictParser(seen map[string]string) TimestampParser {
	return func(field string, raw RawField) *time.Time {
		var s string
		if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
			return nil
		}
		if seen != nil {
			seen[field] = s
		}
		ts, err := ParseTimestamp(s)
		if err != nil {
			return nil
		}
		return &ts
	}
}

func TestNodeFromRecord(t *testing.T) {
	t.Parallel()
	raw := RawField(`{
		"id": 7,
		"renter": 231584958,
		"status": "rented",
		"any_desk_address": "123 456 789",
		"software": [{"name": "blender"}],
		"machine_id": "m-1",
		"rent_start_time": "2024-01-01T12:00:00Z",
		"last_balance_update_timestamp": "not a time"
	}`)
	seen := map[string]string{}
	n, err := NodeFromRecord(raw, strictParser(seen), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(7), n.ID)
	require.NotNil(t, n.Renter)
	assert.Equal(t, int64(231584958), *n.Renter)
	assert.Equal(t, "rented", n.Status)
	require.NotNil(t, n.RentStartTime)
	assert.True(t, n.RentStartTime.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Nil(t, n.LastBalanceUpdateTimestamp)
	assert.Equal(t, "not a time", seen[FieldLastBalanceUpdateTimestamp])

	assert.JSONEq(t, `[{"name": "blender"}]`, string(n.Extra["software"]))
	assert.JSONEq(t, `"m-1"`, string(n.Extra["machine_id"]))
	_, leaked := n.Extra["status"]
	assert.False(t, leaked, "known fields must not be copied into Extra")
}

func TestNodeFromRecord_NullTimestamps(t *testing.T) {
	t.Parallel()
	n, err := NodeFromRecord(RawField(`{"id":1,"renter":null,"rent_start_time":null}`), strictParser(nil), nil)
	require.NoError(t, err)
	assert.Nil(t, n.Renter)
	assert.Nil(t, n.RentStartTime)
	assert.Nil(t, n.LastBalanceUpdateTimestamp)
	assert.Nil(t, n.Extra)
}

func TestNodeFromRecord_NotAnObject(t *testing.T) {
	t.Parallel()
	_, err := NodeFromRecord(RawField(`[1,2]`), strictParser(nil), nil)
	assert.Error(t, err)
	_, err = NodeFromRecord(RawField(`null`), strictParser(nil), nil)
	assert.Error(t, err)
}

func TestNodeMarshalJSON(t *testing.T) {
	t.Parallel()
	msk := time.FixedZone("MSK", 3*60*60)
	start := time.Date(2024, 1, 1, 15, 0, 0, 0, msk)
	renter := int64(42)
	n := Node{
		ID:             7,
		Renter:         &renter,
		Status:         "rented",
		AnyDeskAddress: "123",
		RentStartTime:  &start,
		Extra:          map[string]RawField{"software": RawField(`["blender"]`), "status": RawField(`"stale"`)},
	}
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"renter": 42,
		"status": "rented",
		"any_desk_address": "123",
		"rent_start_time": "2024-01-01T12:00:00Z",
		"last_balance_update_timestamp": null,
		"software": ["blender"]
	}`, string(b))
}

func TestPaymentFromRecord(t *testing.T) {
	t.Parallel()
	p, err := PaymentFromRecord(RawField(`{"id":3,"user_id":9,"amount":50.5,"status":"pending","datetime":"2024-06-01T08:30:00+00:00"}`), strictParser(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, 50.5, p.Amount)
	require.NotNil(t, p.Datetime)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"user_id":9,"amount":50.5,"status":"pending","datetime":"2024-06-01T08:30:00Z"}`, string(b))
}

func TestNodeFromRecord_MismatchedFieldTypes(t *testing.T) {
	t.Parallel()
	skipped := map[string]string{}
	skip := func(field string, raw RawField) { skipped[field] = string(raw) }

	n, err := NodeFromRecord(RawField(`{
		"id": "12",
		"renter": "non_null",
		"status": {"state": "rented"},
		"any_desk_address": 123456789,
		"rent_start_time": null
	}`), strictParser(nil), skip)
	require.NoError(t, err)

	assert.Equal(t, int64(12), n.ID)
	assert.Equal(t, "123456789", n.AnyDeskAddress)
	assert.Nil(t, n.Renter)
	assert.Equal(t, "", n.Status)
	assert.Equal(t, map[string]string{"renter": `"non_null"`, "status": `{"state": "rented"}`}, skipped)
	assert.JSONEq(t, `"non_null"`, string(n.Extra["renter"]))
	assert.JSONEq(t, `{"state": "rented"}`, string(n.Extra["status"]))
	_, leaked := n.Extra["any_desk_address"]
	assert.False(t, leaked, "converted fields stay out of Extra")

	// Values the struct could not hold are written back unchanged.
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 12,
		"renter": "non_null",
		"status": {"state": "rented"},
		"any_desk_address": "123456789",
		"rent_start_time": null,
		"last_balance_update_timestamp": null
	}`, string(b))
}

func TestPaymentFromRecord_NumericStrings(t *testing.T) {
	t.Parallel()
	var skipped []string
	p, err := PaymentFromRecord(RawField(`{"id":1,"user_id":"2","amount":"50.00","status":"pending","datetime":null}`),
		strictParser(nil), func(field string, _ RawField) { skipped = append(skipped, field) })
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(2), p.UserID)
	assert.Equal(t, 50.0, p.Amount)
	assert.Empty(t, skipped)

	p, err = PaymentFromRecord(RawField(`{"id":1.5,"amount":"lots","status":"pending"}`),
		strictParser(nil), func(field string, _ RawField) { skipped = append(skipped, field) })
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, 0.0, p.Amount)
	assert.Equal(t, "pending", p.Status)
	assert.ElementsMatch(t, []string{"id", "amount"}, skipped)
}

func TestUserFromRecord(t *testing.T) {
	t.Parallel()
	u, err := UserFromRecord(RawField(`{"id":1,"telegram_id":"231584958","balance":"99999.50","total_spent":0,"banned":"false","username":"neo"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(231584958), u.TelegramID)
	assert.Equal(t, 99999.5, u.Balance)
	assert.False(t, u.Banned)
	assert.Equal(t, "neo", u.Username)

	u, err = UserFromRecord(RawField(`{"id":1,"banned":1,"first_name":42}`), nil)
	require.NoError(t, err)
	assert.True(t, u.Banned)
	assert.Equal(t, "42", u.FirstName)

	_, err = UserFromRecord(RawField(`"not an object"`), nil)
	assert.Error(t, err)
}
