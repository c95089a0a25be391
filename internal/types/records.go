package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// TimestampParser converts the raw value of a timestamp field. It returns
// nil for absent, null, empty or unparseable values.
type TimestampParser func(field string, raw RawField) *time.Time

const (
	FieldRentStartTime              = "rent_start_time"
	FieldLastBalanceUpdateTimestamp = "last_balance_update_timestamp"
	FieldPaymentDatetime            = "datetime"
)

var nodeKnownFields = map[string]struct{}{
	"id":                            {},
	"renter":                        {},
	"status":                        {},
	"any_desk_address":              {},
	"any_desk_password":             {},
	FieldRentStartTime:              {},
	FieldLastBalanceUpdateTimestamp: {},
}

// SkipHandler is told about a field whose JSON type did not fit the
// modelled type and could not be converted. The field keeps its zero value.
type SkipHandler func(field string, raw RawField)

// decodeRecord splits a JSON object into its fields and decodes everything
// except the named timestamp fields into dst. Values of the wrong JSON type
// are converted where that is lossless ("50.00" into a float, 123 into a
// string); the names of fields that still do not fit are returned.
func decodeRecord(raw RawField, dst any, timestampFields ...string) (map[string]RawField, []string, error) {
	var rec map[string]RawField
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, nil, fmt.Errorf("decode record: %w", err)
	}
	if rec == nil {
		return nil, nil, fmt.Errorf("decode record: not an object")
	}
	plain := make(map[string]RawField, len(rec))
	for k, v := range rec {
		plain[k] = v
	}
	for _, f := range timestampFields {
		delete(plain, f)
	}

	target := reflect.ValueOf(dst).Elem()
	converted := make(map[string]bool)
	var skipped []string
	for attempt := 0; attempt <= 2*len(plain); attempt++ {
		b, err := json.Marshal(plain)
		if err != nil {
			return nil, nil, err
		}
		target.Set(reflect.Zero(target.Type()))
		err = json.Unmarshal(b, dst)
		if err == nil {
			return rec, skipped, nil
		}
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, nil, fmt.Errorf("decode record: %w", err)
		}
		key, ok := lookupKey(plain, typeErr.Field)
		if !ok {
			return nil, nil, fmt.Errorf("decode record: %w", err)
		}
		if fixed, ok := convertJSON(plain[key], typeErr.Type); ok && !converted[key] {
			plain[key] = fixed
			converted[key] = true
			continue
		}
		delete(plain, key)
		skipped = append(skipped, key)
	}
	return nil, nil, fmt.Errorf("decode record: too many mismatched fields")
}

// lookupKey finds the record key a decode error refers to. encoding/json
// matches keys case-insensitively, so the error may not use the record's
// spelling.
func lookupKey(rec map[string]RawField, field string) (string, bool) {
	if _, ok := rec[field]; ok {
		return field, true
	}
	for k := range rec {
		if strings.EqualFold(k, field) {
			return k, true
		}
	}
	return "", false
}

// convertJSON rewrites raw so it decodes into a value of type t.
func convertJSON(raw RawField, t reflect.Type) (RawField, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	switch t.Kind() {
	case reflect.String:
		switch v.(type) {
		case float64, bool:
			b, err := json.Marshal(string(raw))
			return b, err == nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		s = strings.TrimSpace(s)
		var f float64
		if json.Unmarshal([]byte(s), &f) != nil {
			return nil, false
		}
		return RawField(s), true
	case reflect.Bool:
		switch x := v.(type) {
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(x))
			if err != nil {
				return nil, false
			}
			return RawField(strconv.FormatBool(b)), true
		case float64:
			return RawField(strconv.FormatBool(x != 0)), true
		}
	}
	return nil, false
}

func reportSkipped(skip SkipHandler, rec map[string]RawField, fields []string) {
	if skip == nil {
		return
	}
	for _, f := range fields {
		skip(f, rec[f])
	}
}

// NodeFromRecord builds a Node from one element of the GET /nodes data
// array. Unknown fields land in Extra, and so do known fields whose value
// could not be decoded.
func NodeFromRecord(raw RawField, parse TimestampParser, skip SkipHandler) (Node, error) {
	var n Node
	rec, skipped, err := decodeRecord(raw, &n, FieldRentStartTime, FieldLastBalanceUpdateTimestamp)
	if err != nil {
		return Node{}, err
	}
	reportSkipped(skip, rec, skipped)
	n.RentStartTime = parse(FieldRentStartTime, rec[FieldRentStartTime])
	n.LastBalanceUpdateTimestamp = parse(FieldLastBalanceUpdateTimestamp, rec[FieldLastBalanceUpdateTimestamp])

	keep := make(map[string]bool, len(skipped))
	for _, f := range skipped {
		keep[f] = true
	}
	for k, v := range rec {
		if _, known := nodeKnownFields[k]; known && !keep[k] {
			continue
		}
		if n.Extra == nil {
			n.Extra = make(map[string]RawField)
		}
		n.Extra[k] = v
	}
	return n, nil
}

// PaymentFromRecord builds a Payment from one element of the GET /payments
// data array.
func PaymentFromRecord(raw RawField, parse TimestampParser, skip SkipHandler) (Payment, error) {
	var p Payment
	rec, skipped, err := decodeRecord(raw, &p, FieldPaymentDatetime)
	if err != nil {
		return Payment{}, err
	}
	reportSkipped(skip, rec, skipped)
	p.Datetime = parse(FieldPaymentDatetime, rec[FieldPaymentDatetime])
	return p, nil
}

// UserFromRecord builds a User from one element of the GET /users data
// array.
func UserFromRecord(raw RawField, skip SkipHandler) (User, error) {
	var u User
	rec, skipped, err := decodeRecord(raw, &u)
	if err != nil {
		return User{}, err
	}
	reportSkipped(skip, rec, skipped)
	return u, nil
}

// MarshalJSON writes the node with Extra merged in and timestamps rendered
// as UTC text ending in "Z". Nil timestamps are written as null. A modelled
// field that is zero and also present in Extra (a server value the struct
// could not hold) is written from Extra.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(n.Extra)+len(nodeKnownFields))
	for k, v := range n.Extra {
		out[k] = v
	}
	set := func(k string, v any, zero bool) {
		if _, kept := n.Extra[k]; kept && zero {
			return
		}
		out[k] = v
	}
	set("id", n.ID, n.ID == 0)
	set("renter", n.Renter, n.Renter == nil)
	set("status", n.Status, n.Status == "")
	set("any_desk_address", n.AnyDeskAddress, n.AnyDeskAddress == "")
	if n.AnyDeskPassword != "" {
		out["any_desk_password"] = n.AnyDeskPassword
	}
	out[FieldRentStartTime] = FormatTimestampPtr(n.RentStartTime)
	out[FieldLastBalanceUpdateTimestamp] = FormatTimestampPtr(n.LastBalanceUpdateTimestamp)
	return json.Marshal(out)
}

// MarshalJSON renders Datetime as UTC text ending in "Z".
func (p Payment) MarshalJSON() ([]byte, error) {
	type plain Payment
	return json.Marshal(struct {
		plain
		Datetime *string `json:"datetime"`
	}{plain: plain(p), Datetime: FormatTimestampPtr(p.Datetime)})
}
