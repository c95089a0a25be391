package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// extraTimestampLayouts covers ISO-8601 renderings strfmt does not accept:
// a space separator, hour-only offsets ("+03", PostgreSQL timestamptz text)
// and basic-format offsets ("+0300").
var extraTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses ISO-8601 text into a UTC time. Text without an
// offset is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if dt, err := strfmt.ParseDateTime(s); err == nil {
		return time.Time(dt).UTC(), nil
	}
	for _, layout := range extraTimestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// FormatTimestamp renders t as RFC 3339 in UTC, always ending in "Z".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimestampPtr is FormatTimestamp for nullable fields; nil stays nil.
func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}
