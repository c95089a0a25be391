package api

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// timestampParser returns the normalizer used when decoding list records.
// Values that fail to parse are logged and become nil; the record itself is
// still returned.
func timestampParser(logger zerolog.Logger, op string) types.TimestampParser {
	return func(field string, raw types.RawField) *time.Time {
		if len(raw) == 0 || string(raw) == "null" {
			return nil
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			timestampParseFailuresTotal.WithLabelValues(field).Inc()
			logger.Debug().Err(err).Str("op", op).Str("field", field).RawJSON("value", raw).Msg("timestamp field is not a string")
			return nil
		}
		if s == "" {
			return nil
		}
		ts, err := types.ParseTimestamp(s)
		if err != nil {
			timestampParseFailuresTotal.WithLabelValues(field).Inc()
			logger.Debug().Err(err).Str("op", op).Str("field", field).Str("value", s).Msg("failed to parse timestamp field")
			return nil
		}
		return &ts
	}
}
