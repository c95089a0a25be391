package api

import (
	"github.com/rs/zerolog"

	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// skipHandler logs and counts fields left at their zero value because the
// server sent a value of another JSON type.
func skipHandler(logger zerolog.Logger, op string) types.SkipHandler {
	return func(field string, raw types.RawField) {
		fieldDecodeFailuresTotal.WithLabelValues(field).Inc()
		logger.Debug().Str("op", op).Str("field", field).RawJSON("value", raw).Msg("field value does not fit its type")
	}
}

// skipRecord logs a data element that could not be decoded at all. The rest
// of the list is still returned; the element stays visible in Response.Data.
func skipRecord(logger zerolog.Logger, op string, raw types.RawField, err error) {
	recordsSkippedTotal.WithLabelValues(op).Inc()
	logger.Debug().Err(err).Str("op", op).RawJSON("record", raw).Msg("skipping undecodable record")
}
