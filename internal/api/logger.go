package api

import (
	"errors"

	"github.com/rs/zerolog"
)

var errNotObject = errors.New("body is not a JSON object")

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
