package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "github.com/Smarandii/hvmnd-api-client/internal/errors"
	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

const (
	outcomeOK                = "ok"
	outcomeNotFound          = "not_found"
	outcomeAPIError          = "api_error"
	outcomeMalformedResponse = "malformed_response"
	outcomeTransport         = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hvmnd_client",
			Name:      "requests_total",
			Help:      "API requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hvmnd_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	timestampParseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hvmnd_client",
			Name:      "timestamp_parse_failures_total",
			Help:      "Timestamp fields that could not be parsed and were set to null.",
		},
		[]string{"field"},
	)

	fieldDecodeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hvmnd_client",
			Name:      "field_decode_failures_total",
			Help:      "Record fields whose value did not fit the modelled type and were left empty.",
		},
		[]string{"field"},
	)

	recordsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hvmnd_client",
			Name:      "records_skipped_total",
			Help:      "List elements that could not be decoded and were left out of the typed result.",
		},
		[]string{"operation"},
	)
)

func outcomeOf(resp *types.Response, err error) string {
	if err != nil {
		kind, _ := apierrors.KindOf(err)
		switch kind {
		case apierrors.MalformedResponse:
			return outcomeMalformedResponse
		case apierrors.Transport:
			return outcomeTransport
		default:
			return outcomeAPIError
		}
	}
	if resp != nil && resp.NotFound {
		return outcomeNotFound
	}
	return outcomeOK
}
