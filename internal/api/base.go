package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apierrors "github.com/Smarandii/hvmnd-api-client/internal/errors"
	"github.com/Smarandii/hvmnd-api-client/internal/types"
)

// HeaderRequestID carries a per-request UUID so client and server logs can
// be correlated.
const HeaderRequestID = "X-Request-Id"

// NewRestClient builds the resty client every operation goes through. hc is
// used as-is, so transports installed on it (debug dumping, test stubs) stay
// in effect.
func NewRestClient(hc *http.Client, baseURL string, logger zerolog.Logger, userAgent string) *resty.Client {
	rc := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: logger})
	if userAgent != "" {
		rc.SetHeader("User-Agent", userAgent)
	}
	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(HeaderRequestID) == "" {
			r.SetHeader(HeaderRequestID, uuid.NewString())
		}
		return nil
	})
	return rc
}

// do sends one request and applies the response policy to the answer.
func do(ctx context.Context, rc *resty.Client, logger zerolog.Logger, op, method, path string, query url.Values, body any) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		requestsTotal.WithLabelValues(op, outcomeTransport).Inc()
		return nil, apierrors.NewTransportError(op, err)
	}

	req := rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(op, outcomeTransport).Inc()
		logger.Debug().Err(err).Str("op", op).Str("method", method).Str("path", path).Msg("request failed")
		return nil, apierrors.NewTransportError(op, err)
	}

	out, err := handleResponse(logger, op, resp.StatusCode(), reasonPhrase(resp.RawResponse), requestURL(resp), resp.Body())
	requestsTotal.WithLabelValues(op, outcomeOf(out, err)).Inc()
	return out, err
}

// handleResponse turns a raw HTTP answer into a Response or an error:
//
//  1. a body that is not a JSON object is an HTTP error for status >= 400
//     and an invalid-response error otherwise;
//  2. 2xx returns the body unless its success flag is not true;
//  3. 404 returns an empty, unsuccessful Response marked NotFound;
//  4. anything else is an API error.
func handleResponse(logger zerolog.Logger, op string, status int, reason, rawURL string, raw []byte) (*types.Response, error) {
	var body map[string]types.RawField
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		if err == nil {
			err = errNotObject
		}
		if status >= http.StatusBadRequest {
			return nil, apierrors.NewHTTPStatusError(op, status, reason, rawURL, err)
		}
		return nil, apierrors.NewInvalidResponseError(op, status, string(raw), err)
	}

	switch {
	case status >= 200 && status < 300:
		if !successFlag(body) {
			msg := errorField(body, "Unknown error")
			logger.Debug().Str("op", op).Int("status", status).Str("error", msg).Msg("api reported failure")
			return nil, apierrors.NewAPIError(op, status, msg)
		}
		out := &types.Response{
			Success:    true,
			Data:       body["data"],
			Body:       body,
			StatusCode: status,
		}
		_ = json.Unmarshal(body["error"], &out.Error)
		return out, nil

	case status == http.StatusNotFound:
		msg := errorField(body, reason)
		logger.Debug().Str("op", op).Str("error", msg).Msg("not found")
		return notFoundResponse(msg), nil

	default:
		msg := errorField(body, reason)
		logger.Debug().Str("op", op).Int("status", status).Str("error", msg).Msg("api error")
		return nil, apierrors.NewAPIError(op, status, msg)
	}
}

func notFoundResponse(msg string) *types.Response {
	errJSON, _ := json.Marshal(msg)
	empty := types.RawField("[]")
	return &types.Response{
		Success: false,
		Error:   msg,
		Data:    empty,
		Body: map[string]types.RawField{
			"success": types.RawField("false"),
			"error":   errJSON,
			"data":    empty,
		},
		NotFound:   true,
		StatusCode: http.StatusNotFound,
	}
}

// successFlag reports whether the body's success field is truthy: false,
// null, 0, "", [] and {} count as false, as does a missing field.
func successFlag(body map[string]types.RawField) bool {
	raw, present := body["success"]
	if !present {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return false
	}
}

// errorField returns the body's error value, or fallback when the field is
// absent or null. An empty string is returned as is.
func errorField(body map[string]types.RawField, fallback string) string {
	raw, ok := body["error"]
	if !ok || string(raw) == "null" {
		return fallback
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

// reasonPhrase extracts "Not Found" from a "404 Not Found" status line.
func reasonPhrase(resp *http.Response) string {
	if resp == nil {
		return ""
	}
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func requestURL(resp *resty.Response) string {
	if resp.RawResponse != nil && resp.RawResponse.Request != nil {
		return resp.RawResponse.Request.URL.String()
	}
	if resp.Request != nil {
		return resp.Request.URL
	}
	return ""
}

// decodeRecords splits the data array of a list response into raw records.
// A soft-not-found response yields no records.
func decodeRecords(op string, resp *types.Response) ([]types.RawField, error) {
	var recs []types.RawField
	if err := resp.DecodeData(&recs); err != nil {
		return nil, apierrors.NewInvalidResponseError(op, resp.StatusCode, string(resp.Data), err)
	}
	return recs, nil
}

// ------------------------------
// Query helpers
// ------------------------------

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setInt64(q url.Values, key string, v int64) {
	if v != 0 {
		q.Set(key, strconv.FormatInt(v, 10))
	}
}

func setInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}
