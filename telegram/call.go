package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 10 << 20

// envelope is the raw Bot API answer. result is decoded in a second step so a result of an unexpected
// shape never hides ok=false.
type envelope struct {
	OK          *bool               `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// Response is a successful Bot API answer.
type Response[T any] struct {
	OK          bool
	Result      T
	Description string
}

// call sends one request and decodes its answer. It never retries.
func call[T any](ctx context.Context, c *Client, method string, r *request) (*Response[T], error) {
	reqID := ""
	if id, err := uuid.NewV4(); err == nil {
		reqID = id.String()
	}
	logger := c.logger.With().Str("method", method).Str("request_id", reqID).Logger()

	ctx, span := c.tracer.Start(ctx, "telegram."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("telegram.method", method),
			attribute.String("telegram.encoding", r.encoding.String()),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := c.dispatch(ctx, method, r, logger)
	c.metrics.observe(method, outcomeOf(err), time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var out Response[T]
	out.OK = true
	out.Description = res.Description
	if len(res.Result) > 0 {
		if err := json.Unmarshal(res.Result, &out.Result); err != nil {
			err = fmt.Errorf("error decoding %s result: %w", method, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	span.SetStatus(codes.Ok, "")
	return &out, nil
}

func (c *Client) dispatch(ctx context.Context, method string, r *request, logger zerolog.Logger) (*envelope, error) {
	var body io.Reader = http.NoBody
	if r.encoding != encodingNone {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(method), body)
	if err != nil {
		return nil, redactToken(fmt.Errorf("error creating request: %w", err), c.token)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.encoding != encodingNone {
		req.ContentLength = int64(len(r.body))
	}

	logger.Debug().Str("encoding", r.encoding.String()).Int("bytes", len(r.body)).Msg("calling bot api")

	res, err := c.http.Do(req)
	if err != nil {
		err = redactToken(err, c.token)
		logger.Error().Err(err).Msg("bot api request failed")
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		err = fmt.Errorf("error reading %s response: %w", method, redactToken(err, c.token))
		logger.Error().Err(err).Send()
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		httpErr := &HTTPError{Method: method, StatusCode: res.StatusCode, Status: res.Status, Err: err}
		logger.Error().Err(httpErr).Int("status", res.StatusCode).Msg("bot api answered without json")
		return nil, httpErr
	}

	if env.OK != nil && !*env.OK {
		apiErr := newAPIError(method, &env)
		logger.Warn().Int("error_code", apiErr.Code).Str("description", apiErr.Description).
			Msg("bot api rejected request")
		return nil, apiErr
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		httpErr := &HTTPError{Method: method, StatusCode: res.StatusCode, Status: res.Status}
		logger.Error().Err(httpErr).Int("status", res.StatusCode).Send()
		return nil, httpErr
	}

	logger.Debug().Int("status", res.StatusCode).Msg("bot api call succeeded")
	return &env, nil
}
