// Package telegram is a typed client for the Telegram Bot HTTP API.
package telegram

import (
	"context"
	"net/http"
	"strings"
	"time"

	"telegramapis/internal/adapters/file"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL = "https://api.telegram.org"

	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"

	tracerName = "telegramapis/telegram"
)

// FileReader reads a local media file into memory.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// MimeDetector derives a MIME type from a file name.
type MimeDetector interface {
	TypeByFilename(name string) string
}

// Validator checks caller supplied parameters before a request is built. Errors are returned to the
// caller unchanged.
type Validator interface {
	Validate(v any) error
}

type noopValidator struct{}

func (noopValidator) Validate(any) error { return nil }

// Client talks to the Bot API on behalf of a single bot token. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	token     string
	baseURL   string
	http      *http.Client
	files     FileReader
	mime      MimeDetector
	validator Validator
	logger    zerolog.Logger
	metrics   *metrics
	tracer    trace.Tracer
}

type Option func(*Client)

// WithBaseURL points the client at a different Bot API server, e.g. a local bot API or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

func WithFileReader(r FileReader) Option {
	return func(c *Client) {
		c.files = r
	}
}

func WithMimeDetector(d MimeDetector) Option {
	return func(c *Client) {
		c.mime = d
	}
}

func WithValidator(v Validator) Option {
	return func(c *Client) {
		c.validator = v
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics registers request counters and latency histograms on reg. Clients sharing a registerer
// share the collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = newMetrics(reg)
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a client bound to token. The token is required.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}

	c := &Client{
		token:     token,
		baseURL:   DefaultBaseURL,
		http:      &http.Client{Timeout: 60 * time.Second},
		files:     file.Reader{},
		mime:      file.Detector{},
		validator: noopValidator{},
		logger:    log.Logger,
		tracer:    otel.GetTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) endpoint(method string) string {
	return c.baseURL + "/bot" + c.token + "/" + method
}

// FileURL returns the download URL for a file path returned by GetFile.
func (c *Client) FileURL(filePath string) string {
	return c.baseURL + "/file/bot" + c.token + "/" + strings.TrimLeft(filePath, "/")
}
