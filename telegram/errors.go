package telegram

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	ErrEmptyToken       = errors.New("telegram: bot token is required")
	ErrEmptyMediaGroup  = errors.New("telegram: media group needs at least one item")
	ErrInvalidMediaKind = errors.New("telegram: media group items must be photos or videos")
	ErrEmptyInput       = errors.New("telegram: input file is empty")
	ErrMissingExtension = errors.New("telegram: file path has no extension")
)

// ResponseParameters carries the optional hints of a failed call.
type ResponseParameters struct {
	RetryAfter      int   `json:"retry_after,omitempty"`
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
}

// APIError is returned when the Bot API answers with ok=false, whatever the HTTP status.
type APIError struct {
	Method      string
	Code        int
	Description string
	Parameters  *ResponseParameters
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s: %d %s", e.Method, e.Code, e.Description)
}

// RetryAfter reports how long the caller should wait before trying again, when the API said so.
func (e *APIError) RetryAfter() (time.Duration, bool) {
	if e.Parameters == nil || e.Parameters.RetryAfter <= 0 {
		return 0, false
	}
	return time.Duration(e.Parameters.RetryAfter) * time.Second, true
}

func IsAPIError(err error) bool {
	_, ok := AsAPIError(err)
	return ok
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newAPIError(method string, env *envelope) *APIError {
	return &APIError{
		Method:      method,
		Code:        env.ErrorCode,
		Description: env.Description,
		Parameters:  env.Parameters,
	}
}

// HTTPError is a transport level failure: the server answered without the Bot API error envelope,
// either with a failing status or with a body that is not JSON.
type HTTPError struct {
	Method     string
	StatusCode int
	Status     string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("telegram: %s: http %s: %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("telegram: %s: http %s", e.Method, e.Status)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// redactToken strips the bot token from URLs embedded in net/http errors.
func redactToken(err error, token string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, token, "<redacted>"),
		Err: urlErr.Err,
	}
}
