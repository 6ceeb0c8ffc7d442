package telegram

import (
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIError(t *testing.T) {
	env := &envelope{
		ErrorCode:   429,
		Description: "Too Many Requests: retry after 30",
		Parameters:  &ResponseParameters{RetryAfter: 30},
	}

	err := newAPIError("sendPhoto", env)
	assert.Equal(t, "telegram: sendPhoto: 429 Too Many Requests: retry after 30", err.Error())

	wait, ok := err.RetryAfter()
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, wait)
}

func TestAPIError_Discrimination(t *testing.T) {
	apiErr := &APIError{Code: 403, Description: "Forbidden: bot was blocked by the user"}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "api error", err: apiErr, want: true},
		{name: "wrapped", err: fmt.Errorf("notifying: %w", apiErr), want: true},
		{name: "http error", err: &HTTPError{StatusCode: 502, Status: "502 Bad Gateway"}, want: false},
		{name: "plain", err: errors.New("dial tcp: connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAPIError(tc.err))
		})
	}

	_, ok := (&APIError{Code: 400}).RetryAfter()
	assert.False(t, ok)
}

func TestRedactToken(t *testing.T) {
	cause := errors.New("connection refused")
	err := &url.Error{Op: "Post", URL: "https://api.telegram.org/bot" + testToken + "/sendMessage", Err: cause}

	got := redactToken(fmt.Errorf("sending: %w", err), testToken)
	assert.NotContains(t, got.Error(), testToken)
	assert.Contains(t, got.Error(), "/bot<redacted>/sendMessage")
	assert.ErrorIs(t, got, cause)

	plain := errors.New("no url here")
	assert.Same(t, plain, redactToken(plain, testToken))
}
