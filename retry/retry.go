// Package retry re-runs Bot API calls that failed for a transient reason. The telegram client itself never
// retries; wrap calls with Do where retrying is wanted.
package retry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"telegramapis/telegram"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

// Policy bounds the retries: at most Attempts calls in total, Interval apart unless the API asks for a
// longer pause with retry_after.
type Policy struct {
	Attempts uint
	Interval time.Duration
}

func DefaultPolicy() Policy {
	return Policy{Attempts: 3, Interval: 2 * time.Second}
}

// Do calls op until it succeeds, fails permanently, the attempts run out or ctx is done. The error of the
// last attempt is returned.
func Do[T any](ctx context.Context, p Policy, op func(context.Context) (T, error)) (T, error) {
	if p.Attempts == 0 {
		p.Attempts = 1
	}

	res, err := backoff.Retry(ctx, func() (T, error) {
		res, err := op(ctx)
		if err == nil {
			return res, nil
		}
		if !Retryable(err) {
			return res, backoff.Permanent(err)
		}
		if apiErr, ok := telegram.AsAPIError(err); ok {
			if wait, ok := apiErr.RetryAfter(); ok {
				return res, &waitError{err: err, wait: backoff.RetryAfter(int(wait / time.Second))}
			}
		}
		return res, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Interval)),
		backoff.WithMaxTries(p.Attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("retrying bot api call")
		}),
	)

	var we *waitError
	if errors.As(err, &we) {
		err = we.err
	}
	return res, err
}

// waitError carries the server requested pause next to the original error.
type waitError struct {
	err  error
	wait error
}

func (e *waitError) Error() string {
	return e.err.Error()
}

func (e *waitError) Unwrap() []error {
	return []error{e.err, e.wait}
}

// Retryable reports whether err is worth another attempt: rate limits, server errors and network failures.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if apiErr, ok := telegram.AsAPIError(err); ok {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	var httpErr *telegram.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
