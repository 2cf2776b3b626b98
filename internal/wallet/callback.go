package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gabapcia/solsend/internal/pkg/logger"
	"github.com/gabapcia/solsend/internal/pkg/x/chflow"
)

// failureReasonKeys are the payload fields searched, in order, for a human-readable failure reason.
var failureReasonKeys = []string{"reason", "message", "error", "status"}

// callbackFailure carries the payload of a failure callback.
type callbackFailure struct {
	payload json.RawMessage
}

func (f *callbackFailure) Error() string {
	return "wallet request failed: " + f.reason()
}

// reason extracts the provider-supplied text from the failure payload. The raw
// payload is used when none of the known fields holds a string.
func (f *callbackFailure) reason() string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(f.payload, &fields); err == nil {
		for _, key := range failureReasonKeys {
			var text string
			if err := json.Unmarshal(fields[key], &text); err == nil && text != "" {
				return text
			}
		}
	}

	raw := strings.TrimSpace(string(f.payload))
	if raw == "" {
		return "unknown failure"
	}
	return raw
}

// await issues a request through invoke and blocks until its callback fires.
//
// When timeout is positive and elapses first, timeoutErr is returned. A failure
// callback is returned as *callbackFailure. Callbacks fired after the first one,
// or after await gave up waiting, are logged and dropped.
func await(ctx context.Context, timeout time.Duration, timeoutErr error, invoke func(ctx context.Context, cb Callback)) (json.RawMessage, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, timeout, timeoutErr)
		defer cancel()
	}

	promise := chflow.NewPromise[json.RawMessage]()
	invoke(ctx, Callback{
		OnSuccess: func(payload json.RawMessage) {
			if !promise.Resolve(payload) {
				logger.Warn(ctx, "ignored late or duplicate wallet callback", "callback", "success")
			}
		},
		OnFailure: func(payload json.RawMessage) {
			if !promise.Reject(&callbackFailure{payload: payload}) {
				logger.Warn(ctx, "ignored late or duplicate wallet callback", "callback", "failure")
			}
		},
	})

	payload, err := promise.Await(ctx)
	if err != nil {
		// Settle the promise so every later callback is reported as late. If a
		// callback won the race it was never consumed, so log it here.
		if !promise.Reject(err) {
			logger.Warn(ctx, "ignored late or duplicate wallet callback", "callback", "unconsumed")
		}

		if errors.Is(err, context.DeadlineExceeded) && errors.Is(context.Cause(ctx), timeoutErr) {
			return nil, timeoutErr
		}
		return nil, err
	}

	return payload, nil
}

type config struct {
	timeout time.Duration
}

type Option func(*config)

// WithTimeout bounds how long a request waits for its callback. Zero waits until ctx is done.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func newConfig(opts []Option) config {
	cfg := config{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultTimeout is the callback wait used when no WithTimeout option is given.
const DefaultTimeout = 5 * time.Minute
