package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "redditpersona/pkg/errors"
	"redditpersona/pkg/logger"
)

func testConfig(maxAttempts int) *Config {
	return &Config{
		MaxAttempts: maxAttempts,
		Backoff:     &ConstantBackoff{Delay: time.Millisecond},
		RetryIf:     DefaultRetryIf,
		Context:     context.Background(),
		Logger:      logger.NewTestLogger(),
	}
}

func TestDo(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		calls := 0
		err := Do(func() error {
			calls++
			return nil
		}, testConfig(3))

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := Do(func() error {
			calls++
			if calls < 3 {
				return &errs.Error{Type: errs.ErrorTypeNetwork, Message: "connection reset"}
			}
			return nil
		}, testConfig(5))

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		calls := 0
		parseErr := &errs.Error{Type: errs.ErrorTypeParsing, Message: "bad json", Code: 200}
		err := Do(func() error {
			calls++
			return parseErr
		}, testConfig(5))

		assert.Equal(t, parseErr, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := Do(func() error {
			calls++
			return &errs.Error{Type: errs.ErrorTypeServerError, Message: "boom", Code: 502}
		}, testConfig(3))

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "max retry attempts")
	})

	t.Run("cancelled context aborts waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := testConfig(3)
		cfg.Context = ctx
		cfg.Backoff = &ConstantBackoff{Delay: time.Minute}

		err := Do(func() error {
			return &errs.Error{Type: errs.ErrorTypeNetwork, Message: "down"}
		}, cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "retry cancelled")
	})
}

func TestDefaultRetryIf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"network error", &errs.Error{Type: errs.ErrorTypeNetwork}, true},
		{"rate limit error", &errs.Error{Type: errs.ErrorTypeRateLimit}, true},
		{"server error", &errs.Error{Type: errs.ErrorTypeServerError}, true},
		{"parsing error", &errs.Error{Type: errs.ErrorTypeParsing}, false},
		{"not found", &errs.Error{Type: errs.ErrorTypeNotFound}, false},
		{"context canceled", context.Canceled, false},
		{"plain error", fmt.Errorf("something"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRetryIf(tt.err))
		})
	}
}

func TestExponentialBackoff(t *testing.T) {
	eb := &ExponentialBackoff{
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
	}

	assert.Equal(t, time.Duration(0), eb.NextDelay(0))
	assert.Equal(t, 100*time.Millisecond, eb.NextDelay(1))
	assert.Equal(t, 200*time.Millisecond, eb.NextDelay(2))
	assert.Equal(t, 400*time.Millisecond, eb.NextDelay(3))
	// capped at MaxDelay
	assert.Equal(t, time.Second, eb.NextDelay(10))
}
