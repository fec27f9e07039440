package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_SucceedsAfterTransientFailures(t *testing.T) {
	r := New(fastConfig(2), nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_ReturnsLastErrorWhenExhausted(t *testing.T) {
	r := New(fastConfig(1), nil)
	sentinel := errors.New("still down")
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, calls)
}

func TestRetrier_StopsOnNonRetryableError(t *testing.T) {
	cfg := fastConfig(3)
	permanent := errors.New("bad request")
	cfg.IsRetryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg, nil)
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ZeroRetriesCallsOnce(t *testing.T) {
	r := New(fastConfig(0), nil)
	calls := 0

	_ = r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("fail")
	})

	assert.Equal(t, 1, calls)
}

func TestRetrier_HonorsCancellation(t *testing.T) {
	cfg := fastConfig(5)
	cfg.BaseDelay = time.Second
	cfg.MaxDelay = time.Second
	r := New(cfg, nil)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := r.Execute(ctx, func(ctx context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
