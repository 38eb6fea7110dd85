package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_ReturnsLastError(t *testing.T) {
	calls := 0
	last := errors.New("still down")
	err := Retry(context.Background(), 2, time.Millisecond, func() error {
		calls++
		return last
	})

	assert.ErrorIs(t, err, last)
	assert.Equal(t, 2, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 5, time.Hour, func() error { return errors.New("down") })
	assert.ErrorIs(t, err, context.Canceled)
}
