package shell_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/circulation/shell"
	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_RetryWithExponentialBackoff_Success_NoRetries(t *testing.T) {
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		return nil
	}

	err := shell.RetryWithExponentialBackoff(context.Background(), fn)

	assert.NoError(t, err)
	assert.Equal(t, 1, callCount)
}

func Test_RetryWithExponentialBackoff_RetryOnConcurrencyConflict(t *testing.T) {
	// arrange
	metricsSpy := helper.NewMetricsCollectorSpy()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		if callCount < 3 {
			return eventstore.ErrConcurrencyConflict
		}
		return nil
	}

	// act
	err := shell.RetryWithExponentialBackoff(
		context.Background(),
		fn,
		shell.WithBaseDelay(time.Millisecond),
		shell.WithRetryMetrics(metricsSpy, "test"),
	)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 2, metricsSpy.CountCounterRecords("circulation_journal_retries_total", map[string]string{
		"operation":  "test",
		"error_type": "concurrency_conflict",
	}))
	assert.True(t, metricsSpy.HasDurationRecord("circulation_journal_retry_delay_seconds"))
	assert.False(t, metricsSpy.HasCounterRecord("circulation_journal_max_retries_reached_total", nil))
}

func Test_RetryWithExponentialBackoff_OtherErrorsFailFast(t *testing.T) {
	callCount := 0
	permanent := errors.New("broken")

	fn := func(_ context.Context) error {
		callCount++
		return permanent
	}

	err := shell.RetryWithExponentialBackoff(context.Background(), fn)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, callCount)
}

func Test_RetryWithExponentialBackoff_GivesUpAfterMaxAttempts(t *testing.T) {
	// arrange
	metricsSpy := helper.NewMetricsCollectorSpy()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		return eventstore.ErrConcurrencyConflict
	}

	// act
	err := shell.RetryWithExponentialBackoff(
		context.Background(),
		fn,
		shell.WithMaxAttempts(3),
		shell.WithBaseDelay(time.Millisecond),
		shell.WithJitterFactor(0),
		shell.WithRetryMetrics(metricsSpy, "test"),
	)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 3, callCount)
	assert.True(t, metricsSpy.HasCounterRecord("circulation_journal_max_retries_reached_total", map[string]string{
		"operation":        "test",
		"final_error_type": "concurrency_conflict",
	}))
}

func Test_RetryWithExponentialBackoff_StopsWaitingWhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		cancel()
		return eventstore.ErrConcurrencyConflict
	}

	err := shell.RetryWithExponentialBackoff(ctx, fn, shell.WithBaseDelay(time.Second))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount)
}

func Test_RetryWithExponentialBackoff_InvalidOptions(t *testing.T) {
	ctx := context.Background()
	fn := func(_ context.Context) error { return nil }

	err := shell.RetryWithExponentialBackoff(ctx, fn, shell.WithMaxAttempts(0))
	assert.ErrorIs(t, err, shell.ErrInvalidMaxAttempts)

	err = shell.RetryWithExponentialBackoff(ctx, fn, shell.WithBaseDelay(-1*time.Second))
	assert.ErrorIs(t, err, shell.ErrNegativeBaseDelay)

	err = shell.RetryWithExponentialBackoff(ctx, fn, shell.WithJitterFactor(1.5))
	assert.ErrorIs(t, err, shell.ErrInvalidJitterFactor)

	err = shell.RetryWithExponentialBackoff(ctx, fn, shell.WithRetryMetrics(nil, "test"))
	assert.ErrorIs(t, err, shell.ErrNilMetricsCollector)

	err = shell.RetryWithExponentialBackoff(ctx, fn, shell.WithRetryMetrics(helper.NewMetricsCollectorSpy(), ""))
	assert.ErrorIs(t, err, shell.ErrEmptyOperation)
}
