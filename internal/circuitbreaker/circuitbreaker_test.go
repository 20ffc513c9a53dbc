//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBackend = errors.New("backend unavailable")

func testConfig(failures, successes int, timeout time.Duration) Config {
	return Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
		Name:             "test",
	}
}

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), func() error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(testConfig(2, 1, time.Minute))

	err := cb.Execute(context.Background(), func() error { return errBackend })
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, StateClosed, cb.State())

	err = cb.Execute(context.Background(), func() error { return errBackend })
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err = cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig(2, 1, time.Minute))

	_ = cb.Execute(context.Background(), func() error { return errBackend })
	_ = cb.Execute(context.Background(), func() error { return nil })
	_ = cb.Execute(context.Background(), func() error { return errBackend })

	// One success between failures keeps the streak below the threshold.
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_ClosesAfterRecovery(t *testing.T) {
	cb := New(testConfig(1, 2, 30*time.Millisecond))

	_ = cb.Execute(context.Background(), func() error { return errBackend })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_ReopensOnHalfOpenFailure(t *testing.T) {
	cb := New(testConfig(1, 1, 30*time.Millisecond))

	_ = cb.Execute(context.Background(), func() error { return errBackend })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error { return errBackend })
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, StateOpen, cb.State())

	// Next call is rejected again until the timeout elapses.
	err = cb.Execute(context.Background(), func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Zero(t, stats.FailureCount)

	_ = cb.Execute(context.Background(), func() error { return errBackend })

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
}
