// Package circuitbreaker implements the circuit breaker pattern used to
// shield the service from a failing MongoDB backend.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the circuit is open and calls are
// rejected without reaching the backend.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the circuit state: closed (normal), open (rejecting), or
// half-open (probing with a limited number of calls).
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker tuning parameters.
type Config struct {
	// FailureThreshold is the consecutive failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the consecutive success count that closes a half-open circuit.
	SuccessThreshold int
	// Timeout is how long an open circuit waits before probing.
	Timeout time.Duration
	// Name identifies the breaker in logs and health checks.
	Name string
}

// DefaultConfig returns a default circuit breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker tracks consecutive failures and short-circuits calls to a
// backend that keeps failing.
type CircuitBreaker struct {
	config Config

	mu          sync.RWMutex
	state       State
	failures    int
	successes   int
	lastFailure time.Time
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs fn under circuit breaker protection. When the circuit is
// open and the probe timeout has not elapsed, fn is not called and
// ErrCircuitOpen is returned.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(err)
	return err
}

// allow reports whether a call may proceed, moving an open circuit to
// half-open once the probe timeout has elapsed.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if time.Since(cb.lastFailure) < cb.config.Timeout {
		return false
	}

	cb.state = StateHalfOpen
	cb.successes = 0
	log.Info().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker transitioning to half-open")
	return true
}

// record updates the breaker state after a call.
func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailure = time.Now()

		switch cb.state {
		case StateClosed:
			if cb.failures >= cb.config.FailureThreshold {
				cb.state = StateOpen
				log.Warn().
					Str("circuit_breaker", cb.config.Name).
					Int("failure_count", cb.failures).
					Msg("Circuit breaker opened due to failures")
			}
		case StateHalfOpen:
			// One failed probe is enough to reopen.
			cb.state = StateOpen
			cb.failures = cb.config.FailureThreshold
			log.Warn().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker reopened after half-open failure")
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successes = 0
			log.Info().Str("circuit_breaker", cb.config.Name).Msg("Circuit breaker closed after successful recovery")
		}
	}
}

// State returns the current circuit state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether the circuit is currently rejecting calls.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats holds a snapshot of breaker counters for health reporting.
type Stats struct {
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state == StateClosed,
	}
}
