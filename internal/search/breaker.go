package search

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"real-estate-publications/internal/models"
	"real-estate-publications/internal/publication"
)

// ErrCircuitOpen is returned while the breaker is skipping index calls
var ErrCircuitOpen = errors.New("search index circuit open")

// CircuitBreaker stops calling an unhealthy index after repeated failures
type CircuitBreaker struct {
	failureThreshold int
	resetTimeout     time.Duration
	now              func() time.Time

	consecutiveFailures int
	isOpen              bool
	openedAt            time.Time

	mutex sync.Mutex
}

// NewCircuitBreaker creates a new circuit breaker
func NewCircuitBreaker(failureThreshold int, resetTimeout time.Duration) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 1
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		now:              time.Now,
	}
}

// CanProceed checks if calls are allowed. After resetTimeout one trial call is let through.
func (cb *CircuitBreaker) CanProceed() bool {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if !cb.isOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) >= cb.resetTimeout {
		slog.Info("search: circuit half-open, retrying index", "after", cb.resetTimeout)
		cb.isOpen = false
		cb.consecutiveFailures = cb.failureThreshold - 1
		return true
	}
	return false
}

// RecordSuccess closes the breaker
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.consecutiveFailures = 0
}

// RecordFailure opens the breaker once the threshold is reached
func (cb *CircuitBreaker) RecordFailure() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	cb.consecutiveFailures++
	if cb.consecutiveFailures >= cb.failureThreshold && !cb.isOpen {
		cb.isOpen = true
		cb.openedAt = cb.now()
		slog.Warn("search: circuit open, index calls paused",
			"consecutive_failures", cb.consecutiveFailures, "retry_after", cb.resetTimeout)
	}
}

// IsOpen reports whether calls are currently being skipped
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.isOpen
}

// GuardedIndexer wraps an Indexer with a circuit breaker
type GuardedIndexer struct {
	inner   publication.Indexer
	breaker *CircuitBreaker
}

// NewGuardedIndexer creates an indexer that skips inner while breaker is open
func NewGuardedIndexer(inner publication.Indexer, breaker *CircuitBreaker) *GuardedIndexer {
	return &GuardedIndexer{inner: inner, breaker: breaker}
}

func (g *GuardedIndexer) IndexPublications(items []models.Publication) error {
	return g.call(func() error { return g.inner.IndexPublications(items) })
}

func (g *GuardedIndexer) RemovePublications(ids []int) error {
	return g.call(func() error { return g.inner.RemovePublications(ids) })
}

func (g *GuardedIndexer) call(fn func() error) error {
	if !g.breaker.CanProceed() {
		return ErrCircuitOpen
	}
	if err := fn(); err != nil {
		g.breaker.RecordFailure()
		return err
	}
	g.breaker.RecordSuccess()
	return nil
}
