package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"sales-analytics/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// CircuitBreaker stops calling redis after repeated failures and tries it
// again once ResetTimeout has passed
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Allow reports whether a call may go through, moving an expired open
// breaker to half-open
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}

	return cb.state != StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.state = StateClosed
			cb.failures = 0
			cb.halfOpenSuccesses = 0
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.state = StateOpen
		cb.halfOpenSuccesses = 0
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.state = StateOpen
		}
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// totalsStore is the subset of a totals cache the breaker guards
type totalsStore interface {
	Get(ctx context.Context) (*models.CategoryTotalsReport, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, report *models.CategoryTotalsReport) error
	Invalidate(ctx context.Context) error
}

// GuardedTotalsCache short-circuits cache calls while redis keeps failing.
// Invalidate always reaches the store so a recovered redis never serves
// totals older than the last write.
type GuardedTotalsCache struct {
	next    totalsStore
	breaker *CircuitBreaker
}

func NewGuardedTotalsCache(next totalsStore, breaker *CircuitBreaker) *GuardedTotalsCache {
	return &GuardedTotalsCache{next: next, breaker: breaker}
}

func (g *GuardedTotalsCache) Get(ctx context.Context) (*models.CategoryTotalsReport, error) {
	if !g.breaker.Allow() {
		return nil, ErrCircuitBreakerOpen
	}

	report, err := g.next.Get(ctx)
	g.record(err)
	return report, err
}

func (g *GuardedTotalsCache) Generation(ctx context.Context) (int64, error) {
	if !g.breaker.Allow() {
		return 0, ErrCircuitBreakerOpen
	}

	generation, err := g.next.Generation(ctx)
	g.record(err)
	return generation, err
}

func (g *GuardedTotalsCache) Set(ctx context.Context, generation int64, report *models.CategoryTotalsReport) error {
	if !g.breaker.Allow() {
		return ErrCircuitBreakerOpen
	}

	err := g.next.Set(ctx, generation, report)
	g.record(err)
	return err
}

func (g *GuardedTotalsCache) Invalidate(ctx context.Context) error {
	err := g.next.Invalidate(ctx)
	g.record(err)
	return err
}

func (g *GuardedTotalsCache) record(err error) {
	if err != nil {
		g.breaker.RecordFailure()
		return
	}
	g.breaker.RecordSuccess()
}
