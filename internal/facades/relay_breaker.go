package facades

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sony/gobreaker"
)

// RelaySender is the relay call guarded by the breaker.
type RelaySender interface {
	Send(ctx context.Context, msg models.RelayMessage) error
}

// BreakerConfig configures the relay circuit breaker.
type BreakerConfig struct {
	MaxRequests         uint32        // Requests allowed through while half-open
	Interval            time.Duration // Closed-state counter reset period, 0 keeps counts
	Timeout             time.Duration // Time spent open before probing again
	ConsecutiveFailures uint32        // Failures that trip the breaker
}

// BreakerRelay stops calling a relay that keeps failing and reports state changes.
type BreakerRelay struct {
	next RelaySender
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerRelay wraps next with a circuit breaker named name.
func NewBreakerRelay(name string, next RelaySender, cfg BreakerConfig, rec metrics.Recorder) *BreakerRelay {
	if rec == nil {
		rec = metrics.NoOp{}
	}
	trip := cfg.ConsecutiveFailures
	if trip == 0 {
		trip = 5
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trip
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warnw("relay circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)

			var state metrics.BreakerState
			switch to {
			case gobreaker.StateClosed:
				state = metrics.BreakerClosed
			case gobreaker.StateHalfOpen:
				state = metrics.BreakerHalfOpen
			case gobreaker.StateOpen:
				state = metrics.BreakerOpen
			}
			rec.RelayBreakerState(name, state)
		},
	}

	return &BreakerRelay{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

// Send delivers msg through the breaker. While open it fails fast with gobreaker.ErrOpenState.
func (r *BreakerRelay) Send(ctx context.Context, msg models.RelayMessage) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.next.Send(ctx, msg)
	})
	return err
}

// State returns the current breaker state.
func (r *BreakerRelay) State() gobreaker.State {
	return r.cb.State()
}
