// Package metrics records flow and relay counters.
package metrics

import "github.com/sbilibin2017/gw-topup-wallet/internal/models"

// BreakerState mirrors the circuit breaker states reported by the relay.
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerHalfOpen
	BreakerOpen
)

// PollOutcome is how a waiting step ended.
type PollOutcome string

const (
	PollCompleted PollOutcome = "completed"
	PollFailed    PollOutcome = "failed"
	PollTimeout   PollOutcome = "timeout"
	PollCancelled PollOutcome = "cancelled"
)

// Recorder is implemented by metric backends.
type Recorder interface {
	RelayDelivered(kind models.RelayKind)
	RelayFailed(kind models.RelayKind)
	RelayBreakerState(name string, state BreakerState)
	PollResolved(outcome PollOutcome)
	TransactionCreated(currency models.Currency)
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) RelayDelivered(models.RelayKind)        {}
func (NoOp) RelayFailed(models.RelayKind)           {}
func (NoOp) RelayBreakerState(string, BreakerState) {}
func (NoOp) PollResolved(PollOutcome)               {}
func (NoOp) TransactionCreated(models.Currency)     {}
