package services_test

import (
	"sync"

	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

type countingRecorder struct {
	mu        sync.Mutex
	delivered map[models.RelayKind]int
	failed    map[models.RelayKind]int
	polls     []metrics.PollOutcome
	created   int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		delivered: map[models.RelayKind]int{},
		failed:    map[models.RelayKind]int{},
	}
}

func (r *countingRecorder) RelayDelivered(kind models.RelayKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered[kind]++
}

func (r *countingRecorder) RelayFailed(kind models.RelayKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[kind]++
}

func (r *countingRecorder) RelayBreakerState(string, metrics.BreakerState) {}

func (r *countingRecorder) PollResolved(outcome metrics.PollOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls = append(r.polls, outcome)
}

func (r *countingRecorder) TransactionCreated(models.Currency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *countingRecorder) pollOutcomes() []metrics.PollOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]metrics.PollOutcome{}, r.polls...)
}
