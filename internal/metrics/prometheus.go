package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// Prometheus implements Recorder with client_golang collectors.
type Prometheus struct {
	relayDelivered *prometheus.CounterVec
	relayFailures  *prometheus.CounterVec
	breakerState   *prometheus.GaugeVec
	pollOutcomes   *prometheus.CounterVec
	txCreated      *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(namespace string, reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		relayDelivered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_deliveries_total",
				Help:      "Total number of images delivered to the operator relay",
			},
			[]string{"kind"},
		),
		relayFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_failures_total",
				Help:      "Total number of failed relay deliveries",
			},
			[]string{"kind"},
		),
		breakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "relay_breaker_state",
				Help:      "Relay circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),
		pollOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "poll_outcomes_total",
				Help:      "Total number of finished confirmation polls by outcome",
			},
			[]string{"outcome"},
		),
		txCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_created_total",
				Help:      "Total number of transactions created through the flow",
			},
			[]string{"currency"},
		),
	}

	for _, c := range []prometheus.Collector{p.relayDelivered, p.relayFailures, p.breakerState, p.pollOutcomes, p.txCreated} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) RelayDelivered(kind models.RelayKind) {
	p.relayDelivered.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) RelayFailed(kind models.RelayKind) {
	p.relayFailures.WithLabelValues(string(kind)).Inc()
}

func (p *Prometheus) RelayBreakerState(name string, state BreakerState) {
	p.breakerState.WithLabelValues(name).Set(float64(state))
}

func (p *Prometheus) PollResolved(outcome PollOutcome) {
	p.pollOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *Prometheus) TransactionCreated(currency models.Currency) {
	p.txCreated.WithLabelValues(string(currency)).Inc()
}
