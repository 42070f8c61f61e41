package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcastAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "attempts_total",
		Help:      "Count of endpoint attempts made while broadcasting.",
	}, []string{"transport", "status"})
	broadcastAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "attempt_duration_seconds",
		Help:      "Duration of a single endpoint attempt.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 45, 60, 75},
	}, []string{"transport", "status"})
	broadcastOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "broadcasts_total",
		Help:      "Count of finished broadcasts by outcome.",
	}, []string{"network", "outcome"})
	broadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of whole broadcasts including fallbacks.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"network", "outcome"})
)

// Broadcaster tracks endpoint attempts and broadcast outcomes.
type Broadcaster struct{}

// NewBroadcaster creates a Broadcaster collector.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// ObserveAttempt records one endpoint attempt.
func (m Broadcaster) ObserveAttempt(kind model.TransportKind, err error, started time.Time) {
	s := status(err)
	transport := orUnknown(string(kind))
	broadcastAttemptsTotal.WithLabelValues(transport, s).Inc()
	broadcastAttemptDuration.WithLabelValues(transport, s).Observe(time.Since(started).Seconds())
}

// ObserveOutcome records a finished broadcast.
func (m Broadcaster) ObserveOutcome(network model.Network, outcome model.Outcome, started time.Time) {
	n := orUnknown(string(network))
	o := orUnknown(string(outcome))
	broadcastOutcomesTotal.WithLabelValues(n, o).Inc()
	broadcastDuration.WithLabelValues(n, o).Observe(time.Since(started).Seconds())
}
