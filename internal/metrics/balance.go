package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	balanceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "balance",
		Name:      "requests_total",
		Help:      "Count of balance reconciliations by answering source.",
	}, []string{"network", "source", "status"})
	balanceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "balance",
		Name:      "request_duration_seconds",
		Help:      "Duration of balance reconciliations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Balance tracks balance reconciliations.
type Balance struct{}

// NewBalance creates a Balance collector.
func NewBalance() *Balance {
	return &Balance{}
}

// Observe records a reconciliation answered by source, or failed with err.
func (m Balance) Observe(network model.Network, source string, err error, started time.Time) {
	s := status(err)
	n := orUnknown(string(network))
	if err != nil {
		source = model.BalanceSourceError
	}
	balanceRequestsTotal.WithLabelValues(n, orUnknown(source), s).Inc()
	balanceRequestDuration.WithLabelValues(n, s).Observe(time.Since(started).Seconds())
}
