package metrics

import (
	"time"

	"github.com/goodnatureofminers/utxo-broadcaster/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_rpc",
		Name:      "operations_total",
		Help:      "Count of wRPC operations against full nodes.",
	}, []string{"operation", "network", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wRPC operations against full nodes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeRPC tracks the wRPC calls made for one network.
type NodeRPC struct {
	network string
}

// NewNodeRPC constructs a collector labelled with network.
func NewNodeRPC(network model.Network) *NodeRPC {
	return &NodeRPC{network: orUnknown(string(network))}
}

// Observe records a single call outcome and duration.
func (m NodeRPC) Observe(operation string, err error, started time.Time) {
	s := status(err)
	nodeRPCRequestsTotal.WithLabelValues(operation, m.network, s).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, m.network, s).Observe(time.Since(started).Seconds())
}
