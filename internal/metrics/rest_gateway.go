package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	restGatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rest_gateway",
		Name:      "requests_total",
		Help:      "Count of REST gateway requests.",
	}, []string{"operation", "endpoint", "status"})
	restGatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rest_gateway",
		Name:      "request_duration_seconds",
		Help:      "Duration of REST gateway requests.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 8, 10, 15, 30},
	}, []string{"operation", "endpoint", "status"})
)

// RESTGateway tracks requests to public REST gateways.
type RESTGateway struct{}

// NewRESTGateway creates a RESTGateway collector.
func NewRESTGateway() *RESTGateway {
	return &RESTGateway{}
}

// Observe records a request against endpoint, labelled by its base URL.
func (m RESTGateway) Observe(operation, endpoint string, err error, started time.Time) {
	s := status(err)
	endpoint = orUnknown(endpoint)
	restGatewayRequestsTotal.WithLabelValues(operation, endpoint, s).Inc()
	restGatewayRequestDuration.WithLabelValues(operation, endpoint, s).Observe(time.Since(started).Seconds())
}
