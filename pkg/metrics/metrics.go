// pkg/metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ProxyRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "razorpay_proxy",
			Name:      "requests_total",
			Help:      "Total inbound requests handled by the proxy",
		},
		[]string{"service", "status", "method"},
	)

	ProxyRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "razorpay_proxy",
			Name:      "request_duration_seconds",
			Help:      "Inbound request handling duration",
			// most requests are bounded by one upstream round trip
			Buckets: []float64{
				0.01, 0.02, 0.03, 0.05, 0.08, 0.12,
				0.2, 0.3, 0.5, 0.8, 1.2, 2, 3, 5,
			},
		},
		[]string{"service", "status"},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "razorpay_proxy",
			Name:      "upstream_requests_total",
			Help:      "Outbound calls to the Razorpay API per operation",
		},
		[]string{"operation", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(ProxyRequestsTotal, ProxyRequestDuration, UpstreamRequestsTotal)
}

func IncRequest(service, status, method string) {
	ProxyRequestsTotal.WithLabelValues(service, status, method).Inc()
}

func ObserveDuration(service, status string, seconds float64) {
	ProxyRequestDuration.WithLabelValues(service, status).Observe(seconds)
}

func IncUpstream(operation, outcome string) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
