package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront_admin"

var (
	ProductOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "product_operations_total", Help: "Product proxy operations by method and outcome."},
		[]string{"method", "outcome"},
	)
	ProbeRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "probe_requests_total", Help: "Diagnostic probe requests by outcome."},
		[]string{"outcome"},
	)
	RateLimitRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Requests rejected by the per-client rate limiter."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ProductOperations)
	reg.MustRegister(ProbeRequests)
	reg.MustRegister(RateLimitRejected)
}

// Outcome maps an error to the outcome label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
