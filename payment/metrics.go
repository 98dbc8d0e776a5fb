package payment

import "github.com/prometheus/client_golang/prometheus"

// Registered by the process entrypoint next to the other collectors.
var (
	MAuthorizeAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dropship_payment_authorize_attempts_total",
		Help: "Payment authorization attempts by method.",
	}, []string{"method"})

	MAuthorizeDeclines = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dropship_payment_authorize_declines_total",
		Help: "Payment authorizations declined for business reasons, by method.",
	}, []string{"method"})

	MRefunds = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dropship_payment_refunds_total",
		Help: "Refunds applied (full and partial).",
	})
)

// Collectors returns everything this package exports to the registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{MAuthorizeAttempts, MAuthorizeDeclines, MRefunds}
}
