package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSent          = "sent"
	resultNotConfigured = "not_configured"
	resultFailed        = "failed"
)

func NewMetricsRegistry() *metricsRegistry {
	registry := &metricsRegistry{
		Registry: prometheus.NewRegistry(),
		deliveriesCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentry_msteams_deliveries_total",
				Help: "Number of processed event notifications.",
			},
			[]string{"project", "result"},
		),
	}
	registry.MustRegister(registry.deliveriesCounter)
	return registry
}

type metricsRegistry struct {
	*prometheus.Registry
	deliveriesCounter *prometheus.CounterVec
}

func (r *metricsRegistry) IncDeliveriesCounter(project string, result string) {
	r.deliveriesCounter.WithLabelValues(project, result).Inc()
}
