package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the service's Prometheus metrics. Access verdicts are
// counted by variant so operators can watch for denied_misconfigured,
// which indicates a data inconsistency rather than client behavior.
type Collector struct {
	AccessChecks    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	PhotoUploads    prometheus.Counter
}

// NewCollector creates a Collector and registers it with the registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		AccessChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripshare",
			Name:      "trip_access_checks_total",
			Help:      "Trip access checks by verdict.",
		}, []string{"verdict"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripshare",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
		PhotoUploads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "tripshare",
			Name:      "photo_uploads_total",
			Help:      "Photo registrations accepted.",
		}),
	}
}

// RecordVerdict counts one access check outcome.
func (c *Collector) RecordVerdict(verdict string) {
	c.AccessChecks.WithLabelValues(verdict).Inc()
}
