package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus instruments.
type metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  prometheus.Histogram
	patchesSent    prometheus.Counter
	patchBytes     prometheus.Counter
	wsErrors       *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "loom",
			Name:      "active_sessions",
			Help:      "Number of open websocket sessions",
		}),
		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Name:      "sessions_total",
			Help:      "Total websocket sessions accepted",
		}),
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loom",
			Name:      "events_total",
			Help:      "Client events processed by type and status",
		}, []string{"type", "status"}),
		eventDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "loom",
			Name:      "event_duration_seconds",
			Help:      "Event dispatch duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Name:      "patches_sent_total",
			Help:      "Facet patches sent to clients",
		}),
		patchBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "loom",
			Name:      "patch_bytes_total",
			Help:      "Encoded patch frame bytes sent to clients",
		}),
		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loom",
			Name:      "websocket_errors_total",
			Help:      "Websocket errors by type",
		}, []string{"type"}),
	}
}
