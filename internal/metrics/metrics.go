package metrics

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Package-level Prometheus collectors, registered via Register.
var (
	regOK atomic.Bool

	processStarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "procwatch",
			Subsystem: "process",
			Name:      "starts_total",
			Help:      "Number of successful process starts.",
		}, []string{"name"},
	)
	processStops = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "procwatch",
			Subsystem: "process",
			Name:      "stops_total",
			Help:      "Number of stop requests that found a process to signal.",
		}, []string{"name"},
	)
	processRestarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "procwatch",
			Subsystem: "process",
			Name:      "restarts_total",
			Help:      "Number of restart operations.",
		}, []string{"name"},
	)
	reconcileStarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "procwatch",
			Subsystem: "process",
			Name:      "reconcile_starts_total",
			Help:      "Number of starts issued by the reconciliation loop.",
		}, []string{"name"},
	)
	processUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "procwatch",
			Subsystem: "process",
			Name:      "up",
			Help:      "1 if the process was running at the last observation.",
		}, []string{"name"},
	)
)

// Register registers all collectors with reg. Safe to call more than once.
func Register(reg prometheus.Registerer) error {
	if regOK.Load() {
		return nil
	}
	collectors := []prometheus.Collector{
		processStarts, processStops, processRestarts, reconcileStarts, processUp,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	regOK.Store(true)
	return nil
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler { return promhttp.Handler() }

func IncStart(name string)          { processStarts.WithLabelValues(name).Inc() }
func IncStop(name string)           { processStops.WithLabelValues(name).Inc() }
func IncRestart(name string)        { processRestarts.WithLabelValues(name).Inc() }
func IncReconcileStart(name string) { reconcileStarts.WithLabelValues(name).Inc() }

func SetUp(name string, up bool) {
	v := 0.0
	if up {
		v = 1.0
	}
	processUp.WithLabelValues(name).Set(v)
}
