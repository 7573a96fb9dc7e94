package orbital

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orbital_ticks_total",
			Help: "Total number of physics ticks stepped.",
		},
	)

	eventsFired = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orbital_events_fired_total",
			Help: "Total number of orbital events published, by type.",
		},
		[]string{"type"},
	)

	keplerCapHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orbital_kepler_iteration_cap_total",
			Help: "Total number of Kepler solves that hit the iteration cap.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticksTotal)
	prometheus.MustRegister(eventsFired)
	prometheus.MustRegister(keplerCapHits)
}

// MetricsHandler returns the Prometheus metrics HTTP handler.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
