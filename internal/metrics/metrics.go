package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provincemap_events_total",
		Help: "Total number of dispatched UI events by type",
	}, []string{"type"})
	RendersTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provincemap_renders_total",
		Help: "Total number of rendered figures by mode (all|selected)",
	}, []string{"mode"})
	MarkersRendered = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "provincemap_markers_rendered",
		Help:    "Number of markers per rendered figure",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})
	NotableMatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "provincemap_notable_matches",
		Help: "Size of the notable match table loaded at startup",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provincemap_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(EventsTotal)
	prometheus.MustRegister(RendersTotal)
	prometheus.MustRegister(MarkersRendered)
	prometheus.MustRegister(NotableMatches)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
