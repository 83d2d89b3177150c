// Package metrics holds the Prometheus collectors of the slug shortener service.
// Collectors are registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results used as the "result" label of URLLookupsTotal.
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

var (
	// HTTPRequestDuration tracks the duration of HTTP requests.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsTotal counts HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// URLsCreatedTotal counts stored mappings.
	URLsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_created_total",
			Help: "Total number of URLs shortened",
		},
	)

	// URLLookupsTotal counts slug lookups by result.
	URLLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "url_lookups_total",
			Help: "Total number of slug lookups",
		},
		[]string{"result"},
	)

	// SlugCollisionsTotal counts generated slugs that were already taken.
	SlugCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slug_collisions_total",
			Help: "Total number of generated slugs rejected as already in use",
		},
	)

	// StoredURLs tracks the number of mappings held in memory.
	StoredURLs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stored_urls",
			Help: "Number of URLs currently stored",
		},
	)
)

// RecordURLCreated increments the creation counter and sets the stored gauge.
func RecordURLCreated(stored int) {
	URLsCreatedTotal.Inc()
	StoredURLs.Set(float64(stored))
}

// RecordLookup increments the lookup counter for a hit or a miss.
func RecordLookup(found bool) {
	if found {
		URLLookupsTotal.WithLabelValues(LookupHit).Inc()
		return
	}
	URLLookupsTotal.WithLabelValues(LookupMiss).Inc()
}

// RecordCollision increments the collision counter.
func RecordCollision() {
	SlugCollisionsTotal.Inc()
}
