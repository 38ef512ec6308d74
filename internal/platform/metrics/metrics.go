package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)

	// OpDuration records timed internal operations (see obs.Time).
	OpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "route_op_duration_seconds", Help: "Duration of internal operations in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"op", "outcome"},
	)

	// PlansTotal counts planning requests by outcome (ok, invalid, cancelled, error).
	PlansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_plans_total", Help: "Route planning requests by outcome."},
		[]string{"outcome"},
	)
	// PlanDestinations tracks how many destinations each plan covered.
	PlanDestinations = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "route_plan_destinations", Help: "Destinations per planning request.", Buckets: []float64{0, 10, 30, 100, 300, 1000, 3000}},
	)
)

var regOnce sync.Once

// RegisterDefault registers the service collectors on Registry. Safe to call repeatedly.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OpDuration)
		Registry.MustRegister(PlansTotal)
		Registry.MustRegister(PlanDestinations)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
