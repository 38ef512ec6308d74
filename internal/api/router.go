package api

import (
	"depot-route-service/internal/api/handlers"
	"depot-route-service/internal/platform/metrics"
	"depot-route-service/internal/ports"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Options carries the API's collaborators and limits.
// Cache, DB and a zero RateLimit are optional.
type Options struct {
	Runs            ports.RunRepository
	Cache           ports.SolutionCache
	DB              handlers.Pinger
	MaxDepots       int
	MaxDestinations int
	Workers         int
	SolveTimeout    time.Duration
	RateLimit       float64
	RateBurst       int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(opts Options) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	routesHandler := &handlers.RoutesHandler{
		Runs:            opts.Runs,
		Cache:           opts.Cache,
		MaxDepots:       opts.MaxDepots,
		MaxDestinations: opts.MaxDestinations,
		Workers:         opts.Workers,
		Timeout:         opts.SolveTimeout,
	}
	runsHandler := &handlers.RunsHandler{Runs: opts.Runs}
	readyHandler := &handlers.ReadyHandler{DB: opts.DB}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/ready", readyHandler.Ready)
	mux.HandleFunc("/routes", routesHandler.Create)
	mux.HandleFunc("/runs", runsHandler.List)
	mux.HandleFunc("/runs/{id}", runsHandler.Get)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.RateBurst, 1))
	}

	return requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(limiter, mux)))
}
