package http

import (
	"log/slog"
	"net/http"

	"creditwise/observability"
	"creditwise/service"
)

type Dependencies struct {
	Scoring    *service.ScoringService
	Simulation *service.SimulationService
	Limiter    *RateLimiter
	Metrics    *observability.Metrics
	Logger     *slog.Logger
}

// NewRouter registers every endpoint. Scoring routes are rate limited when a
// limiter is supplied.
func NewRouter(d Dependencies) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var observer RequestObserver
	if d.Metrics != nil {
		observer = d.Metrics
	}

	limited := func(h http.Handler) http.Handler {
		if d.Limiter == nil {
			return h
		}
		return RateLimitMiddleware(d.Limiter, h)
	}
	route := func(name string, h http.Handler) http.Handler {
		return Instrument(logger, observer, name, h)
	}

	scoreHandler := NewScoreHandler(d.Scoring)
	simulationHandler := NewSimulationHandler(d.Simulation)

	mux := http.NewServeMux()
	mux.Handle("/score", route("score", limited(http.HandlerFunc(scoreHandler.Score))))
	mux.Handle("/simulate", route("simulate", limited(http.HandlerFunc(simulationHandler.Simulate))))
	mux.Handle("/factors", route("factors", http.HandlerFunc(Factors)))
	mux.Handle("/healthz", http.HandlerFunc(Health))
	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
	}

	return RequestIDMiddleware(mux)
}
