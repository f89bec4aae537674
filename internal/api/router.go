// Package api serves the insight engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kapu/journal-insight-go/internal/config"
)

func NewRouter(h *Handler, cfg config.ServerConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(Instrument(logger))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.MaxConcurrentRequests > 0 {
			r.Use(chimiddleware.Throttle(cfg.MaxConcurrentRequests))
		}
		if cfg.RateLimitPerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
		}

		r.Post("/analysis/daily", h.AnalyzeDaily)
		r.Post("/analysis/weekly", h.AnalyzeWeekly)
		r.Post("/writing-style", h.AnalyzeWritingStyle)
		r.Post("/recommendations/movies", h.MovieRecommendations)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/writing-style", h.UserWritingStyle)
			r.Post("/weekly-report", h.WeeklyReport)
		})
	})

	return r
}
