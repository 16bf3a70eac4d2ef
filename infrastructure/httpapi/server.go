// Package httpapi exposes the escrow ledger as a JSON API for the marketplace front end.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"talent-stake/domain/interfaces"
)

// PrincipalHeader carries the caller's principal, set by the identity layer in front of the API.
const PrincipalHeader = "X-Principal"

// Config captures the dependencies required to construct the server.
type Config struct {
	Engine   interfaces.EscrowEngine
	Queries  interfaces.LedgerQueries
	Disputes interfaces.DisputeService
	Logger   interfaces.Logger

	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// Server encapsulates dependencies for the HTTP API.
type Server struct {
	engine   interfaces.EscrowEngine
	queries  interfaces.LedgerQueries
	disputes interfaces.DisputeService
	logger   interfaces.Logger
	metrics  http.Handler

	router http.Handler
}

// New constructs the API router.
func New(cfg Config) *Server {
	srv := &Server{
		engine:   cfg.Engine,
		queries:  cfg.Queries,
		disputes: cfg.Disputes,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
	srv.router = srv.buildRouter()
	return srv
}

// Handler exposes the configured HTTP router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/jobs", s.ListJobs)
		api.Get("/jobs/{id}", s.GetJob)
		api.Get("/jobs/{id}/history", s.JobHistory)
		api.Get("/jobs/{id}/disputes", s.ListDisputes)
		api.Get("/claims/{hash}", s.ClaimStatus)
		api.Get("/referrals/{id}", s.GetReferral)

		api.Group(func(authed chi.Router) {
			authed.Use(requirePrincipal)
			authed.Post("/jobs", s.CreateJob)
			authed.Post("/jobs/{id}/withdraw", s.WithdrawJob)
			authed.Post("/jobs/{id}/referrals", s.StakeReferral)
			authed.Post("/jobs/{id}/disputes", s.RecordDispute)
			authed.Post("/claims/{hash}", s.ClaimReferral)
			authed.Post("/referrals/{id}/adjudicate", s.AdjudicateReferral)
		})
	})

	return r
}

// requestLogger logs every request through the application logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
