// Package httpapi exposes the live availability snapshot over HTTP. The
// monitor works without it; it is a read-only observation surface.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/MJDEV50/fetch-coding-challenge/internal/config"
	"github.com/MJDEV50/fetch-coding-challenge/internal/stats"
)

type Server struct {
	Logger    *zap.Logger
	Stats     *stats.Aggregator
	Endpoints []config.Endpoint
}

func NewServer(l *zap.Logger, agg *stats.Aggregator, endpoints []config.Endpoint) *Server {
	return &Server{Logger: l, Stats: agg, Endpoints: endpoints}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/endpoints", s.handleListEndpoints)
	r.Get("/api/availability", s.handleAvailability)

	return r
}

func (s *Server) handleListEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Endpoints); err != nil {
		s.Logger.Warn("encode_endpoints_error", zap.Error(err))
	}
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	snap := s.Stats.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.Logger.Warn("encode_snapshot_error", zap.Error(err))
	}
}
