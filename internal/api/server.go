// Package api exposes the engine's HTTP surface: health and status probes
// plus a bearer-authed debug group for flow inspection and dry-run
// previews.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jzineldin/tale-forge-choices/internal/engine"
)

type Server struct {
	router *chi.Mux
	port   int
	engine *engine.Engine
	flows  *engine.FlowLog
}

func NewServer(port int, apiToken string, eng *engine.Engine, flows *engine.FlowLog) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		engine: eng,
		flows:  flows,
	}

	router.Get("/health", s.health)

	router.Route("/api/v1/choices", func(r chi.Router) {
		r.Get("/status", s.status)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuthMiddleware(apiToken))
			r.Get("/flows", s.listFlows)
			r.Get("/meta/{segmentID}", s.segmentMeta)
			r.Post("/preview", s.preview)
		})
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware guards debug routes. With no token configured the
// routes are disabled rather than open.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				http.Error(w, `{"error":"debug API not configured"}`, http.StatusServiceUnavailable)
				return
			}
			if r.Header.Get("Authorization") != "Bearer "+token {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "choice-engine",
		"version": s.engine.EffectiveVersion(),
	})
}

func (s *Server) listFlows(w http.ResponseWriter, r *http.Request) {
	flows := s.flows.Flows()
	writeJSON(w, http.StatusOK, map[string]any{
		"flows": flows,
		"count": len(flows),
	})
}

func (s *Server) segmentMeta(w http.ResponseWriter, r *http.Request) {
	segmentID := chi.URLParam(r, "segmentID")
	meta, ok := s.flows.MetaFor(segmentID)
	if !ok {
		http.Error(w, `{"error":"segment not seen by this engine"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// PreviewRequest runs the pipeline on raw text without touching storage.
type PreviewRequest struct {
	Text  string `json:"text"`
	Genre string `json:"genre"`
	Tone  string `json:"tone"`
}

type PreviewResponse struct {
	Choices []string `json:"choices"`
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		Choices: s.engine.Preview(req.Text, req.Genre, req.Tone),
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
