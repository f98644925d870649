package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/studygen/internal/config"
	"github.com/dgallion1/studygen/internal/nlp"
	"github.com/dgallion1/studygen/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for studygen.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	modelStats   *nlp.ModelStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, modelStats *nlp.ModelStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		modelStats:   modelStats,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.StudygenAPIKey, s.log))

		r.Post("/api/study", s.handleSubmitStudy)
		r.Get("/api/study/{jobID}", s.handleStudyStatus)
		r.Get("/api/study/{jobID}/result", s.handleStudyResult)
		r.Get("/api/stats/models", s.handleModelStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
