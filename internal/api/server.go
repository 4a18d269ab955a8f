package api

import (
	"log/slog"
	"net/http"

	"github.com/accordohq/accordo/internal/artifact"
	"github.com/accordohq/accordo/internal/assemble"
	"github.com/accordohq/accordo/internal/config"
	"github.com/accordohq/accordo/internal/llm"
	"github.com/accordohq/accordo/internal/negotiate"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for accordo.
type Server struct {
	router    chi.Router
	orch      *negotiate.Orchestrator
	assembler *assemble.Assembler
	store     *artifact.Store
	llmClient *llm.Client
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. llmClient may be nil;
// the stats endpoint then reports unavailable.
func NewServer(orch *negotiate.Orchestrator, asm *assemble.Assembler, store *artifact.Store, llmClient *llm.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orch:      orch,
		assembler: asm,
		store:     store,
		llmClient: llmClient,
		log:       log,
		cfg:       cfg,
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

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/negotiate", s.handleNegotiate)
		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/download", s.handleDownload)
		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
