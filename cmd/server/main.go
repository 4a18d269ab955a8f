package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/accordohq/accordo/internal/api"
	"github.com/accordohq/accordo/internal/artifact"
	"github.com/accordohq/accordo/internal/assemble"
	"github.com/accordohq/accordo/internal/config"
	"github.com/accordohq/accordo/internal/llm"
	"github.com/accordohq/accordo/internal/negotiate"
	"github.com/accordohq/accordo/internal/render"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize clients.
	client := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	engine := render.NewChromeEngine(log, cfg.RenderTimeout)

	store, err := artifact.NewStore(cfg.ArtifactDir)
	if err != nil {
		log.Error("artifact store init failed", "error", err)
		os.Exit(1)
	}

	// Initialize pipeline.
	orch := negotiate.NewOrchestrator(client, log, cfg.LLMTimeout)
	asm := assemble.NewAssembler(engine, store, log)

	// Initialize HTTP server.
	srv := api.NewServer(orch, asm, store, client, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		engine.Close()
		client.Close()
	}()

	log.Info("starting accordo", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
