package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/studygen/internal/api"
	"github.com/dgallion1/studygen/internal/config"
	"github.com/dgallion1/studygen/internal/nlp"
	"github.com/dgallion1/studygen/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize model capability clients. Loaded once, reused across runs.
	stats := nlp.NewModelStats(time.Hour)
	tagger := nlp.NewTaggerClient(cfg.TaggerURL, stats)
	summarizer := nlp.NewSummarizerClient(cfg.SummarizerURL, stats)
	questions := nlp.NewQuestionClient(cfg.QuestionURL, stats)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, tagger, summarizer, questions, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		tagger.Close()
		summarizer.Close()
		questions.Close()
	}()

	log.Info("starting studygen", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
