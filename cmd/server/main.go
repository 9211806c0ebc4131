package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pep299/genai-finance-assistant/internal/application"
	"github.com/pep299/genai-finance-assistant/internal/config"
	"github.com/pep299/genai-finance-assistant/internal/logger"
	"github.com/pep299/genai-finance-assistant/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("GenAI Financial Assistant Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY            Gemini API key (required)\n")
		fmt.Printf("  GEMINI_MODEL              Gemini model (default: gemini-1.5-pro)\n")
		fmt.Printf("  UPSTREAM_TIMEOUT_SECONDS  Gemini call timeout (default: 60)\n")
		fmt.Printf("  TOPIC_KEYWORDS            Comma separated domain keywords\n")
		fmt.Printf("  PORT                      Server port (default: 8080)\n")
		fmt.Printf("  HOST                      Server host (default: 0.0.0.0)\n")
		fmt.Printf("  LOG_LEVEL                 debug, info, warn or error (default: info)\n")
		fmt.Printf("  LOG_FORMAT                json or console (default: json)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("GenAI Financial Assistant Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	app := application.New(cfg, zl)
	defer app.Close()

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.NewRouter(app),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		zl.Info("starting server", zap.String("addr", httpServer.Addr), zap.String("model", cfg.GeminiModel), zap.String("version", Version))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown error", zap.Error(err))
	}

	zl.Info("server stopped")
}
