package main

//
//  @title           stocks-pipeline API
//  @version         1.0
//  @description     Daily top-mover ingestion & query service.
//  @termsOfService  https://github.com/evangerty1/stocks-pipeline
//  @contact.name    API Support
//  @contact.url     https://github.com/evangerty1/stocks-pipeline
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        movers
//  @tag.description Endpoints for querying daily top movers
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evangerty1/stocks-pipeline/config"
	_ "github.com/evangerty1/stocks-pipeline/docs" // swagger docs
	"github.com/evangerty1/stocks-pipeline/internal/app"
	"github.com/evangerty1/stocks-pipeline/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and releases resources when an
// OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stocks-pipeline application.
//
// Modes (selected via --mode flag):
//   - ingest: Runs one daily ingestion pass over the configured watchlist
//     and writes (or replaces) today's top-mover record. Intended to be
//     triggered once per day by an external scheduler.
//   - api:    Starts the REST API serving the trailing 7-day mover history.
//
// Flags:
//   - --mode:     Execution mode ("ingest" or "api"). Default: "ingest".
//   - --force:    Reprocess today even if a record already exists.
//   - --parallel: Concurrent ticker fetches (0=auto up to CPU).
//   - --port:     Port for the API server. Defaults to SERVER_PORT.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "ingest", "Mode: ingest or api")
	force := flag.Bool("force", false, "Reprocess today even if already ingested (replaces the existing record)")
	parallel := flag.Int("parallel", 0, "How many tickers to fetch concurrently (0=auto up to CPU)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		// Ingestion mode: one pass, one record for today
		logger.L().Info().Msg("running ingestion")

		ingestor, cleanup, err := app.NewIngestor(config.AppConfig, *parallel)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("ingestor init error")
		}
		defer cleanup()

		if err := ingestor.RunDaily(ctx, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
