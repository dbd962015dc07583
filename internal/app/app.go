package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/evangerty1/stocks-pipeline/config"
	"github.com/evangerty1/stocks-pipeline/internal/api"
	"github.com/evangerty1/stocks-pipeline/internal/ingestion"
	"github.com/evangerty1/stocks-pipeline/internal/marketdata"
	"github.com/evangerty1/stocks-pipeline/internal/service"
	"github.com/evangerty1/stocks-pipeline/internal/storage"
)

// InitializeApp sets up the query-path dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Wiring: Postgres → repository → service → handler → router, plus the
// health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewMoversRepository(db)
	svc := service.NewMoversService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

// NewIngestor wires the ingestion-path dependencies: Postgres, the market
// data client, and the orchestrator over the configured watchlist. The
// returned cleanup closes the DB connection.
func NewIngestor(cfg config.Config, parallel int) (*ingestion.Ingestor, func(), error) {
	if cfg.Market.APIKey == "" {
		return nil, nil, fmt.Errorf("MARKET_API_KEY is required for ingestion")
	}

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewMoversRepository(db)
	market := marketdata.NewClient(cfg.Market)
	ing := ingestion.NewIngestor(cfg.Watchlist, market, repo, parallel)

	cleanup := func() {
		_ = db.Close()
	}

	return ing, cleanup, nil
}
