package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a local .env file.
//
// It is composed of smaller structs covering the different concerns of the
// system: HTTP server settings, Postgres connection details, the market data
// provider, and the watchlist of tickers to track.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=stocks
//	POSTGRES_SSLMODE=disable
//	MARKET_BASE_URL=https://api.massive.com/v1
//	MARKET_API_KEY=secret
//	WATCHLIST=AAPL,MSFT,GOOGL,AMZN,TSLA,NVDA
type Config struct {
	Server    ServerConfig   // HTTP server configuration
	Postgres  PostgresConfig // PostgreSQL connection settings
	Market    MarketConfig   // Market data provider settings
	Watchlist []string       // Ordered ticker symbols to track (fixed at deploy time)
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// MarketConfig defines how the market data provider is reached.
//
// The API key is supplied out of band (environment/secret store); it is only
// required in ingest mode and is validated there, not here, so the API can run
// without it.
type MarketConfig struct {
	BaseURL    string        // provider base URL (e.g., https://api.massive.com/v1)
	APIKey     string        // bearer credential for the provider
	Timeout    time.Duration // per-request timeout
	MaxRetries int           // retries per ticker on transient failures
	RetryDelay time.Duration // base delay for the retry backoff
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stocks")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("MARKET_BASE_URL", "https://api.massive.com/v1")
	viper.SetDefault("MARKET_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MARKET_MAX_RETRIES", 2)
	viper.SetDefault("MARKET_RETRY_DELAY_MS", 1000)

	viper.SetDefault("WATCHLIST", "AAPL,MSFT,GOOGL,AMZN,TSLA,NVDA")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Market: MarketConfig{
			BaseURL:    strings.TrimRight(viper.GetString("MARKET_BASE_URL"), "/"),
			APIKey:     viper.GetString("MARKET_API_KEY"),
			Timeout:    time.Duration(viper.GetInt("MARKET_TIMEOUT_SECONDS")) * time.Second,
			MaxRetries: viper.GetInt("MARKET_MAX_RETRIES"),
			RetryDelay: time.Duration(viper.GetInt("MARKET_RETRY_DELAY_MS")) * time.Millisecond,
		},
		Watchlist: parseWatchlist(viper.GetString("WATCHLIST")),
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// parseWatchlist splits a comma-separated ticker list into an ordered slice.
// Order matters: it is the fetch iteration order and the tie-break order for
// mover selection. Symbols are upper-cased and blanks are dropped.
func parseWatchlist(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToUpper(strings.TrimSpace(p))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if len(AppConfig.Watchlist) == 0 {
		missing = append(missing, "WATCHLIST")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
