package ingestion

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
	"github.com/evangerty1/stocks-pipeline/internal/logger"
	"github.com/evangerty1/stocks-pipeline/internal/selector"
	"github.com/evangerty1/stocks-pipeline/internal/storage"
)

// MarketClient is the slice of the market data adapter the orchestrator needs.
// Implementations must not return errors; every fetch outcome is encoded in
// the observation itself.
type MarketClient interface {
	FetchDailyChange(ctx context.Context, symbol string, day time.Time) models.TickerObservation
}

// Ingestor runs one daily ingestion pass: fan out over the watchlist, select
// the top mover, write exactly one record for the day.
//
// An Ingestor carries no state between runs; any memory of prior days lives in
// the record store.
type Ingestor struct {
	watchlist []string
	market    MarketClient
	repo      storage.MoversRepository
	parallel  int
	now       func() time.Time // indirection for tests
}

// NewIngestor wires an Ingestor. parallel caps concurrent fetches; 0 means
// auto (up to CPU count, bounded by the watchlist size).
func NewIngestor(watchlist []string, market MarketClient, repo storage.MoversRepository, parallel int) *Ingestor {
	return &Ingestor{
		watchlist: watchlist,
		market:    market,
		repo:      repo,
		parallel:  parallel,
		now:       time.Now,
	}
}

// RunDaily executes one ingestion pass for today (UTC, at invocation time).
//
// Behavior:
//   - If a record already exists for today and force is false, the run is a
//     logged no-op (safe re-trigger).
//   - Each watchlist symbol is fetched independently; one symbol's failure
//     never aborts the others.
//   - The selection result always produces a record: a mover, a market-closed
//     sentinel, or a no-data sentinel. Exactly one upsert per run.
//   - Only a store failure makes the invocation fail.
func (in *Ingestor) RunDaily(ctx context.Context, force bool) error {
	day := truncateToDate(in.now().UTC())
	start := time.Now()

	logger.L().Info().
		Str("day", day.Format("2006-01-02")).
		Int("watchlist", len(in.watchlist)).
		Msg("ingestion start")

	exists, err := in.repo.HasRecordForDate(day)
	if err != nil {
		return fmt.Errorf("check existing record: %w", err)
	}
	if exists && !force {
		logger.L().Info().Str("day", day.Format("2006-01-02")).Bool("skipped", true).Msg("already ingested")
		return nil
	}

	observations := in.fetchAll(ctx, day)

	sel := selector.TopMover(observations)
	record := in.buildRecord(day, sel)

	if err := in.repo.UpsertDailyMover(record); err != nil {
		return fmt.Errorf("write daily mover: %w", err)
	}

	evt := logger.L().Info().
		Str("day", day.Format("2006-01-02")).
		Str("status", string(record.Status)).
		Dur("elapsed", time.Since(start))
	if record.Recorded() {
		evt = evt.Str("symbol", record.Symbol).Float64("percent_change", record.PercentChange)
	}
	evt.Msg("ingestion done")
	return nil
}

// fetchAll fans out one fetch per watchlist symbol with bounded concurrency.
// Results land in a slice indexed by watchlist position, so the selector's
// tie-break sees watchlist order no matter when each fetch finishes.
func (in *Ingestor) fetchAll(ctx context.Context, day time.Time) []models.TickerObservation {
	observations := make([]models.TickerObservation, len(in.watchlist))

	maxParallel := in.parallel
	if maxParallel <= 0 {
		maxParallel = runtime.NumCPU()
	}
	if maxParallel > len(in.watchlist) {
		maxParallel = len(in.watchlist)
	}
	if maxParallel < 1 {
		maxParallel = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, symbol := range in.watchlist {
		idx := i
		sym := symbol
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			obs := in.market.FetchDailyChange(gctx, sym, day)
			observations[idx] = obs
			logger.L().Debug().
				Str("symbol", sym).
				Str("outcome", string(obs.Outcome)).
				Float64("percent_change", obs.PercentChange).
				Msg("ticker fetched")
			return nil
		})
	}

	// fetches never return errors; Wait only joins the group
	_ = g.Wait()

	var failedCount, noDataCount int
	for _, obs := range observations {
		switch obs.Outcome {
		case models.OutcomeFailed:
			failedCount++
		case models.OutcomeNoData:
			noDataCount++
		}
	}
	if failedCount > 0 {
		logger.L().Warn().Int("failed", failedCount).Int("no_data", noDataCount).Msg("partial fetch failures")
	}

	return observations
}

// buildRecord turns a selection into the day's persistent record. Sentinel
// statuses carry no symbol or percent change.
func (in *Ingestor) buildRecord(day time.Time, sel models.Selection) models.DailyMover {
	record := models.DailyMover{
		Day:        day,
		Status:     sel.Status,
		IngestedAt: in.now().UTC(),
	}
	if sel.Status == models.StatusRecorded {
		record.Symbol = sel.Winner.Symbol
		record.PercentChange = sel.Winner.PercentChange
		record.ClosingPrice = sel.Winner.ClosingPrice
	}
	return record
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
