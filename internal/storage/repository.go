package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
)

// MoversRepository defines the contract for daily mover persistence.
type MoversRepository interface {
	UpsertDailyMover(m models.DailyMover) error
	GetMoversRange(from, to time.Time) ([]models.DailyMover, error)
	HasRecordForDate(day time.Time) (bool, error)
}

type moversRepository struct {
	db *sql.DB
}

func NewMoversRepository(db *sql.DB) MoversRepository {
	return &moversRepository{db: db}
}

// UpsertDailyMover writes the day's record, replacing any existing record for
// the same day. The conflict target is the day itself, which is what makes a
// re-run for the same date safe: last write wins, never a duplicate row.
func (r *moversRepository) UpsertDailyMover(m models.DailyMover) error {
	_, err := r.db.Exec(`
		INSERT INTO daily_movers (day, status, symbol, percent_change, closing_price, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day)
		DO UPDATE SET status = EXCLUDED.status,
					  symbol = EXCLUDED.symbol,
					  percent_change = EXCLUDED.percent_change,
					  closing_price = EXCLUDED.closing_price,
					  ingested_at = EXCLUDED.ingested_at
	`, m.Day, string(m.Status), nullSymbol(m), nullPct(m), nullPrice(m), m.IngestedAt)
	if err != nil {
		return fmt.Errorf("upsert daily mover for %s: %w", m.Day.Format("2006-01-02"), err)
	}
	return nil
}

// HasRecordForDate reports whether ingestion already wrote a record for a day.
func (r *moversRepository) HasRecordForDate(day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM daily_movers WHERE day = $1)`, day).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetMoversRange returns all records whose day falls within [from, to],
// ordered by day ascending. Zero matching rows is a valid result (early days
// with no history), not an error.
func (r *moversRepository) GetMoversRange(from, to time.Time) ([]models.DailyMover, error) {
	rows, err := r.db.Query(`
		SELECT day, status, symbol, percent_change, closing_price, ingested_at
		FROM daily_movers
		WHERE day >= $1 AND day <= $2
		ORDER BY day ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query movers range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	movers := make([]models.DailyMover, 0)
	for rows.Next() {
		var (
			m      models.DailyMover
			status string
			symbol sql.NullString
			pct    sql.NullFloat64
			price  sql.NullFloat64
		)
		if err := rows.Scan(&m.Day, &status, &symbol, &pct, &price, &m.IngestedAt); err != nil {
			return nil, fmt.Errorf("scan daily mover: %w", err)
		}
		m.Status = models.Status(status)
		if symbol.Valid {
			m.Symbol = symbol.String
		}
		if pct.Valid {
			m.PercentChange = pct.Float64
		}
		if price.Valid {
			m.ClosingPrice = price.Float64
		}
		movers = append(movers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movers range: %w", err)
	}

	return movers, nil
}

// Sentinel days persist NULLs so "market closed" is never readable as a 0%
// mover on an empty-string symbol.

func nullSymbol(m models.DailyMover) interface{} {
	if !m.Recorded() {
		return nil
	}
	return m.Symbol
}

func nullPct(m models.DailyMover) interface{} {
	if !m.Recorded() {
		return nil
	}
	return m.PercentChange
}

func nullPrice(m models.DailyMover) interface{} {
	if !m.Recorded() {
		return nil
	}
	return m.ClosingPrice
}
