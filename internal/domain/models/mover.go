package models

import "time"

// Status classifies a daily mover record.
type Status string

const (
	// StatusRecorded means a top mover was selected for the day.
	StatusRecorded Status = "recorded"
	// StatusMarketClosed means every ticker uniformly reported no data,
	// interpreted as a market holiday or weekend.
	StatusMarketClosed Status = "market-closed"
	// StatusNoData means no ticker produced usable data but at least one fetch
	// failed outright, so the day is ambiguous rather than a known holiday.
	StatusNoData Status = "no-data"
)

// Selection is the outcome of picking a top mover from one run's observations.
// Winner is meaningful only when Status is StatusRecorded.
type Selection struct {
	Status Status
	Winner TickerObservation
}

// DailyMover is the single persistent record for one calendar day.
//
// Invariant: a record is either fully populated (StatusRecorded with Symbol,
// PercentChange and ClosingPrice set) or a sentinel (StatusMarketClosed or
// StatusNoData with those fields zero). The day is the storage key; re-running
// ingestion for a day replaces, never duplicates, its record.
type DailyMover struct {
	Day           time.Time // date-only, UTC
	Status        Status
	Symbol        string
	PercentChange float64
	ClosingPrice  float64
	IngestedAt    time.Time
}

// Recorded reports whether the record carries an actual mover.
func (m DailyMover) Recorded() bool { return m.Status == StatusRecorded }
