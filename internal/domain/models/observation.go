package models

// Outcome classifies the result of fetching one ticker's daily data.
//
// The market data client never returns a transport error to its caller; every
// failure mode is folded into this field so one ticker's failure cannot abort
// the rest of the watchlist.
type Outcome string

const (
	// OutcomeOK means the provider returned a usable daily bar.
	OutcomeOK Outcome = "ok"
	// OutcomeFailed means the request errored (timeout, rate limit exhausted,
	// malformed response). Logged by the client, excluded from selection.
	OutcomeFailed Outcome = "failed"
	// OutcomeNoData means the provider answered but had no bar for the day.
	// This is the provider's canonical signal for a non-trading day.
	OutcomeNoData Outcome = "no-data"
)

// TickerObservation is one watchlist symbol's daily price-change result.
// It lives only for the duration of a single ingestion run and is never
// persisted individually.
type TickerObservation struct {
	Symbol        string
	PercentChange float64 // signed, open-to-close
	ClosingPrice  float64
	Outcome       Outcome
}
