// Package selector picks the day's top mover from a run's observations.
package selector

import (
	"math"

	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
)

// TopMover returns the day's selection from one observation per attempted
// symbol, in watchlist order.
//
// Rules:
//   - The winner is the ok observation with the largest absolute percent
//     change; its sign is preserved in the result.
//   - Ties on magnitude go to the earlier observation, so the outcome is
//     deterministic given a stable watchlist ordering.
//   - No ok observations and every observation no-data: the market was closed.
//   - No ok observations otherwise (at least one failed, or no observations at
//     all): no reliable signal for the day; a mover is never fabricated.
//
// Pure function of its input, no side effects.
func TopMover(observations []models.TickerObservation) models.Selection {
	best := -1
	allNoData := len(observations) > 0

	for i, obs := range observations {
		if obs.Outcome != models.OutcomeNoData {
			allNoData = false
		}
		if obs.Outcome != models.OutcomeOK {
			continue
		}
		// strictly greater keeps the first of a tie
		if best < 0 || math.Abs(obs.PercentChange) > math.Abs(observations[best].PercentChange) {
			best = i
		}
	}

	if best >= 0 {
		return models.Selection{Status: models.StatusRecorded, Winner: observations[best]}
	}
	if allNoData {
		return models.Selection{Status: models.StatusMarketClosed}
	}
	return models.Selection{Status: models.StatusNoData}
}
