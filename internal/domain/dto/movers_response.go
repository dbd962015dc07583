package dto

import (
	"time"

	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
)

// MoverDTO is the wire shape of one daily mover record.
//
// The frontend matches fields by name, so this schema must stay stable.
// Symbol, percentChange and closingPrice are null for sentinel days
// (market-closed / no-data).
//
// swagger:model MoverDTO
type MoverDTO struct {
	Date          string    `json:"date" example:"2025-06-10"`
	Symbol        *string   `json:"symbol" example:"NVDA"`
	PercentChange *float64  `json:"percentChange" example:"-8.4321"`
	ClosingPrice  *float64  `json:"closingPrice" example:"118.52"`
	Status        string    `json:"status" example:"recorded"`
	IngestedAt    time.Time `json:"ingestedAt"`
}

// MoversResponse is the JSON envelope returned by GET /api/v1/movers.
//
// swagger:model MoversResponse
type MoversResponse struct {
	Movers []MoverDTO `json:"movers"`
	Count  int        `json:"count" example:"7"`
}

// NewMoverDTO maps a domain record to its API shape. Sentinel records get
// null symbol/percentChange/closingPrice rather than zero values, so the
// frontend can tell "market closed" from "0% mover".
func NewMoverDTO(m models.DailyMover) MoverDTO {
	d := MoverDTO{
		Date:       m.Day.Format("2006-01-02"),
		Status:     string(m.Status),
		IngestedAt: m.IngestedAt,
	}
	if m.Recorded() {
		sym := m.Symbol
		pct := m.PercentChange
		price := m.ClosingPrice
		d.Symbol = &sym
		d.PercentChange = &pct
		d.ClosingPrice = &price
	}
	return d
}

// NewMoversResponse maps an ordered record slice into the response envelope.
// An empty input yields an empty (non-nil) movers array.
func NewMoversResponse(movers []models.DailyMover) MoversResponse {
	out := make([]MoverDTO, 0, len(movers))
	for _, m := range movers {
		out = append(out, NewMoverDTO(m))
	}
	return MoversResponse{Movers: out, Count: len(out)}
}
