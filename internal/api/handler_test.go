package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evangerty1/stocks-pipeline/internal/domain/dto"
	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
	"github.com/evangerty1/stocks-pipeline/internal/service"
)

type mockMoversService struct {
	resp []models.DailyMover
	err  error
}

func (m *mockMoversService) GetRecentMovers(_ context.Context) ([]models.DailyMover, error) {
	return m.resp, m.err
}

var _ service.MoversService = (*mockMoversService)(nil)

func setupRouterWithMock(s service.MoversService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/movers", h.GetMovers)
	return r
}

func TestGetMovers_TableDriven(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name   string
		svc    *mockMoversService
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name: "records with a gap come back ordered and unsynthesized",
			svc: &mockMoversService{resp: []models.DailyMover{
				{Day: day(5), Status: models.StatusRecorded, Symbol: "TSLA", PercentChange: 4.2, ClosingPrice: 301.5},
				{Day: day(8), Status: models.StatusMarketClosed},
				{Day: day(10), Status: models.StatusRecorded, Symbol: "NVDA", PercentChange: -8.4, ClosingPrice: 118.52},
			}},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.MoversResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Count != 3 || len(out.Movers) != 3 {
					t.Fatalf("unexpected count: %+v", out)
				}
				// no entries invented for the missing days
				if out.Movers[0].Date != "2025-06-05" || out.Movers[1].Date != "2025-06-08" || out.Movers[2].Date != "2025-06-10" {
					t.Fatalf("unexpected dates: %+v", out.Movers)
				}
				if out.Movers[1].Status != "market-closed" || out.Movers[1].Symbol != nil {
					t.Fatalf("sentinel row leaked fields: %+v", out.Movers[1])
				}
				if out.Movers[2].Symbol == nil || *out.Movers[2].Symbol != "NVDA" {
					t.Fatalf("recorded row missing symbol: %+v", out.Movers[2])
				}
				if out.Movers[2].PercentChange == nil || *out.Movers[2].PercentChange != -8.4 {
					t.Fatalf("sign not preserved: %+v", out.Movers[2])
				}
			},
		},
		{
			name:   "empty history is 200 with empty list",
			svc:    &mockMoversService{resp: []models.DailyMover{}},
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.MoversResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Count != 0 || out.Movers == nil {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "store failure is an explicit 500",
			svc:    &mockMoversService{err: errors.New("db down")},
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/movers", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
