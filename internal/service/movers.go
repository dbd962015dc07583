package service

import (
	"context"
	"time"

	"github.com/evangerty1/stocks-pipeline/internal/domain/models"
	"github.com/evangerty1/stocks-pipeline/internal/storage"
)

// recentWindowDays is the fixed trailing window served by the query path,
// inclusive of today.
const recentWindowDays = 7

// MoversService defines the read side of the pipeline.
type MoversService interface {
	GetRecentMovers(ctx context.Context) ([]models.DailyMover, error)
}

type moversService struct {
	repo storage.MoversRepository
	now  func() time.Time // indirection for tests
}

func NewMoversService(repo storage.MoversRepository) MoversService {
	return &moversService{repo: repo, now: time.Now}
}

// GetRecentMovers returns the records of the trailing 7 calendar days ordered
// by date ascending. Days never ingested simply do not appear; the store's
// sentinel records keep "market closed" distinguishable from such gaps.
func (s *moversService) GetRecentMovers(ctx context.Context) ([]models.DailyMover, error) {
	to := truncateToDate(s.now().UTC())
	from := to.AddDate(0, 0, -(recentWindowDays - 1))
	return s.repo.GetMoversRange(from, to)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
