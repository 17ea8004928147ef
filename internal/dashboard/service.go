package dashboard

import (
	"context"
	"time"
)

// Service assembles the dashboard KPI snapshot.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new dashboard Service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, err
	}

	total, completed, err := s.repo.BookingCounts(ctx)
	if err != nil {
		return nil, err
	}

	occ, err := s.repo.Occupancy(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	act, err := s.repo.DailyActivity(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	statuses, err := s.repo.RoomStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalRevenue:           revenue,
		TotalBookings:          total,
		TotalCompletedBookings: completed,
		CurrentOccupancy:       occ,
		DailyActivity:          act,
		RoomStatus:             statuses,
	}, nil
}
