package history

import (
	"context"
	"time"

	"aleoresto/internal/modules/restaurant"
)

var _ restaurant.PickRecorder = (*Service)(nil)

type Repository interface {
	Insert(ctx context.Context, p Pick) error
	Recent(ctx context.Context, limit int) ([]Pick, error)
}

// Service records served picks and lists recent ones. It satisfies
// restaurant.PickRecorder.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) RecordPick(ctx context.Context, req restaurant.Request, p restaurant.Payload) error {
	mode := req.TransportMode
	if mode == "" {
		mode = restaurant.ModeWalking
	}
	return s.repo.Insert(ctx, Pick{
		PlaceID:       p.Restaurant.PlaceID,
		Name:          p.Restaurant.Name,
		Address:       p.Restaurant.Address,
		TransportMode: string(mode),
		DistanceText:  p.Itinerary.DistanceText,
		DurationText:  p.Itinerary.DurationText,
		PickedAt:      s.now().UTC(),
	})
}

// Recent clamps limit to [1, MaxRecentLimit]; zero or negative means the default.
func (s *Service) Recent(ctx context.Context, limit int) ([]Pick, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}
