package repository

import (
	"context"

	"github.com/auramap/auramap-backend/internal/domain"
)

// RouteCache stores the built daily route keyed by user and calendar
// day. A new day produces a new key, which is how the prior route
// invalidates lazily: nothing deletes yesterday's entry, it just stops
// being looked up.
type RouteCache interface {
	GetRoute(ctx context.Context, userID, day string) ([]domain.Place, bool, error)
	SetRoute(ctx context.Context, userID, day string, route []domain.Place) error

	GetPlaces(ctx context.Context, userID, day string) ([]domain.Place, bool, error)
	SetPlaces(ctx context.Context, userID, day string, places []domain.Place) error
}
