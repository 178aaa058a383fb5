package repository

import (
	"context"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
)

type GoodDeedRepository interface {
	Create(ctx context.Context, deed *domain.GoodDeed) error
	// Assign moves a pending token to assigned and records the
	// restaurant. Assigning twice or assigning a used token fails.
	Assign(ctx context.Context, id, restaurantID, restaurantName string, at time.Time) error
	GetByUser(ctx context.Context, userID string) ([]*domain.GoodDeed, error)
	GetByRestaurant(ctx context.Context, restaurantID string) ([]*domain.GoodDeed, error)
}
