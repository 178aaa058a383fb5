package repository

import (
	"context"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
)

type StampRepository interface {
	// CreateUnique appends the stamp unless one already exists for the
	// same (user, place) pair inside the window. The existence check and
	// the insert run in one transaction so concurrent check-ins cannot
	// both pass the guard; returns domain.ErrDuplicateCheckIn on a hit.
	CreateUnique(ctx context.Context, stamp *domain.Stamp, window time.Duration) error

	GetByUser(ctx context.Context, userID string) ([]*domain.Stamp, error)
	GetByUsers(ctx context.Context, userIDs []string) ([]*domain.Stamp, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	CategoryStats(ctx context.Context, userID string) (map[domain.ProfileKey]int, error)
}
