package repository

import (
	"context"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
)

type DiceGameRepository interface {
	// CreateUnique inserts the game unless one already exists between
	// the same unordered player pair on the same calendar day. Scan and
	// insert run in one transaction; returns domain.ErrDuplicateInvite
	// on a hit. day is the YYYY-MM-DD key of the invite.
	CreateUnique(ctx context.Context, game *domain.DiceGame, day string) error

	GetByID(ctx context.Context, id string) (*domain.DiceGame, error)
	MarkAccepted(ctx context.Context, id string, at time.Time) error
	MarkRolled(ctx context.Context, id string, result int, category, emoji string, place *domain.Place, at time.Time) error
	// GetTodayByUser returns the games dated day where the user is a player.
	GetTodayByUser(ctx context.Context, userID, day string) ([]*domain.DiceGame, error)
}
