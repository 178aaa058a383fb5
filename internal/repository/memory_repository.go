package repository

import (
	"context"

	"github.com/auramap/auramap-backend/internal/domain"
)

type MemoryRepository interface {
	Create(ctx context.Context, memory *domain.Memory) error
	GetByID(ctx context.Context, id string) (*domain.Memory, error)
	// GetByAuthors returns all memories authored by the given users,
	// newest first, with likes and comments populated.
	GetByAuthors(ctx context.Context, userIDs []string) ([]*domain.Memory, error)

	Like(ctx context.Context, memoryID, userID string) error
	Unlike(ctx context.Context, memoryID, userID string) error
	AddComment(ctx context.Context, comment *domain.Comment) error
}
