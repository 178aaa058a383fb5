package repository

import (
	"context"

	"github.com/auramap/auramap-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error)
	// MarkRead flips the read flag; the transition is one-way. The
	// update is scoped to the recipient so nobody can read someone
	// else's notification by id.
	MarkRead(ctx context.Context, recipientID, id string) error
}
