package notification

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
)

// Emitter creates and reads notifications. Emission is best-effort for
// every caller: a failed write is logged, never propagated, so a social
// action does not fail because its notification did.
type Emitter struct {
	repo repository.NotificationRepository
	now  func() time.Time
}

func NewEmitter(repo repository.NotificationRepository) *Emitter {
	return &Emitter{repo: repo, now: time.Now}
}

// Emit persists the notification, filling id, timestamp and read state.
// Errors are swallowed after logging.
func (e *Emitter) Emit(ctx context.Context, n *domain.Notification) {
	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = e.now()
	if err := e.repo.Create(ctx, n); err != nil {
		log.Printf("[notification] emit %s to %s failed: %v", n.Type, n.RecipientID, err)
	}
}

// Broadcast emits the same notification to every recipient. Individual
// failures are logged and skipped; the remaining recipients still get
// theirs.
func (e *Emitter) Broadcast(ctx context.Context, recipientIDs []string, template domain.Notification) {
	for _, id := range recipientIDs {
		n := template
		n.RecipientID = id
		e.Emit(ctx, &n)
	}
}

// List returns the recipient's notifications, newest first.
func (e *Emitter) List(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	return e.repo.GetByRecipient(ctx, recipientID)
}

// MarkRead flips the read flag of the recipient's own notification.
func (e *Emitter) MarkRead(ctx context.Context, recipientID, id string) error {
	return e.repo.MarkRead(ctx, recipientID, id)
}
