package postgres

import (
	"context"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (
			id, recipient_id, type, sender_id, sender_username, message,
			place_id, place_name, stamp_category, stamp_emoji,
			restaurant_id, restaurant_name, good_deed_id, game_id, memory_id,
			read, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.RecipientID, string(n.Type), n.SenderID, n.SenderUsername, n.Message,
		n.PlaceID, n.PlaceName, n.StampCategory, n.StampEmoji,
		n.RestaurantID, n.RestaurantName, n.GoodDeedID, n.GameID, n.MemoryID,
		n.Read, n.CreatedAt,
	)
	return err
}

func (r *notificationRepository) GetByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	query := `SELECT * FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &notifications, query, recipientID)
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, recipientID, id string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND recipient_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
