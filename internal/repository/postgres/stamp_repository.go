package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type stampRepository struct {
	db *sqlx.DB
}

func NewStampRepository(db *sqlx.DB) repository.StampRepository {
	return &stampRepository{db: db}
}

func (r *stampRepository) CreateUnique(ctx context.Context, stamp *domain.Stamp, window time.Duration) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Check-then-insert inside one transaction; the FOR UPDATE lock on
	// the user row serializes concurrent check-ins by the same user so
	// two near-simultaneous attempts cannot both pass the window guard.
	if _, err := tx.ExecContext(ctx, `SELECT 1 FROM users WHERE id = $1 FOR UPDATE`, stamp.UserID); err != nil {
		return err
	}

	var count int
	dupQuery := `
		SELECT COUNT(*) FROM stamps
		WHERE user_id = $1 AND place_id = $2 AND created_at > $3
	`
	cutoff := stamp.CreatedAt.Add(-window)
	if err := tx.GetContext(ctx, &count, dupQuery, stamp.UserID, stamp.PlaceID, cutoff); err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDuplicateCheckIn
	}

	insert := `
		INSERT INTO stamps (id, user_id, place_id, place_name, place_address, category, latitude, longitude, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := tx.ExecContext(ctx, insert,
		stamp.ID, stamp.UserID, stamp.PlaceID, stamp.PlaceName, stamp.PlaceAddress,
		string(stamp.Category), stamp.Latitude, stamp.Longitude, stamp.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert stamp: %w", err)
	}

	return tx.Commit()
}

func (r *stampRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Stamp, error) {
	var stamps []*domain.Stamp
	query := `SELECT * FROM stamps WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &stamps, query, userID)
	return stamps, err
}

func (r *stampRepository) GetByUsers(ctx context.Context, userIDs []string) ([]*domain.Stamp, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var stamps []*domain.Stamp
	query := `SELECT * FROM stamps WHERE user_id = ANY($1) ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &stamps, query, pq.Array(userIDs))
	return stamps, err
}

func (r *stampRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM stamps WHERE user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *stampRepository) CategoryStats(ctx context.Context, userID string) (map[domain.ProfileKey]int, error) {
	rows := []struct {
		Category string `db:"category"`
		Count    int    `db:"count"`
	}{}
	query := `SELECT category, COUNT(*) AS count FROM stamps WHERE user_id = $1 GROUP BY category`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}
	stats := make(map[domain.ProfileKey]int, len(rows))
	for _, row := range rows {
		stats[domain.ProfileKey(row.Category)] = row.Count
	}
	return stats, nil
}
