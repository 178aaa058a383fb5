package postgres

import (
	"context"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type goodDeedRepository struct {
	db *sqlx.DB
}

func NewGoodDeedRepository(db *sqlx.DB) repository.GoodDeedRepository {
	return &goodDeedRepository{db: db}
}

func (r *goodDeedRepository) Create(ctx context.Context, deed *domain.GoodDeed) error {
	query := `
		INSERT INTO good_deeds (id, user_id, username, trigger_place_id, trigger_place_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		deed.ID, deed.UserID, deed.Username, deed.TriggerPlaceID, deed.TriggerPlaceName,
		string(deed.Status), deed.CreatedAt,
	)
	return err
}

func (r *goodDeedRepository) Assign(ctx context.Context, id, restaurantID, restaurantName string, at time.Time) error {
	// Status moves forward only; the WHERE clause makes a repeat
	// assignment or an assignment of a used token a miss.
	query := `
		UPDATE good_deeds
		SET status = 'assigned', assigned_restaurant_id = $1, assigned_restaurant_name = $2, assigned_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, restaurantID, restaurantName, at, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrGoodDeedNotFound
	}
	return nil
}

func (r *goodDeedRepository) GetByUser(ctx context.Context, userID string) ([]*domain.GoodDeed, error) {
	var deeds []*domain.GoodDeed
	query := `SELECT * FROM good_deeds WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &deeds, query, userID)
	return deeds, err
}

func (r *goodDeedRepository) GetByRestaurant(ctx context.Context, restaurantID string) ([]*domain.GoodDeed, error) {
	var deeds []*domain.GoodDeed
	query := `
		SELECT * FROM good_deeds
		WHERE assigned_restaurant_id = $1 AND status = 'assigned'
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &deeds, query, restaurantID)
	return deeds, err
}
