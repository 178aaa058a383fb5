package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, answers, score_breakdown)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, strings.ToLower(user.Email), user.PasswordHash,
		user.Answers, user.ScoreBreakdown,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if strings.Contains(pqErr.Constraint, "email") {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	query := `SELECT * FROM users ORDER BY created_at`
	err := r.db.SelectContext(ctx, &users, query)
	return users, err
}

func (r *userRepository) Search(ctx context.Context, query string) ([]*domain.User, error) {
	var users []*domain.User
	pattern := "%" + strings.ToLower(query) + "%"
	sqlQuery := `
		SELECT * FROM users
		WHERE LOWER(username) LIKE $1 OR LOWER(email) LIKE $1
		ORDER BY username
	`
	err := r.db.SelectContext(ctx, &users, sqlQuery, pattern)
	return users, err
}

func (r *userRepository) UpdateSurvey(ctx context.Context, userID string, answers domain.SurveyAnswers, key domain.ProfileKey, label string, breakdown domain.ScoreBreakdown) error {
	query := `
		UPDATE users
		SET answers = $1, profile_key = $2, profile_type = $3, score_breakdown = $4
		WHERE id = $5
	`
	return r.execExpectingRow(ctx, query, answers, string(key), label, breakdown, userID)
}

func (r *userRepository) ResetSurvey(ctx context.Context, userID string) error {
	// Identity fields and visit counters survive a reset; only the
	// survey-derived state clears.
	query := `
		UPDATE users
		SET answers = '{}', profile_key = NULL, profile_type = NULL, score_breakdown = '{}'
		WHERE id = $1
	`
	return r.execExpectingRow(ctx, query, userID)
}

func (r *userRepository) UpdateProfilePicture(ctx context.Context, userID string, url string) error {
	query := `UPDATE users SET profile_picture = $1 WHERE id = $2`
	return r.execExpectingRow(ctx, query, url, userID)
}

func (r *userRepository) IncrementTotalVisits(ctx context.Context, userID string) error {
	query := `UPDATE users SET total_visits = total_visits + 1 WHERE id = $1`
	return r.execExpectingRow(ctx, query, userID)
}

func (r *userRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	// One row covers both directions of the edge, so the
	// followers/following symmetry cannot be half-applied.
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	return err
}

func (r *userRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`
	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	return err
}

func (r *userRepository) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	query := `SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *userRepository) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	query := `SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *userRepository) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
