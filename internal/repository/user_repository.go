package repository

import (
	"context"

	"github.com/auramap/auramap-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	// Search matches the query as a case-insensitive substring of
	// username or email.
	Search(ctx context.Context, query string) ([]*domain.User, error)

	UpdateSurvey(ctx context.Context, userID string, answers domain.SurveyAnswers, key domain.ProfileKey, label string, breakdown domain.ScoreBreakdown) error
	ResetSurvey(ctx context.Context, userID string) error
	UpdateProfilePicture(ctx context.Context, userID string, url string) error
	IncrementTotalVisits(ctx context.Context, userID string) error

	// Follow and Unfollow maintain the follow edge for both directions
	// as a single row, so the follower/following symmetry cannot be
	// observed half-applied.
	Follow(ctx context.Context, followerID, followeeID string) error
	Unfollow(ctx context.Context, followerID, followeeID string) error
	GetFollowers(ctx context.Context, userID string) ([]string, error)
	GetFollowing(ctx context.Context, userID string) ([]string, error)
}
