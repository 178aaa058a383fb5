package social

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

type SocialUseCase struct {
	userRepo   repository.UserRepository
	memoryRepo repository.MemoryRepository
	emitter    *notification.Emitter
	now        func() time.Time
}

func NewSocialUseCase(
	userRepo repository.UserRepository,
	memoryRepo repository.MemoryRepository,
	emitter *notification.Emitter,
) *SocialUseCase {
	return &SocialUseCase{
		userRepo:   userRepo,
		memoryRepo: memoryRepo,
		emitter:    emitter,
		now:        time.Now,
	}
}

// Follow adds the edge and notifies the followee. Following someone
// already followed is a no-op, not an error.
func (uc *SocialUseCase) Follow(ctx context.Context, follower *domain.User, followeeID string) error {
	if follower.ID == followeeID {
		return fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidInput)
	}
	if _, err := uc.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	if err := uc.userRepo.Follow(ctx, follower.ID, followeeID); err != nil {
		return err
	}
	uc.emitter.Emit(ctx, &domain.Notification{
		RecipientID:    followeeID,
		Type:           domain.NotificationFollow,
		SenderID:       follower.ID,
		SenderUsername: follower.Username,
		Message:        fmt.Sprintf("%s seni takip etmeye başladı!", follower.Username),
	})
	return nil
}

func (uc *SocialUseCase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return uc.userRepo.Unfollow(ctx, followerID, followeeID)
}

// Followers resolves the follower edge list to user records.
func (uc *SocialUseCase) Followers(ctx context.Context, userID string) ([]*domain.User, error) {
	ids, err := uc.userRepo.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.resolveUsers(ctx, ids)
}

// Following resolves the following edge list to user records.
func (uc *SocialUseCase) Following(ctx context.Context, userID string) ([]*domain.User, error) {
	ids, err := uc.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.resolveUsers(ctx, ids)
}

func (uc *SocialUseCase) resolveUsers(ctx context.Context, ids []string) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			// An edge pointing at a deleted user is skipped, not fatal.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// SearchUsers finds users by username or email substring.
func (uc *SocialUseCase) SearchUsers(ctx context.Context, query string) ([]*domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*domain.User{}, nil
	}
	return uc.userRepo.Search(ctx, query)
}

// GetUser returns a user's public profile.
func (uc *SocialUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type CreateMemoryRequest struct {
	PlaceName string  `json:"place_name" binding:"required"`
	Note      string  `json:"note"`
	Photo     *string `json:"photo"`
}

// CreateMemory posts a new memory for the author.
func (uc *SocialUseCase) CreateMemory(ctx context.Context, author *domain.User, req *CreateMemoryRequest) (*domain.Memory, error) {
	memory := &domain.Memory{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		Username:  author.Username,
		PlaceName: req.PlaceName,
		Note:      req.Note,
		Photo:     req.Photo,
		Likes:     []string{},
		Comments:  []domain.Comment{},
		CreatedAt: uc.now(),
	}
	if err := uc.memoryRepo.Create(ctx, memory); err != nil {
		return nil, err
	}
	return memory, nil
}

// Feed returns the memories of the user and everyone they follow,
// newest first.
func (uc *SocialUseCase) Feed(ctx context.Context, userID string) ([]*domain.Memory, error) {
	following, err := uc.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	authors := append([]string{userID}, following...)

	memories, err := uc.memoryRepo.GetByAuthors(ctx, authors)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(memories, func(i, j int) bool {
		return memories[i].CreatedAt.After(memories[j].CreatedAt)
	})
	return memories, nil
}

// LikeMemory adds the user to the likes set and notifies the author.
// Re-liking is a no-op.
func (uc *SocialUseCase) LikeMemory(ctx context.Context, liker *domain.User, memoryID string) error {
	memory, err := uc.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return err
	}
	alreadyLiked := memory.LikedBy(liker.ID)

	if err := uc.memoryRepo.Like(ctx, memoryID, liker.ID); err != nil {
		return err
	}

	if !alreadyLiked && memory.UserID != liker.ID {
		uc.emitter.Emit(ctx, &domain.Notification{
			RecipientID:    memory.UserID,
			Type:           domain.NotificationLike,
			SenderID:       liker.ID,
			SenderUsername: liker.Username,
			Message:        fmt.Sprintf("%s anını beğendi", liker.Username),
			MemoryID:       &memory.ID,
		})
	}
	return nil
}

// UnlikeMemory removes the user from the likes set. Unliking something
// never liked is a no-op.
func (uc *SocialUseCase) UnlikeMemory(ctx context.Context, userID, memoryID string) error {
	return uc.memoryRepo.Unlike(ctx, memoryID, userID)
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment appends a comment and notifies the memory's author.
func (uc *SocialUseCase) AddComment(ctx context.Context, commenter *domain.User, memoryID string, req *CommentRequest) (*domain.Comment, error) {
	memory, err := uc.memoryRepo.GetByID(ctx, memoryID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		MemoryID:  memoryID,
		UserID:    commenter.ID,
		Username:  commenter.Username,
		Text:      req.Text,
		CreatedAt: uc.now(),
	}
	if err := uc.memoryRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	if memory.UserID != commenter.ID {
		uc.emitter.Emit(ctx, &domain.Notification{
			RecipientID:    memory.UserID,
			Type:           domain.NotificationComment,
			SenderID:       commenter.ID,
			SenderUsername: commenter.Username,
			Message:        fmt.Sprintf("%s anına yorum yaptı", commenter.Username),
			MemoryID:       &memory.ID,
		})
	}
	return comment, nil
}
