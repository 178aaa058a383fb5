package passport

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/random"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

// goodDeedChance is the award probability on an ordinary check-in.
// Arriving through a friend's stamp awards unconditionally.
const goodDeedChance = 0.2

// partnerRestaurants are the good-deed assignment targets. A fixed
// partner list for now; a restaurants table can replace it later.
var partnerRestaurants = []domain.Restaurant{
	{ID: "rest1", Name: "Simit Sarayı"},
	{ID: "rest2", Name: "Kahve Dünyası"},
	{ID: "rest3", Name: "Mado"},
	{ID: "rest4", Name: "Sütis"},
	{ID: "rest5", Name: "Big Chefs"},
}

type PassportUseCase struct {
	stampRepo    repository.StampRepository
	userRepo     repository.UserRepository
	goodDeedRepo repository.GoodDeedRepository
	emitter      *notification.Emitter
	rng          random.Source
	now          func() time.Time
}

func NewPassportUseCase(
	stampRepo repository.StampRepository,
	userRepo repository.UserRepository,
	goodDeedRepo repository.GoodDeedRepository,
	emitter *notification.Emitter,
	rng random.Source,
) *PassportUseCase {
	return &PassportUseCase{
		stampRepo:    stampRepo,
		userRepo:     userRepo,
		goodDeedRepo: goodDeedRepo,
		emitter:      emitter,
		rng:          rng,
		now:          time.Now,
	}
}

type CheckInRequest struct {
	PlaceID         string            `json:"place_id" binding:"required"`
	PlaceName       string            `json:"place_name" binding:"required"`
	PlaceAddress    string            `json:"place_address"`
	Category        domain.ProfileKey `json:"category" binding:"required,profilekey"`
	Latitude        float64           `json:"latitude"`
	Longitude       float64           `json:"longitude"`
	FromFriendStamp bool              `json:"from_friend_stamp"`
}

type CheckInResponse struct {
	Stamp       *domain.Stamp    `json:"stamp"`
	TotalStamps int              `json:"total_stamps"`
	GoodDeed    *domain.GoodDeed `json:"good_deed,omitempty"`
}

// CheckIn writes the stamp, bumps the visit counter, notifies followers
// and rolls for a good-deed token. A duplicate inside the 24-hour window
// rejects the whole operation; everything after the stamp insert is
// best-effort.
func (uc *PassportUseCase) CheckIn(ctx context.Context, user *domain.User, req *CheckInRequest) (*CheckInResponse, error) {
	stamp := &domain.Stamp{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		PlaceID:      req.PlaceID,
		PlaceName:    req.PlaceName,
		PlaceAddress: req.PlaceAddress,
		Category:     req.Category,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CreatedAt:    uc.now(),
	}

	if err := uc.stampRepo.CreateUnique(ctx, stamp, domain.CheckInWindow); err != nil {
		return nil, err
	}

	if err := uc.userRepo.IncrementTotalVisits(ctx, user.ID); err != nil {
		log.Printf("[passport] visit counter bump failed for %s: %v", user.ID, err)
	}

	uc.notifyFollowers(ctx, user, stamp)

	total, err := uc.stampRepo.CountByUser(ctx, user.ID)
	if err != nil {
		log.Printf("[passport] stamp count failed for %s: %v", user.ID, err)
	}

	resp := &CheckInResponse{Stamp: stamp, TotalStamps: total}

	if req.FromFriendStamp || uc.rng.Float64() < goodDeedChance {
		deed, err := uc.awardGoodDeed(ctx, user, stamp)
		if err != nil {
			log.Printf("[passport] good deed award failed for %s: %v", user.ID, err)
		} else {
			resp.GoodDeed = deed
		}
	}

	return resp, nil
}

func (uc *PassportUseCase) notifyFollowers(ctx context.Context, user *domain.User, stamp *domain.Stamp) {
	followers, err := uc.userRepo.GetFollowers(ctx, user.ID)
	if err != nil {
		log.Printf("[passport] follower lookup failed for %s: %v", user.ID, err)
		return
	}
	name := domain.StampName(stamp.Category)
	emoji := domain.StampEmoji(stamp.Category)
	uc.emitter.Broadcast(ctx, followers, domain.Notification{
		Type:           domain.NotificationStamp,
		SenderID:       user.ID,
		SenderUsername: user.Username,
		Message:        fmt.Sprintf("%s %q pulunu kazandı!", user.Username, name),
		PlaceID:        &stamp.PlaceID,
		PlaceName:      &stamp.PlaceName,
		StampCategory:  &name,
		StampEmoji:     &emoji,
	})
}

// awardGoodDeed creates the token, assigns it to a random partner
// restaurant and announces it to every user.
func (uc *PassportUseCase) awardGoodDeed(ctx context.Context, user *domain.User, stamp *domain.Stamp) (*domain.GoodDeed, error) {
	deed := &domain.GoodDeed{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		Username:         user.Username,
		TriggerPlaceID:   stamp.PlaceID,
		TriggerPlaceName: stamp.PlaceName,
		Status:           domain.GoodDeedPending,
		CreatedAt:        uc.now(),
	}
	if err := uc.goodDeedRepo.Create(ctx, deed); err != nil {
		return nil, err
	}

	restaurant := partnerRestaurants[uc.rng.Intn(len(partnerRestaurants))]
	assignedAt := uc.now()
	if err := uc.goodDeedRepo.Assign(ctx, deed.ID, restaurant.ID, restaurant.Name, assignedAt); err != nil {
		return nil, err
	}
	deed.Status = domain.GoodDeedAssigned
	deed.AssignedRestaurantID = &restaurant.ID
	deed.AssignedRestaurantName = &restaurant.Name
	deed.AssignedAt = &assignedAt

	uc.broadcastGoodDeed(ctx, user, deed, restaurant)
	return deed, nil
}

func (uc *PassportUseCase) broadcastGoodDeed(ctx context.Context, donor *domain.User, deed *domain.GoodDeed, restaurant domain.Restaurant) {
	users, err := uc.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("[passport] good deed broadcast aborted, user listing failed: %v", err)
		return
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	uc.emitter.Broadcast(ctx, ids, domain.Notification{
		Type:           domain.NotificationGoodDeed,
		SenderID:       domain.SystemSenderID,
		SenderUsername: "AuraMap",
		Message:        fmt.Sprintf("🎁 %s restoranında askıda yemek var! %s bir iyilik yaptı.", restaurant.Name, donor.Username),
		RestaurantID:   &restaurant.ID,
		RestaurantName: &restaurant.Name,
		GoodDeedID:     &deed.ID,
	})
}

// GetStamps returns the user's passport, newest first.
func (uc *PassportUseCase) GetStamps(ctx context.Context, userID string) ([]*domain.Stamp, error) {
	return uc.stampRepo.GetByUser(ctx, userID)
}

// FriendStamp pairs a stamp with the friend who earned it.
type FriendStamp struct {
	Stamp    *domain.Stamp `json:"stamp"`
	Username string        `json:"username"`
}

// GetFriendStamps returns the recent stamps of everyone the user
// follows, newest first, so the map can surface "your friend was here".
func (uc *PassportUseCase) GetFriendStamps(ctx context.Context, userID string) ([]FriendStamp, error) {
	following, err := uc.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(following) == 0 {
		return []FriendStamp{}, nil
	}

	stamps, err := uc.stampRepo.GetByUsers(ctx, following)
	if err != nil {
		return nil, err
	}

	usernames := make(map[string]string, len(following))
	for _, id := range following {
		friend, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			log.Printf("[passport] friend lookup failed for %s: %v", id, err)
			continue
		}
		usernames[id] = friend.Username
	}

	out := make([]FriendStamp, 0, len(stamps))
	for _, s := range stamps {
		out = append(out, FriendStamp{Stamp: s, Username: usernames[s.UserID]})
	}
	return out, nil
}

// Summary aggregates the passport for the profile screen.
type Summary struct {
	TotalStamps   int                       `json:"total_stamps"`
	CategoryStats map[domain.ProfileKey]int `json:"category_stats"`
}

func (uc *PassportUseCase) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	total, err := uc.stampRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := uc.stampRepo.CategoryStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{TotalStamps: total, CategoryStats: stats}, nil
}

// GetGoodDeeds lists the tokens the user has earned.
func (uc *PassportUseCase) GetGoodDeeds(ctx context.Context, userID string) ([]*domain.GoodDeed, error) {
	return uc.goodDeedRepo.GetByUser(ctx, userID)
}

// GetRestaurantGoodDeeds lists the tokens waiting at a restaurant.
func (uc *PassportUseCase) GetRestaurantGoodDeeds(ctx context.Context, restaurantID string) ([]*domain.GoodDeed, error) {
	return uc.goodDeedRepo.GetByRestaurant(ctx, restaurantID)
}
