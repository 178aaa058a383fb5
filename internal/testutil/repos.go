// Package testutil provides in-memory repository implementations for
// usecase tests. They mirror the postgres implementations' observable
// behavior, including sort order and the duplicate guards.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
)

// UserRepo is an in-memory repository.UserRepository.
type UserRepo struct {
	mu      sync.Mutex
	Users   map[string]*domain.User
	follows map[string]map[string]bool // followerID -> followeeID set
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		Users:   make(map[string]*domain.User),
		follows: make(map[string]map[string]bool),
	}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	clone := *user
	r.Users[user.ID] = &clone
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.Users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.Users))
	for _, u := range r.Users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) Search(ctx context.Context, query string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	var out []*domain.User
	for _, u := range r.Users {
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Email), q) {
			clone := *u
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) UpdateSurvey(ctx context.Context, userID string, answers domain.SurveyAnswers, key domain.ProfileKey, label string, breakdown domain.ScoreBreakdown) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.Users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Answers = answers
	user.ProfileKey = &key
	user.ProfileType = &label
	user.ScoreBreakdown = breakdown
	return nil
}

func (r *UserRepo) ResetSurvey(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.Users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Answers = domain.SurveyAnswers{}
	user.ProfileKey = nil
	user.ProfileType = nil
	user.ScoreBreakdown = nil
	return nil
}

func (r *UserRepo) UpdateProfilePicture(ctx context.Context, userID string, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.Users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.ProfilePicture = &url
	return nil
}

func (r *UserRepo) IncrementTotalVisits(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.Users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.TotalVisits++
	return nil
}

func (r *UserRepo) Follow(ctx context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.follows[followerID] == nil {
		r.follows[followerID] = make(map[string]bool)
	}
	r.follows[followerID][followeeID] = true
	return nil
}

func (r *UserRepo) Unfollow(ctx context.Context, followerID, followeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.follows[followerID], followeeID)
	return nil
}

func (r *UserRepo) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for follower, set := range r.follows {
		if set[userID] {
			out = append(out, follower)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *UserRepo) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for followee := range r.follows[userID] {
		out = append(out, followee)
	}
	sort.Strings(out)
	return out, nil
}

// StampRepo is an in-memory repository.StampRepository.
type StampRepo struct {
	mu     sync.Mutex
	Stamps []*domain.Stamp
}

func NewStampRepo() *StampRepo {
	return &StampRepo{}
}

func (r *StampRepo) CreateUnique(ctx context.Context, stamp *domain.Stamp, window time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := stamp.CreatedAt.Add(-window)
	for _, s := range r.Stamps {
		if s.UserID == stamp.UserID && s.PlaceID == stamp.PlaceID && s.CreatedAt.After(cutoff) {
			return domain.ErrDuplicateCheckIn
		}
	}
	clone := *stamp
	r.Stamps = append(r.Stamps, &clone)
	return nil
}

func (r *StampRepo) GetByUser(ctx context.Context, userID string) ([]*domain.Stamp, error) {
	return r.GetByUsers(ctx, []string{userID})
}

func (r *StampRepo) GetByUsers(ctx context.Context, userIDs []string) ([]*domain.Stamp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []*domain.Stamp
	for _, s := range r.Stamps {
		if want[s.UserID] {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *StampRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, s := range r.Stamps {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *StampRepo) CategoryStats(ctx context.Context, userID string) (map[domain.ProfileKey]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := make(map[domain.ProfileKey]int)
	for _, s := range r.Stamps {
		if s.UserID == userID {
			stats[s.Category]++
		}
	}
	return stats, nil
}

// MemoryRepo is an in-memory repository.MemoryRepository.
type MemoryRepo struct {
	mu       sync.Mutex
	Memories map[string]*domain.Memory
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{Memories: make(map[string]*domain.Memory)}
}

func (r *MemoryRepo) Create(ctx context.Context, memory *domain.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *memory
	r.Memories[memory.ID] = &clone
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (*domain.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	memory, ok := r.Memories[id]
	if !ok {
		return nil, domain.ErrMemoryNotFound
	}
	clone := *memory
	return &clone, nil
}

func (r *MemoryRepo) GetByAuthors(ctx context.Context, userIDs []string) ([]*domain.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		want[id] = true
	}
	var out []*domain.Memory
	for _, m := range r.Memories {
		if want[m.UserID] {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepo) Like(ctx context.Context, memoryID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	memory, ok := r.Memories[memoryID]
	if !ok {
		return domain.ErrMemoryNotFound
	}
	if !memory.LikedBy(userID) {
		memory.Likes = append(memory.Likes, userID)
	}
	return nil
}

func (r *MemoryRepo) Unlike(ctx context.Context, memoryID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	memory, ok := r.Memories[memoryID]
	if !ok {
		return domain.ErrMemoryNotFound
	}
	kept := memory.Likes[:0]
	for _, id := range memory.Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	memory.Likes = kept
	return nil
}

func (r *MemoryRepo) AddComment(ctx context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	memory, ok := r.Memories[comment.MemoryID]
	if !ok {
		return domain.ErrMemoryNotFound
	}
	memory.Comments = append(memory.Comments, *comment)
	return nil
}

// NotificationRepo is an in-memory repository.NotificationRepository.
type NotificationRepo struct {
	mu            sync.Mutex
	Notifications []*domain.Notification
	// FailFor rejects creates for these recipient IDs, for exercising
	// best-effort emission.
	FailFor map[string]error
}

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{FailFor: make(map[string]error)}
}

func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.FailFor[n.RecipientID]; ok {
		return err
	}
	clone := *n
	r.Notifications = append(r.Notifications, &clone)
	return nil
}

func (r *NotificationRepo) GetByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.Notifications {
		if n.RecipientID == recipientID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, recipientID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.Notifications {
		if n.ID == id && n.RecipientID == recipientID {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// ByType returns the stored notifications of one type, oldest first.
func (r *NotificationRepo) ByType(t domain.NotificationType) []*domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.Notifications {
		if n.Type == t {
			out = append(out, n)
		}
	}
	return out
}

// GoodDeedRepo is an in-memory repository.GoodDeedRepository.
type GoodDeedRepo struct {
	mu    sync.Mutex
	Deeds map[string]*domain.GoodDeed
}

func NewGoodDeedRepo() *GoodDeedRepo {
	return &GoodDeedRepo{Deeds: make(map[string]*domain.GoodDeed)}
}

func (r *GoodDeedRepo) Create(ctx context.Context, deed *domain.GoodDeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *deed
	r.Deeds[deed.ID] = &clone
	return nil
}

func (r *GoodDeedRepo) Assign(ctx context.Context, id, restaurantID, restaurantName string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	deed, ok := r.Deeds[id]
	if !ok || deed.Status != domain.GoodDeedPending {
		return domain.ErrGoodDeedNotFound
	}
	deed.Status = domain.GoodDeedAssigned
	deed.AssignedRestaurantID = &restaurantID
	deed.AssignedRestaurantName = &restaurantName
	deed.AssignedAt = &at
	return nil
}

func (r *GoodDeedRepo) GetByUser(ctx context.Context, userID string) ([]*domain.GoodDeed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.GoodDeed
	for _, d := range r.Deeds {
		if d.UserID == userID {
			clone := *d
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *GoodDeedRepo) GetByRestaurant(ctx context.Context, restaurantID string) ([]*domain.GoodDeed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.GoodDeed
	for _, d := range r.Deeds {
		if d.AssignedRestaurantID != nil && *d.AssignedRestaurantID == restaurantID {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

// DiceGameRepo is an in-memory repository.DiceGameRepository.
type DiceGameRepo struct {
	mu    sync.Mutex
	Games map[string]*domain.DiceGame
	days  map[string]string // gameID -> day
}

func NewDiceGameRepo() *DiceGameRepo {
	return &DiceGameRepo{
		Games: make(map[string]*domain.DiceGame),
		days:  make(map[string]string),
	}
}

func (r *DiceGameRepo) CreateUnique(ctx context.Context, game *domain.DiceGame, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, g := range r.Games {
		if r.days[id] != day {
			continue
		}
		samePair := (g.Player1ID == game.Player1ID && g.Player2ID == game.Player2ID) ||
			(g.Player1ID == game.Player2ID && g.Player2ID == game.Player1ID)
		if samePair {
			return domain.ErrDuplicateInvite
		}
	}
	clone := *game
	r.Games[game.ID] = &clone
	r.days[game.ID] = day
	return nil
}

func (r *DiceGameRepo) GetByID(ctx context.Context, id string) (*domain.DiceGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.Games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	clone := *game
	return &clone, nil
}

func (r *DiceGameRepo) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.Games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	game.Status = domain.DiceGameAccepted
	game.AcceptedAt = &at
	return nil
}

func (r *DiceGameRepo) MarkRolled(ctx context.Context, id string, result int, category, emoji string, place *domain.Place, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.Games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	game.Status = domain.DiceGameRolled
	game.DiceResult = &result
	game.Category = &category
	game.CategoryEmoji = &emoji
	game.SelectedPlace = place
	game.RolledAt = &at
	return nil
}

func (r *DiceGameRepo) GetTodayByUser(ctx context.Context, userID, day string) ([]*domain.DiceGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.DiceGame
	for id, g := range r.Games {
		if r.days[id] == day && g.HasPlayer(userID) {
			clone := *g
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// RouteCache is an in-memory repository.RouteCache.
type RouteCache struct {
	mu     sync.Mutex
	routes map[string][]domain.Place
	places map[string][]domain.Place
}

func NewRouteCache() *RouteCache {
	return &RouteCache{
		routes: make(map[string][]domain.Place),
		places: make(map[string][]domain.Place),
	}
}

func (c *RouteCache) GetRoute(ctx context.Context, userID, day string) ([]domain.Place, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	route, ok := c.routes[userID+":"+day]
	return route, ok, nil
}

func (c *RouteCache) SetRoute(ctx context.Context, userID, day string, route []domain.Place) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[userID+":"+day] = route
	return nil
}

func (c *RouteCache) GetPlaces(ctx context.Context, userID, day string) ([]domain.Place, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	places, ok := c.places[userID+":"+day]
	return places, ok, nil
}

func (c *RouteCache) SetPlaces(ctx context.Context, userID, day string, places []domain.Place) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.places[userID+":"+day] = places
	return nil
}
