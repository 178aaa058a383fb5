package social

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/testutil"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

type socialFixture struct {
	uc     *SocialUseCase
	users  *testutil.UserRepo
	notifs *testutil.NotificationRepo
	clock  time.Time
}

func newSocialFixture(t *testing.T) *socialFixture {
	t.Helper()
	users := testutil.NewUserRepo()
	notifs := testutil.NewNotificationRepo()
	uc := NewSocialUseCase(users, testutil.NewMemoryRepo(), notification.NewEmitter(notifs))

	f := &socialFixture{uc: uc, users: users, notifs: notifs, clock: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)}
	uc.now = func() time.Time {
		f.clock = f.clock.Add(time.Second)
		return f.clock
	}
	return f
}

func (f *socialFixture) addUser(t *testing.T, id, username string) *domain.User {
	t.Helper()
	user := &domain.User{ID: id, Username: username, Email: username + "@example.com"}
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}

func TestFollowSymmetry(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")
	f.addUser(t, "b", "mert")

	if err := f.uc.Follow(context.Background(), a, "b"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	following, _ := f.users.GetFollowing(context.Background(), "a")
	followers, _ := f.users.GetFollowers(context.Background(), "b")
	if len(following) != 1 || following[0] != "b" {
		t.Errorf("a.following = %v, want [b]", following)
	}
	if len(followers) != 1 || followers[0] != "a" {
		t.Errorf("b.followers = %v, want [a]", followers)
	}

	if err := f.uc.Unfollow(context.Background(), "a", "b"); err != nil {
		t.Fatalf("Unfollow() error = %v", err)
	}
	following, _ = f.users.GetFollowing(context.Background(), "a")
	followers, _ = f.users.GetFollowers(context.Background(), "b")
	if len(following) != 0 || len(followers) != 0 {
		t.Errorf("after unfollow: following = %v, followers = %v, want both empty", following, followers)
	}
}

func TestFollowGuards(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")

	if err := f.uc.Follow(context.Background(), a, "a"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("self-follow error = %v, want ErrInvalidInput", err)
	}
	if err := f.uc.Follow(context.Background(), a, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("follow missing user error = %v, want ErrUserNotFound", err)
	}
}

func TestFollowNotifies(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")
	f.addUser(t, "b", "mert")

	if err := f.uc.Follow(context.Background(), a, "b"); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	notifs := f.notifs.ByType(domain.NotificationFollow)
	if len(notifs) != 1 {
		t.Fatalf("follow notifications = %d, want 1", len(notifs))
	}
	if notifs[0].RecipientID != "b" || notifs[0].SenderID != "a" {
		t.Errorf("notification recipient = %s sender = %s, want b and a", notifs[0].RecipientID, notifs[0].SenderID)
	}
}

func TestFeedComposition(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")
	b := f.addUser(t, "b", "mert")
	c := f.addUser(t, "c", "zeynep")
	f.users.Follow(context.Background(), "a", "b")

	mine, err := f.uc.CreateMemory(context.Background(), a, &CreateMemoryRequest{PlaceName: "Kadıköy"})
	if err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}
	followed, err := f.uc.CreateMemory(context.Background(), b, &CreateMemoryRequest{PlaceName: "Moda"})
	if err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}
	if _, err := f.uc.CreateMemory(context.Background(), c, &CreateMemoryRequest{PlaceName: "Beşiktaş"}); err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}

	feed, err := f.uc.Feed(context.Background(), "a")
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed length = %d, want 2 (own + followed, no strangers)", len(feed))
	}

	// Newest first: b's memory was created after a's.
	if feed[0].ID != followed.ID || feed[1].ID != mine.ID {
		t.Errorf("feed order = [%s, %s], want [%s, %s]", feed[0].ID, feed[1].ID, followed.ID, mine.ID)
	}
	for _, m := range feed {
		if m.UserID == "c" {
			t.Errorf("feed contains stranger memory %s", m.ID)
		}
	}
}

func TestLikeMemory(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")
	b := f.addUser(t, "b", "mert")

	memory, err := f.uc.CreateMemory(context.Background(), a, &CreateMemoryRequest{PlaceName: "Moda"})
	if err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}

	if err := f.uc.LikeMemory(context.Background(), b, memory.ID); err != nil {
		t.Fatalf("LikeMemory() error = %v", err)
	}
	// Re-like is a no-op and must not duplicate the notification.
	if err := f.uc.LikeMemory(context.Background(), b, memory.ID); err != nil {
		t.Fatalf("second LikeMemory() error = %v", err)
	}

	stored, _ := f.uc.memoryRepo.GetByID(context.Background(), memory.ID)
	if len(stored.Likes) != 1 {
		t.Errorf("likes = %v, want exactly [b]", stored.Likes)
	}
	if notifs := f.notifs.ByType(domain.NotificationLike); len(notifs) != 1 {
		t.Errorf("like notifications = %d, want 1", len(notifs))
	}

	if err := f.uc.UnlikeMemory(context.Background(), "b", memory.ID); err != nil {
		t.Fatalf("UnlikeMemory() error = %v", err)
	}
	stored, _ = f.uc.memoryRepo.GetByID(context.Background(), memory.ID)
	if len(stored.Likes) != 0 {
		t.Errorf("likes after unlike = %v, want empty", stored.Likes)
	}
}

func TestLikeOwnMemoryDoesNotNotify(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")

	memory, err := f.uc.CreateMemory(context.Background(), a, &CreateMemoryRequest{PlaceName: "Moda"})
	if err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}
	if err := f.uc.LikeMemory(context.Background(), a, memory.ID); err != nil {
		t.Fatalf("LikeMemory() error = %v", err)
	}
	if notifs := f.notifs.ByType(domain.NotificationLike); len(notifs) != 0 {
		t.Errorf("self-like produced %d notifications, want 0", len(notifs))
	}
}

func TestAddComment(t *testing.T) {
	f := newSocialFixture(t)
	a := f.addUser(t, "a", "asli")
	b := f.addUser(t, "b", "mert")

	memory, err := f.uc.CreateMemory(context.Background(), a, &CreateMemoryRequest{PlaceName: "Moda"})
	if err != nil {
		t.Fatalf("CreateMemory() error = %v", err)
	}

	comment, err := f.uc.AddComment(context.Background(), b, memory.ID, &CommentRequest{Text: "harika yer"})
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.Username != "mert" || comment.Text != "harika yer" {
		t.Errorf("comment = %+v", comment)
	}

	stored, _ := f.uc.memoryRepo.GetByID(context.Background(), memory.ID)
	if len(stored.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(stored.Comments))
	}

	notifs := f.notifs.ByType(domain.NotificationComment)
	if len(notifs) != 1 || notifs[0].RecipientID != "a" {
		t.Errorf("comment notifications = %+v, want one for a", notifs)
	}

	if _, err := f.uc.AddComment(context.Background(), b, "ghost", &CommentRequest{Text: "x"}); !errors.Is(err, domain.ErrMemoryNotFound) {
		t.Errorf("comment on missing memory error = %v, want ErrMemoryNotFound", err)
	}
}

func TestSearchUsers(t *testing.T) {
	f := newSocialFixture(t)
	f.addUser(t, "a", "asli")
	f.addUser(t, "b", "aslihan")
	f.addUser(t, "c", "mert")

	results, err := f.uc.SearchUsers(context.Background(), "asli")
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("search results = %d, want 2", len(results))
	}

	empty, err := f.uc.SearchUsers(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchUsers(blank) error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("blank query returned %d results, want 0", len(empty))
	}
}
