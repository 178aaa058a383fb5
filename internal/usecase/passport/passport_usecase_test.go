package passport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/testutil"
	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

type passportFixture struct {
	uc        *PassportUseCase
	users     *testutil.UserRepo
	stamps    *testutil.StampRepo
	deeds     *testutil.GoodDeedRepo
	notifs    *testutil.NotificationRepo
	rng       *testutil.StubRand
	checkInAt time.Time
}

func newPassportFixture(t *testing.T) *passportFixture {
	t.Helper()
	users := testutil.NewUserRepo()
	stamps := testutil.NewStampRepo()
	deeds := testutil.NewGoodDeedRepo()
	notifs := testutil.NewNotificationRepo()
	rng := &testutil.StubRand{FloatValues: []float64{0.9}, IntnValues: []int{0}}

	uc := NewPassportUseCase(stamps, users, deeds, notification.NewEmitter(notifs), rng)
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return at }

	return &passportFixture{uc: uc, users: users, stamps: stamps, deeds: deeds, notifs: notifs, rng: rng, checkInAt: at}
}

func (f *passportFixture) addUser(t *testing.T, id, username string) *domain.User {
	t.Helper()
	user := &domain.User{ID: id, Username: username, Email: username + "@example.com"}
	if err := f.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}

func checkInReq(placeID string) *CheckInRequest {
	return &CheckInRequest{
		PlaceID:   placeID,
		PlaceName: "Test Place",
		Category:  domain.ProfileFoodie,
		Latitude:  41.0,
		Longitude: 29.0,
	}
}

func TestCheckInDuplicateWindow(t *testing.T) {
	f := newPassportFixture(t)
	user := f.addUser(t, "u1", "asli")

	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); err != nil {
		t.Fatalf("first check-in error = %v", err)
	}

	// Five minutes later: rejected, counter unchanged.
	f.uc.now = func() time.Time { return f.checkInAt.Add(5 * time.Minute) }
	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); !errors.Is(err, domain.ErrDuplicateCheckIn) {
		t.Fatalf("second check-in error = %v, want ErrDuplicateCheckIn", err)
	}
	stored, _ := f.users.GetByID(context.Background(), "u1")
	if stored.TotalVisits != 1 {
		t.Errorf("TotalVisits = %d after rejected check-in, want 1", stored.TotalVisits)
	}

	// 23h59m: still inside the window.
	f.uc.now = func() time.Time { return f.checkInAt.Add(24*time.Hour - time.Minute) }
	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); !errors.Is(err, domain.ErrDuplicateCheckIn) {
		t.Fatalf("23h59m check-in error = %v, want ErrDuplicateCheckIn", err)
	}

	// 24h01m: legal repeat visit.
	f.uc.now = func() time.Time { return f.checkInAt.Add(24*time.Hour + time.Minute) }
	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); err != nil {
		t.Fatalf("24h01m check-in error = %v, want success", err)
	}

	// A different place inside the window is always fine.
	f.uc.now = func() time.Time { return f.checkInAt.Add(10 * time.Minute) }
	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p2")); err != nil {
		t.Fatalf("different-place check-in error = %v", err)
	}
}

func TestCheckInNotifiesFollowers(t *testing.T) {
	f := newPassportFixture(t)
	user := f.addUser(t, "u1", "asli")
	f.addUser(t, "u2", "mert")
	f.addUser(t, "u3", "zeynep")
	f.users.Follow(context.Background(), "u2", "u1")
	f.users.Follow(context.Background(), "u3", "u1")

	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); err != nil {
		t.Fatalf("check-in error = %v", err)
	}

	stampNotifs := f.notifs.ByType(domain.NotificationStamp)
	if len(stampNotifs) != 2 {
		t.Fatalf("stamp notifications = %d, want 2", len(stampNotifs))
	}
	recipients := map[string]bool{}
	for _, n := range stampNotifs {
		recipients[n.RecipientID] = true
		if n.SenderID != "u1" {
			t.Errorf("sender = %s, want u1", n.SenderID)
		}
		if n.StampEmoji == nil || *n.StampEmoji != "🍽️" {
			t.Errorf("stamp emoji = %v, want foodie emoji", n.StampEmoji)
		}
	}
	if !recipients["u2"] || !recipients["u3"] {
		t.Errorf("recipients = %v, want u2 and u3", recipients)
	}
}

func TestCheckInGoodDeedProbability(t *testing.T) {
	tests := []struct {
		name       string
		fromFriend bool
		roll       float64
		wantDeed   bool
	}{
		{"lucky roll awards", false, 0.19, true},
		{"boundary roll does not award", false, 0.2, false},
		{"unlucky roll does not award", false, 0.9, false},
		{"friend stamp always awards", true, 0.9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPassportFixture(t)
			user := f.addUser(t, "u1", "asli")
			f.rng.FloatValues = []float64{tt.roll}

			req := checkInReq("p1")
			req.FromFriendStamp = tt.fromFriend
			resp, err := f.uc.CheckIn(context.Background(), user, req)
			if err != nil {
				t.Fatalf("check-in error = %v", err)
			}

			if tt.wantDeed && resp.GoodDeed == nil {
				t.Fatal("expected a good deed, got none")
			}
			if !tt.wantDeed && resp.GoodDeed != nil {
				t.Fatalf("unexpected good deed: %+v", resp.GoodDeed)
			}
		})
	}
}

func TestGoodDeedAssignmentAndBroadcast(t *testing.T) {
	f := newPassportFixture(t)
	user := f.addUser(t, "u1", "asli")
	f.addUser(t, "u2", "mert")
	f.addUser(t, "u3", "zeynep")
	f.rng.FloatValues = []float64{0.1} // award
	f.rng.IntnValues = []int{2}        // third partner restaurant

	resp, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1"))
	if err != nil {
		t.Fatalf("check-in error = %v", err)
	}

	deed := resp.GoodDeed
	if deed == nil {
		t.Fatal("expected a good deed")
	}
	if deed.Status != domain.GoodDeedAssigned {
		t.Errorf("deed status = %s, want assigned", deed.Status)
	}
	if deed.AssignedRestaurantName == nil || *deed.AssignedRestaurantName != "Mado" {
		t.Errorf("restaurant = %v, want Mado", deed.AssignedRestaurantName)
	}
	if deed.AssignedAt == nil {
		t.Error("AssignedAt not set")
	}

	// Every user hears about it, donor included.
	broadcast := f.notifs.ByType(domain.NotificationGoodDeed)
	if len(broadcast) != 3 {
		t.Fatalf("good deed notifications = %d, want 3", len(broadcast))
	}
	for _, n := range broadcast {
		if n.SenderID != domain.SystemSenderID {
			t.Errorf("sender = %s, want system", n.SenderID)
		}
	}
}

func TestGoodDeedBroadcastPartialFailure(t *testing.T) {
	f := newPassportFixture(t)
	user := f.addUser(t, "u1", "asli")
	f.addUser(t, "u2", "mert")
	f.addUser(t, "u3", "zeynep")
	f.rng.FloatValues = []float64{0.1}
	f.notifs.FailFor["u2"] = errors.New("write failed")

	if _, err := f.uc.CheckIn(context.Background(), user, checkInReq("p1")); err != nil {
		t.Fatalf("check-in error = %v, broadcast failures must not surface", err)
	}

	broadcast := f.notifs.ByType(domain.NotificationGoodDeed)
	if len(broadcast) != 2 {
		t.Fatalf("good deed notifications = %d, want 2 (u2 skipped)", len(broadcast))
	}
}

func TestGetFriendStamps(t *testing.T) {
	f := newPassportFixture(t)
	f.addUser(t, "u1", "asli")
	friend := f.addUser(t, "u2", "mert")
	stranger := f.addUser(t, "u3", "zeynep")
	f.users.Follow(context.Background(), "u1", "u2")

	if _, err := f.uc.CheckIn(context.Background(), friend, checkInReq("p1")); err != nil {
		t.Fatalf("friend check-in error = %v", err)
	}
	if _, err := f.uc.CheckIn(context.Background(), stranger, checkInReq("p2")); err != nil {
		t.Fatalf("stranger check-in error = %v", err)
	}

	stamps, err := f.uc.GetFriendStamps(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetFriendStamps() error = %v", err)
	}
	if len(stamps) != 1 {
		t.Fatalf("friend stamps = %d, want 1", len(stamps))
	}
	if stamps[0].Username != "mert" {
		t.Errorf("friend stamp username = %s, want mert", stamps[0].Username)
	}
}

func TestGetSummary(t *testing.T) {
	f := newPassportFixture(t)
	user := f.addUser(t, "u1", "asli")

	categories := []domain.ProfileKey{domain.ProfileFoodie, domain.ProfileFoodie, domain.ProfileCulture}
	for i, cat := range categories {
		req := checkInReq("p" + string(rune('1'+i)))
		req.Category = cat
		if _, err := f.uc.CheckIn(context.Background(), user, req); err != nil {
			t.Fatalf("check-in %d error = %v", i, err)
		}
	}

	summary, err := f.uc.GetSummary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if summary.TotalStamps != 3 {
		t.Errorf("TotalStamps = %d, want 3", summary.TotalStamps)
	}
	if summary.CategoryStats[domain.ProfileFoodie] != 2 || summary.CategoryStats[domain.ProfileCulture] != 1 {
		t.Errorf("CategoryStats = %v", summary.CategoryStats)
	}
}
