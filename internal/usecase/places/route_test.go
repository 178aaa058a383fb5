package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/testutil"
)

func TestBuildRouteFillsSlots(t *testing.T) {
	pool := []domain.Place{
		{ID: "bakery", Tags: []string{"bakery"}, Score: 90},
		{ID: "museum", Tags: []string{"museum"}, Score: 80},
		{ID: "cafe", Tags: []string{"cafe"}, Score: 70},
		{ID: "park", Tags: []string{"park"}, Score: 60},
	}

	// Always pick the top candidate of each slot.
	rng := &testutil.StubRand{IntnValues: []int{0, 0, 0}}

	route, err := BuildRoute(pool, rng)
	if err != nil {
		t.Fatalf("BuildRoute() error = %v", err)
	}
	if len(route) != 3 {
		t.Fatalf("BuildRoute() returned %d stops, want 3", len(route))
	}

	wantSlots := []string{"breakfast", "activity", "coffee"}
	for i, slot := range wantSlots {
		if route[i].Slot != slot {
			t.Errorf("route[%d].Slot = %s, want %s", i, route[i].Slot, slot)
		}
	}

	// bakery wins breakfast, museum wins activity, cafe wins coffee.
	if route[0].Place.ID != "bakery" || route[1].Place.ID != "museum" || route[2].Place.ID != "cafe" {
		t.Errorf("unexpected picks: %s, %s, %s", route[0].Place.ID, route[1].Place.ID, route[2].Place.ID)
	}
}

func TestBuildRouteDistinctStops(t *testing.T) {
	// The cafe matches both breakfast and coffee slots, but a picked
	// place leaves the pool.
	pool := []domain.Place{
		{ID: "cafe1", Tags: []string{"cafe"}, Score: 90},
		{ID: "cafe2", Tags: []string{"cafe"}, Score: 80},
		{ID: "museum", Tags: []string{"museum"}, Score: 70},
	}

	route, err := BuildRoute(pool, &testutil.StubRand{IntnValues: []int{0, 0, 0}})
	if err != nil {
		t.Fatalf("BuildRoute() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, stop := range route {
		if seen[stop.Place.ID] {
			t.Fatalf("place %s appears twice in the route", stop.Place.ID)
		}
		seen[stop.Place.ID] = true
	}
}

func TestBuildRouteFallbackPool(t *testing.T) {
	// No place matches any slot's type list; the fallback still
	// produces a full route.
	pool := []domain.Place{
		{ID: "gym", Tags: []string{"gym"}, Score: 50},
		{ID: "bank", Tags: []string{"bank"}, Score: 40},
		{ID: "pharmacy", Tags: []string{"pharmacy"}, Score: 30},
	}

	route, err := BuildRoute(pool, &testutil.StubRand{IntnValues: []int{0, 0, 0}})
	if err != nil {
		t.Fatalf("BuildRoute() with fallback error = %v", err)
	}
	if len(route) != 3 {
		t.Fatalf("BuildRoute() returned %d stops, want 3", len(route))
	}
}

func TestBuildRouteInsufficientCandidates(t *testing.T) {
	pool := []domain.Place{
		{ID: "a", Tags: []string{"cafe"}},
		{ID: "b", Tags: []string{"bakery"}},
	}

	_, err := BuildRoute(pool, &testutil.StubRand{})
	if !errors.Is(err, domain.ErrInsufficientCandidates) {
		t.Fatalf("BuildRoute() error = %v, want ErrInsufficientCandidates", err)
	}
}

func TestBuildRouteTopFiveWindow(t *testing.T) {
	// Six breakfast candidates; index 5 must never be reachable.
	pool := []domain.Place{
		{ID: "b1", Tags: []string{"bakery"}, Score: 90},
		{ID: "b2", Tags: []string{"bakery"}, Score: 85},
		{ID: "b3", Tags: []string{"bakery"}, Score: 80},
		{ID: "b4", Tags: []string{"bakery"}, Score: 75},
		{ID: "b5", Tags: []string{"bakery"}, Score: 70},
		{ID: "b6", Tags: []string{"bakery"}, Score: 65},
		{ID: "museum", Tags: []string{"museum"}, Score: 60},
		{ID: "cafe", Tags: []string{"cafe"}, Score: 55},
	}

	// StubRand clips an out-of-range draw to n-1, so scripting a huge
	// index reveals the window size passed to Intn.
	route, err := BuildRoute(pool, &testutil.StubRand{IntnValues: []int{99, 0, 0}})
	if err != nil {
		t.Fatalf("BuildRoute() error = %v", err)
	}
	if route[0].Place.ID != "b5" {
		t.Errorf("breakfast pick = %s, want b5 (last of the top five)", route[0].Place.ID)
	}
}

type stubProvider struct {
	places []domain.Place
	err    error
	calls  int
}

func (p *stubProvider) Search(ctx context.Context, loc domain.Location, keywords []string) ([]domain.Place, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.places, nil
}

func (p *stubProvider) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	return &domain.PlaceDetails{Name: placeID}, nil
}

func routeTestUser() *domain.User {
	key := domain.ProfileFoodie
	return &domain.User{ID: "u1", Username: "asli", ProfileKey: &key}
}

func TestGetTodayRouteCachesPerDay(t *testing.T) {
	provider := &stubProvider{places: []domain.Place{
		{ID: "bakery", Tags: []string{"bakery"}, Rating: 5},
		{ID: "museum", Tags: []string{"museum"}, Rating: 4},
		{ID: "cafe", Tags: []string{"cafe"}, Rating: 3},
	}}
	cache := testutil.NewRouteCache()
	uc := NewPlacesUseCase(provider, cache, &testutil.StubRand{IntnValues: []int{0}})

	day := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return day }

	first, err := uc.GetTodayRoute(context.Background(), routeTestUser(), domain.Location{})
	if err != nil {
		t.Fatalf("first GetTodayRoute() error = %v", err)
	}

	second, err := uc.GetTodayRoute(context.Background(), routeTestUser(), domain.Location{})
	if err != nil {
		t.Fatalf("second GetTodayRoute() error = %v", err)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second call served from cache)", provider.calls)
	}
	for i := range first {
		if first[i].Place.ID != second[i].Place.ID {
			t.Errorf("route changed within the same day at stop %d: %s vs %s", i, first[i].Place.ID, second[i].Place.ID)
		}
	}

	// A new day misses the cache and rebuilds.
	uc.now = func() time.Time { return day.Add(24 * time.Hour) }
	if _, err := uc.GetTodayRoute(context.Background(), routeTestUser(), domain.Location{}); err != nil {
		t.Fatalf("next-day GetTodayRoute() error = %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("provider called %d times after day rollover, want 2", provider.calls)
	}
}

func TestGetNearbyRankedDegradesOnProviderFailure(t *testing.T) {
	provider := &stubProvider{err: domain.ErrProviderUnavailable}
	uc := NewPlacesUseCase(provider, testutil.NewRouteCache(), &testutil.StubRand{})

	ranked, err := uc.GetNearbyRanked(context.Background(), routeTestUser(), domain.Location{})
	if err != nil {
		t.Fatalf("GetNearbyRanked() error = %v, want degradation to empty list", err)
	}
	if len(ranked) != 0 {
		t.Errorf("GetNearbyRanked() returned %d places, want 0", len(ranked))
	}
}
