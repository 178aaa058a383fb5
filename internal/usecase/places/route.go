package places

import (
	"context"
	"log"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/random"
)

// Route slot order is fixed: breakfast, then an activity, then coffee.
var routeSlots = []struct {
	Name  string
	Types []string
}{
	{"breakfast", []string{"bakery", "cafe", "restaurant", "breakfast_restaurant", "pastry_shop"}},
	{"activity", []string{"museum", "art_gallery", "park", "movie_theater", "theater", "cultural_center", "tourist_attraction", "library", "gallery"}},
	{"coffee", []string{"cafe", "coffee_shop"}},
}

// RouteStop is one leg of the daily route.
type RouteStop struct {
	Slot  string       `json:"slot"`
	Place domain.Place `json:"place"`
}

// GetTodayRoute returns the cached route for the calendar day, building
// and caching one on the first request. The same user gets the same
// three stops all day; the next day's first call rebuilds.
func (uc *PlacesUseCase) GetTodayRoute(ctx context.Context, user *domain.User, loc domain.Location) ([]RouteStop, error) {
	day := uc.now().Format("2006-01-02")

	if cached, ok, err := uc.cache.GetRoute(ctx, user.ID, day); err != nil {
		log.Printf("[places] route cache read failed: %v", err)
	} else if ok {
		return zipSlots(cached), nil
	}

	ranked, err := uc.rankedForDay(ctx, user, loc, day)
	if err != nil {
		return nil, err
	}

	route, err := BuildRoute(ranked, uc.rng)
	if err != nil {
		return nil, err
	}

	flat := make([]domain.Place, len(route))
	for i, stop := range route {
		flat[i] = stop.Place
	}
	if err := uc.cache.SetRoute(ctx, user.ID, day, flat); err != nil {
		log.Printf("[places] route cache write failed: %v", err)
	}
	return route, nil
}

// rankedForDay returns the day's scored candidate pool, caching the
// provider response so route rebuilds within a day skip the round trip.
func (uc *PlacesUseCase) rankedForDay(ctx context.Context, user *domain.User, loc domain.Location, day string) ([]domain.Place, error) {
	if cached, ok, err := uc.cache.GetPlaces(ctx, user.ID, day); err != nil {
		log.Printf("[places] places cache read failed: %v", err)
	} else if ok {
		return cached, nil
	}

	ranked, err := uc.GetNearbyRanked(ctx, user, loc)
	if err != nil {
		return nil, err
	}
	if len(ranked) > 0 {
		if err := uc.cache.SetPlaces(ctx, user.ID, day, ranked); err != nil {
			log.Printf("[places] places cache write failed: %v", err)
		}
	}
	return ranked, nil
}

// BuildRoute fills the three slots from a score-sorted pool. Each slot
// filters the remaining pool by its type list, falls back to the whole
// remaining pool when the filter comes up empty, and picks uniformly at
// random among the top five by score. A picked place leaves the pool, so
// the three stops are distinct.
func BuildRoute(pool []domain.Place, rng random.Source) ([]RouteStop, error) {
	if len(pool) < len(routeSlots) {
		return nil, domain.ErrInsufficientCandidates
	}

	remaining := make([]domain.Place, len(pool))
	copy(remaining, pool)

	route := make([]RouteStop, 0, len(routeSlots))
	for _, slot := range routeSlots {
		candidates := filterByTypes(remaining, slot.Types)
		if len(candidates) == 0 {
			candidates = remaining
		}
		if len(candidates) == 0 {
			return nil, domain.ErrInsufficientCandidates
		}

		top := len(candidates)
		if top > 5 {
			top = 5
		}
		pick := candidates[rng.Intn(top)]

		route = append(route, RouteStop{Slot: slot.Name, Place: pick})
		remaining = removePlace(remaining, pick.ID)
	}
	return route, nil
}

func filterByTypes(pool []domain.Place, types []string) []domain.Place {
	var out []domain.Place
	for _, p := range pool {
		if p.HasAnyTag(types) {
			out = append(out, p)
		}
	}
	return out
}

func removePlace(pool []domain.Place, id string) []domain.Place {
	out := pool[:0]
	for _, p := range pool {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func zipSlots(places []domain.Place) []RouteStop {
	route := make([]RouteStop, 0, len(places))
	for i, p := range places {
		name := "stop"
		if i < len(routeSlots) {
			name = routeSlots[i].Name
		}
		route = append(route, RouteStop{Slot: name, Place: p})
	}
	return route
}
