package places

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/random"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/auramap/auramap-backend/internal/usecase/survey"
)

// Provider is the places-data collaborator boundary.
type Provider interface {
	Search(ctx context.Context, loc domain.Location, keywords []string) ([]domain.Place, error)
	Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error)
}

type PlacesUseCase struct {
	provider Provider
	cache    repository.RouteCache
	rng      random.Source
	now      func() time.Time
}

func NewPlacesUseCase(provider Provider, cache repository.RouteCache, rng random.Source) *PlacesUseCase {
	return &PlacesUseCase{
		provider: provider,
		cache:    cache,
		rng:      rng,
		now:      time.Now,
	}
}

// GetNearbyRanked fetches candidate places for the user's location and
// profile keywords, scores and sorts them. Provider failure degrades to
// an empty list; the caller decides the fallback.
func (uc *PlacesUseCase) GetNearbyRanked(ctx context.Context, user *domain.User, loc domain.Location) ([]domain.Place, error) {
	key := domain.ProfileKey("")
	if user.ProfileKey != nil {
		key = *user.ProfileKey
	}

	raw, err := uc.provider.Search(ctx, loc, survey.SearchKeywords(key))
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			log.Printf("[places] provider unavailable, returning empty list: %v", err)
			return []domain.Place{}, nil
		}
		return nil, err
	}

	ranked := RankPlaces(raw, user.Answers, key)
	return ranked, nil
}

// GetDetails proxies the provider's details lookup.
func (uc *PlacesUseCase) GetDetails(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	return uc.provider.Details(ctx, placeID)
}

// RankPlaces scores every place against the profile and sorts by score
// descending. The sort is stable: ties keep provider order.
func RankPlaces(candidates []domain.Place, answers domain.SurveyAnswers, key domain.ProfileKey) []domain.Place {
	ranked := make([]domain.Place, len(candidates))
	copy(ranked, candidates)
	for i := range ranked {
		ranked[i].Score = ScorePlace(&ranked[i], answers, key)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// ScorePlace computes the compatibility of one place with a profile,
// clamped to [0, 100]. A heuristic additive model, not a normalized
// probability; several interest-tag matches can saturate the clamp.
func ScorePlace(place *domain.Place, answers domain.SurveyAnswers, key domain.ProfileKey) int {
	s := 0.0

	if place.Rating > 0 {
		s += place.Rating * 2
	}
	if key != "" && place.HasProfile(key) {
		s += 6
	}
	for _, tag := range answers.Interests {
		if place.HasTag(tag) {
			s += 2
		}
	}
	if answers.Vibe != "" && string(place.Vibe) == answers.Vibe {
		s += 2
	}
	if answers.Food != "" && string(place.Food) == answers.Food {
		s += 2
	}

	score := int(s)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
