package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

// Keys embed the calendar day, so a new day naturally misses and the
// caller rebuilds. TTL just keeps stale entries from accumulating.
const entryTTL = 48 * time.Hour

type routeCache struct {
	client *redis.Client
}

func NewRouteCache(client *redis.Client) repository.RouteCache {
	return &routeCache{client: client}
}

func (c *routeCache) GetRoute(ctx context.Context, userID, day string) ([]domain.Place, bool, error) {
	return c.get(ctx, fmt.Sprintf("route:%s:%s", userID, day))
}

func (c *routeCache) SetRoute(ctx context.Context, userID, day string, route []domain.Place) error {
	return c.set(ctx, fmt.Sprintf("route:%s:%s", userID, day), route)
}

func (c *routeCache) GetPlaces(ctx context.Context, userID, day string) ([]domain.Place, bool, error) {
	return c.get(ctx, fmt.Sprintf("places:%s:%s", userID, day))
}

func (c *routeCache) SetPlaces(ctx context.Context, userID, day string, places []domain.Place) error {
	return c.set(ctx, fmt.Sprintf("places:%s:%s", userID, day), places)
}

func (c *routeCache) get(ctx context.Context, key string) ([]domain.Place, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var places []domain.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached places: %w", err)
	}
	return places, true, nil
}

func (c *routeCache) set(ctx context.Context, key string, places []domain.Place) error {
	raw, err := json.Marshal(places)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, entryTTL).Err()
}
