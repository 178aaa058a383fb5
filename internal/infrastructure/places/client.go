package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/auramap/auramap-backend/internal/config"
	"github.com/auramap/auramap-backend/internal/domain"
)

const baseURL = "https://maps.googleapis.com/maps/api/place"

// Client calls the Google Places web API and normalizes results into
// domain places. Vibe and food enums are derived here, at ingestion,
// so a re-fetch always recomputes them.
type Client struct {
	apiKey     string
	radius     int
	httpClient *http.Client
}

func NewClient(cfg *config.PlacesConfig) *Client {
	return &Client{
		apiKey: cfg.APIKey,
		radius: cfg.RadiusMeters,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type rawPlace struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   float64  `json:"rating"`
	Types    []string `json:"types"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

type nearbyResponse struct {
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
	Results      []rawPlace `json:"results"`
}

// Search runs one nearby search per keyword and merges the results,
// deduplicating by place id. Provider failures surface as
// domain.ErrProviderUnavailable.
func (c *Client) Search(ctx context.Context, loc domain.Location, keywords []string) ([]domain.Place, error) {
	if c.apiKey == "" {
		return nil, domain.ErrProviderUnavailable
	}

	seen := make(map[string]bool)
	var places []domain.Place

	for _, keyword := range keywords {
		q := url.Values{}
		q.Set("location", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
		q.Set("radius", fmt.Sprintf("%d", c.radius))
		q.Set("keyword", keyword)
		q.Set("key", c.apiKey)

		var resp nearbyResponse
		if err := c.getJSON(ctx, baseURL+"/nearbysearch/json?"+q.Encode(), &resp); err != nil {
			return nil, err
		}
		if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
			return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, resp.Status)
		}

		for _, raw := range resp.Results {
			if seen[raw.PlaceID] {
				continue
			}
			seen[raw.PlaceID] = true
			places = append(places, transform(raw))
		}
	}

	return places, nil
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string  `json:"name"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		FormattedAddress string  `json:"formatted_address"`
		FormattedPhone   string  `json:"formatted_phone_number"`
		Website          string  `json:"website"`
		URL              string  `json:"url"`
		OpeningHours     struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
}

// Details fetches the extended record for one place.
func (c *Client) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	if c.apiKey == "" {
		return nil, domain.ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,rating,user_ratings_total,formatted_address,formatted_phone_number,website,url,opening_hours")
	q.Set("key", c.apiKey)

	var resp detailsResponse
	if err := c.getJSON(ctx, baseURL+"/details/json?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderUnavailable, resp.Status)
	}

	return &domain.PlaceDetails{
		Name:         resp.Result.Name,
		Rating:       resp.Result.Rating,
		TotalRatings: resp.Result.UserRatingsTotal,
		Address:      resp.Result.FormattedAddress,
		Phone:        resp.Result.FormattedPhone,
		Website:      resp.Result.Website,
		MapsURL:      resp.Result.URL,
		OpeningHours: resp.Result.OpeningHours.WeekdayText,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawurl string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func transform(raw rawPlace) domain.Place {
	p := domain.Place{
		ID:        raw.PlaceID,
		Name:      raw.Name,
		Address:   raw.Vicinity,
		Rating:    raw.Rating,
		Latitude:  raw.Geometry.Location.Lat,
		Longitude: raw.Geometry.Location.Lng,
		Tags:      raw.Types,
		Vibe:      domain.DeriveVibe(raw.Types),
		Food:      domain.DeriveFood(raw.Types, raw.Name),
	}
	if len(raw.Photos) > 0 {
		p.PhotoRef = raw.Photos[0].PhotoReference
	}
	return p
}
