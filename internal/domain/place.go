package domain

import "strings"

// Vibe is the derived atmosphere of a place.
type Vibe string

const (
	VibeQuiet  Vibe = "sakin"
	VibeMedium Vibe = "orta"
	VibeLively Vibe = "hareketli"
)

// FoodType is the derived kitchen category of a place.
type FoodType string

const (
	FoodCoffee  FoodType = "coffee"
	FoodDessert FoodType = "dessert"
	FoodLocal   FoodType = "local"
	FoodWorld   FoodType = "world"
)

// Place is a normalized place record from the places provider. Vibe and
// Food are derived from the raw category tags at ingestion time and are
// recomputed on every re-fetch, never stored authoritatively.
type Place struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Rating    float64      `json:"rating"`
	Tags      []string     `json:"tags"`
	Vibe      Vibe         `json:"vibe"`
	Food      FoodType     `json:"food"`
	Profiles  []ProfileKey `json:"profiles,omitempty"`
	PhotoRef  string       `json:"photo_ref,omitempty"`
	Score     int          `json:"score"`
}

// HasTag reports whether tag is among the raw category tags.
func (p *Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether any of the given tags is present.
func (p *Place) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

// HasProfile reports whether the place declares affinity with the key.
func (p *Place) HasProfile(key ProfileKey) bool {
	for _, k := range p.Profiles {
		if k == key {
			return true
		}
	}
	return false
}

// DeriveVibe maps raw category tags to a vibe enum.
func DeriveVibe(tags []string) Vibe {
	for _, t := range tags {
		if t == "night_club" || t == "bar" {
			return VibeLively
		}
	}
	for _, t := range tags {
		if t == "library" || t == "park" {
			return VibeQuiet
		}
	}
	return VibeMedium
}

// DeriveFood maps raw category tags and the place name to a food enum.
// Name heuristics follow the provider's Turkish-market data.
func DeriveFood(tags []string, name string) FoodType {
	lower := strings.ToLower(name)
	has := func(tag string) bool {
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
		return false
	}
	switch {
	case has("bakery") || strings.Contains(lower, "tart") || strings.Contains(lower, "kek"):
		return FoodDessert
	case has("cafe") || strings.Contains(lower, "kahve"):
		return FoodCoffee
	case strings.Contains(lower, "türk") || strings.Contains(lower, "kebab"):
		return FoodLocal
	case has("restaurant"):
		return FoodWorld
	}
	return FoodLocal
}

// Location is a geographic point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceDetails is the extended record returned by the provider's
// details endpoint.
type PlaceDetails struct {
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	TotalRatings int      `json:"total_ratings"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website,omitempty"`
	MapsURL      string   `json:"maps_url,omitempty"`
	OpeningHours []string `json:"opening_hours"`
}
