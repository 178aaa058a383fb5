package domain

import "time"

// Stamp is a passport check-in record. Stamps are immutable once written;
// the only write-time rule is the rolling 24-hour duplicate window,
// enforced by the repository, not by a unique constraint, because repeat
// visits after 24h are legal.
type Stamp struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	PlaceID      string     `json:"place_id" db:"place_id"`
	PlaceName    string     `json:"place_name" db:"place_name"`
	PlaceAddress string     `json:"place_address" db:"place_address"`
	Category     ProfileKey `json:"category" db:"category"`
	Latitude     float64    `json:"latitude" db:"latitude"`
	Longitude    float64    `json:"longitude" db:"longitude"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// CheckInWindow is the rolling duplicate-rejection window for check-ins.
const CheckInWindow = 24 * time.Hour

var stampEmojis = map[ProfileKey]string{
	ProfileCulture: "🎨",
	ProfileNature:  "🌿",
	ProfileFoodie:  "🍽️",
	ProfileFun:     "🎮",
	ProfileLaptop:  "☕",
}

var stampNames = map[ProfileKey]string{
	ProfileCulture: "Kültür",
	ProfileNature:  "Doğa",
	ProfileFoodie:  "Lezzet",
	ProfileFun:     "Eğlence",
	ProfileLaptop:  "Kafe",
}

// StampEmoji returns the passport emoji for a category.
func StampEmoji(category ProfileKey) string {
	return stampEmojis[category]
}

// StampName returns the display name for a category.
func StampName(category ProfileKey) string {
	return stampNames[category]
}
