package domain

import "time"

// GoodDeedStatus moves strictly forward: pending → assigned → used.
type GoodDeedStatus string

const (
	GoodDeedPending  GoodDeedStatus = "pending"
	GoodDeedAssigned GoodDeedStatus = "assigned"
	GoodDeedUsed     GoodDeedStatus = "used"
)

// GoodDeed is a pay-it-forward meal voucher awarded on check-in and
// assigned to a restaurant in the same logical operation. The assigned
// fields stay nil until the status reaches assigned.
type GoodDeed struct {
	ID                     string         `json:"id" db:"id"`
	UserID                 string         `json:"user_id" db:"user_id"`
	Username               string         `json:"username" db:"username"`
	TriggerPlaceID         string         `json:"trigger_place_id" db:"trigger_place_id"`
	TriggerPlaceName       string         `json:"trigger_place_name" db:"trigger_place_name"`
	Status                 GoodDeedStatus `json:"status" db:"status"`
	AssignedRestaurantID   *string        `json:"assigned_restaurant_id" db:"assigned_restaurant_id"`
	AssignedRestaurantName *string        `json:"assigned_restaurant_name" db:"assigned_restaurant_name"`
	CreatedAt              time.Time      `json:"created_at" db:"created_at"`
	AssignedAt             *time.Time     `json:"assigned_at" db:"assigned_at"`
}

// Restaurant is a good-deed assignment target.
type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
