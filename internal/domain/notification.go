package domain

import "time"

// NotificationType enumerates the notification kinds the core emits.
type NotificationType string

const (
	NotificationStamp        NotificationType = "stamp"
	NotificationGoodDeed     NotificationType = "goodDeed"
	NotificationDiceInvite   NotificationType = "diceInvite"
	NotificationDiceAccepted NotificationType = "diceAccepted"
	NotificationDiceRolled   NotificationType = "diceRolled"
	NotificationLike         NotificationType = "like"
	NotificationComment      NotificationType = "comment"
	NotificationFollow       NotificationType = "follow"
)

// SystemSenderID marks notifications originated by the platform itself,
// such as the good-deed broadcast.
const SystemSenderID = "system"

// Notification is immutable except for the read flag, which only ever
// transitions false → true.
type Notification struct {
	ID             string           `json:"id" db:"id"`
	RecipientID    string           `json:"recipient_id" db:"recipient_id"`
	Type           NotificationType `json:"type" db:"type"`
	SenderID       string           `json:"sender_id" db:"sender_id"`
	SenderUsername string           `json:"sender_username" db:"sender_username"`
	Message        string           `json:"message" db:"message"`
	PlaceID        *string          `json:"place_id" db:"place_id"`
	PlaceName      *string          `json:"place_name" db:"place_name"`
	StampCategory  *string          `json:"stamp_category" db:"stamp_category"`
	StampEmoji     *string          `json:"stamp_emoji" db:"stamp_emoji"`
	RestaurantID   *string          `json:"restaurant_id" db:"restaurant_id"`
	RestaurantName *string          `json:"restaurant_name" db:"restaurant_name"`
	GoodDeedID     *string          `json:"good_deed_id" db:"good_deed_id"`
	GameID         *string          `json:"game_id" db:"game_id"`
	MemoryID       *string          `json:"memory_id" db:"memory_id"`
	Read           bool             `json:"read" db:"read"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
}
