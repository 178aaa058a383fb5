package domain

import "time"

// DiceGameStatus moves forward only: pending → accepted → rolled.
// A pending game that is never accepted simply dangles; there is no
// reject or expiry transition.
type DiceGameStatus string

const (
	DiceGamePending  DiceGameStatus = "pending"
	DiceGameAccepted DiceGameStatus = "accepted"
	DiceGameRolled   DiceGameStatus = "rolled"
)

// DiceGame is a two-player destination picker. At most one game exists
// per unordered player pair per calendar day.
type DiceGame struct {
	ID              string         `json:"id" db:"id"`
	Player1ID       string         `json:"player1_id" db:"player1_id"`
	Player1Username string         `json:"player1_username" db:"player1_username"`
	Player2ID       string         `json:"player2_id" db:"player2_id"`
	Player2Username string         `json:"player2_username" db:"player2_username"`
	Status          DiceGameStatus `json:"status" db:"status"`
	DiceResult      *int           `json:"dice_result" db:"dice_result"`
	Category        *string        `json:"category" db:"category"`
	CategoryEmoji   *string        `json:"category_emoji" db:"category_emoji"`
	SelectedPlace   *Place         `json:"selected_place"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	AcceptedAt      *time.Time     `json:"accepted_at" db:"accepted_at"`
	RolledAt        *time.Time     `json:"rolled_at" db:"rolled_at"`
}

// HasPlayer reports whether the user is one of the two players.
func (g *DiceGame) HasPlayer(userID string) bool {
	return g.Player1ID == userID || g.Player2ID == userID
}

// OtherPlayer returns the opponent of the given player.
func (g *DiceGame) OtherPlayer(userID string) (id, username string) {
	if g.Player1ID == userID {
		return g.Player2ID, g.Player2Username
	}
	return g.Player1ID, g.Player1Username
}

// PlayerUsername returns the username of the given player id.
func (g *DiceGame) PlayerUsername(userID string) string {
	if g.Player1ID == userID {
		return g.Player1Username
	}
	return g.Player2Username
}

// DiceCategory maps one die face to a place-type filter. An empty Types
// list means the whole candidate pool is eligible.
type DiceCategory struct {
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
	Types []string `json:"types"`
}

// DiceCategories is the fixed face → category table. Face 6 (Sürpriz)
// has no type filter.
var DiceCategories = map[int]DiceCategory{
	1: {Name: "Kahve/Çay", Emoji: "☕", Types: []string{"cafe", "coffee_shop"}},
	2: {Name: "Yemek", Emoji: "🍽️", Types: []string{"restaurant", "meal_takeaway"}},
	3: {Name: "Tatlı", Emoji: "🍰", Types: []string{"bakery", "cafe"}},
	4: {Name: "Fast Food", Emoji: "🍔", Types: []string{"meal_delivery", "meal_takeaway"}},
	5: {Name: "Bar/Pub", Emoji: "🍺", Types: []string{"bar", "night_club"}},
	6: {Name: "Sürpriz", Emoji: "🎉", Types: []string{}},
}
