package domain

import "time"

// Memory is a shared photo moment. Likes are a userID set mutated by
// like/unlike; comments are append-only and open to any user.
type Memory struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	PlaceName string    `json:"place_name" db:"place_name"`
	Note      string    `json:"note" db:"note"`
	Photo     *string   `json:"photo" db:"photo"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Comment is one entry of a memory's ordered comment list.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	MemoryID  string    `json:"memory_id" db:"memory_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LikedBy reports whether the user is in the likes set.
func (m *Memory) LikedBy(userID string) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
