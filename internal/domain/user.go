package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ProfileKey is the five-way taste classification derived from the survey.
type ProfileKey string

const (
	ProfileCulture ProfileKey = "culture"
	ProfileNature  ProfileKey = "nature"
	ProfileFoodie  ProfileKey = "foodie"
	ProfileFun     ProfileKey = "fun"
	ProfileLaptop  ProfileKey = "laptop"
)

// ProfileKeys is the canonical enumeration order. Derivation iterates in
// this order with a strict > comparison, so ties resolve to the earliest key.
var ProfileKeys = []ProfileKey{ProfileCulture, ProfileNature, ProfileFoodie, ProfileFun, ProfileLaptop}

var profileLabels = map[ProfileKey]string{
	ProfileCulture: "🎨 Sanat & Kültürcü",
	ProfileNature:  "🌿 Doğa & Sakinlik Sever",
	ProfileFoodie:  "🍽️ Foodie – yemek odaklı",
	ProfileFun:     "🎮 Eğlence & Oyun",
	ProfileLaptop:  "☕ Sakin kafe – laptopçı tayfa",
}

// Label returns the human-readable profile type for the key.
func (k ProfileKey) Label() string {
	return profileLabels[k]
}

// Valid reports whether k is one of the five known profile keys.
func (k ProfileKey) Valid() bool {
	_, ok := profileLabels[k]
	return ok
}

// SurveyAnswers holds the raw survey selections. Single-select dimensions
// hold one option key; Interests is a multi-select tag set.
type SurveyAnswers struct {
	Activity  string   `json:"activity,omitempty"`
	Vibe      string   `json:"vibe,omitempty"`
	Budget    string   `json:"budget,omitempty"`
	Food      string   `json:"food,omitempty"`
	Weather   string   `json:"weather,omitempty"`
	Group     string   `json:"group,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// HasInterest reports whether the tag is in the multi-select set.
func (a SurveyAnswers) HasInterest(tag string) bool {
	for _, t := range a.Interests {
		if t == tag {
			return true
		}
	}
	return false
}

// Merge overlays the non-empty fields of other onto a copy of a.
// Re-submitting the survey overwrites prior answers field by field.
func (a SurveyAnswers) Merge(other SurveyAnswers) SurveyAnswers {
	merged := a
	if other.Activity != "" {
		merged.Activity = other.Activity
	}
	if other.Vibe != "" {
		merged.Vibe = other.Vibe
	}
	if other.Budget != "" {
		merged.Budget = other.Budget
	}
	if other.Food != "" {
		merged.Food = other.Food
	}
	if other.Weather != "" {
		merged.Weather = other.Weather
	}
	if other.Group != "" {
		merged.Group = other.Group
	}
	if other.Interests != nil {
		merged.Interests = other.Interests
	}
	return merged
}

// Value implements driver.Valuer so answers persist as a JSONB column.
func (a SurveyAnswers) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *SurveyAnswers) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = SurveyAnswers{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return fmt.Errorf("cannot scan %T into SurveyAnswers", src)
}

// ScoreBreakdown maps profile key to the score it accumulated during
// derivation. Retained for transparency and debugging.
type ScoreBreakdown map[ProfileKey]int

// Value implements driver.Valuer so the breakdown persists as JSONB.
func (b ScoreBreakdown) Value() (driver.Value, error) {
	if b == nil {
		return json.Marshal(ScoreBreakdown{})
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner.
func (b *ScoreBreakdown) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = ScoreBreakdown{}
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	}
	return fmt.Errorf("cannot scan %T into ScoreBreakdown", src)
}

type User struct {
	ID             string         `json:"id" db:"id"`
	Username       string         `json:"username" db:"username"`
	Email          string         `json:"email" db:"email"`
	PasswordHash   string         `json:"-" db:"password_hash"`
	ProfilePicture *string        `json:"profile_picture" db:"profile_picture"`
	Answers        SurveyAnswers  `json:"answers" db:"answers"`
	ProfileKey     *ProfileKey    `json:"profile_key" db:"profile_key"`
	ProfileType    *string        `json:"profile_type" db:"profile_type"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown" db:"score_breakdown"`
	TotalVisits    int            `json:"total_visits" db:"total_visits"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
}
