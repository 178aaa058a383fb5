package domain

import "testing"

func TestDeriveVibe(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Vibe
	}{
		{"night club is lively", []string{"night_club", "restaurant"}, VibeLively},
		{"bar is lively", []string{"bar"}, VibeLively},
		{"bar wins over park", []string{"park", "bar"}, VibeLively},
		{"library is quiet", []string{"library"}, VibeQuiet},
		{"park is quiet", []string{"park", "tourist_attraction"}, VibeQuiet},
		{"plain restaurant is medium", []string{"restaurant"}, VibeMedium},
		{"no tags is medium", nil, VibeMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveVibe(tt.tags); got != tt.want {
				t.Errorf("DeriveVibe(%v) = %s, want %s", tt.tags, got, tt.want)
			}
		})
	}
}

func TestDeriveFood(t *testing.T) {
	tests := []struct {
		name      string
		tags      []string
		placeName string
		want      FoodType
	}{
		{"bakery is dessert", []string{"bakery"}, "Fırın", FoodDessert},
		{"tart in name is dessert", []string{"restaurant"}, "Tart House", FoodDessert},
		{"kek in name is dessert", nil, "Kek Atölyesi", FoodDessert},
		{"cafe is coffee", []string{"cafe"}, "Moda Cafe", FoodCoffee},
		{"kahve in name is coffee", nil, "Kahve Durağı", FoodCoffee},
		{"kebab in name is local", nil, "Adana Kebab", FoodLocal},
		{"türk in name is local", nil, "Türk Mutfağı", FoodLocal},
		{"plain restaurant is world", []string{"restaurant"}, "Bistro", FoodWorld},
		{"nothing matches defaults local", nil, "Mekan", FoodLocal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveFood(tt.tags, tt.placeName); got != tt.want {
				t.Errorf("DeriveFood(%v, %q) = %s, want %s", tt.tags, tt.placeName, got, tt.want)
			}
		})
	}
}

func TestSurveyAnswersMerge(t *testing.T) {
	base := SurveyAnswers{
		Activity:  "museum",
		Vibe:      "quiet",
		Interests: []string{"art"},
	}

	merged := base.Merge(SurveyAnswers{
		Activity:  "food",
		Food:      "local",
		Interests: []string{"food", "games"},
	})

	if merged.Activity != "food" {
		t.Errorf("Activity = %s, want overwritten to food", merged.Activity)
	}
	if merged.Vibe != "quiet" {
		t.Errorf("Vibe = %s, want preserved quiet", merged.Vibe)
	}
	if merged.Food != "local" {
		t.Errorf("Food = %s, want local", merged.Food)
	}
	if len(merged.Interests) != 2 || merged.Interests[0] != "food" {
		t.Errorf("Interests = %v, want replaced", merged.Interests)
	}

	// The receiver stays untouched.
	if base.Activity != "museum" || len(base.Interests) != 1 {
		t.Errorf("Merge mutated its receiver: %+v", base)
	}
}

func TestDiceCategories(t *testing.T) {
	for face := 1; face <= 6; face++ {
		cat, ok := DiceCategories[face]
		if !ok {
			t.Fatalf("no category for face %d", face)
		}
		if cat.Name == "" || cat.Emoji == "" {
			t.Errorf("face %d category incomplete: %+v", face, cat)
		}
	}
	if len(DiceCategories[6].Types) != 0 {
		t.Errorf("face 6 must have an empty type filter, got %v", DiceCategories[6].Types)
	}
}

func TestStampEmoji(t *testing.T) {
	for _, key := range ProfileKeys {
		if StampEmoji(key) == "" {
			t.Errorf("StampEmoji(%s) is empty", key)
		}
		if StampName(key) == "" {
			t.Errorf("StampName(%s) is empty", key)
		}
	}
}
