package places

import (
	"testing"

	"github.com/auramap/auramap-backend/internal/domain"
)

func TestScorePlace(t *testing.T) {
	manyTags := make([]string, 50)
	for i := range manyTags {
		manyTags[i] = "tag"
	}

	tests := []struct {
		name    string
		place   domain.Place
		answers domain.SurveyAnswers
		key     domain.ProfileKey
		want    int
	}{
		{
			name:    "rating only",
			place:   domain.Place{Rating: 4.5},
			answers: domain.SurveyAnswers{},
			want:    9,
		},
		{
			name:    "zero rating contributes nothing",
			place:   domain.Place{Rating: 0},
			answers: domain.SurveyAnswers{},
			want:    0,
		},
		{
			name:    "profile affinity adds six",
			place:   domain.Place{Rating: 4, Profiles: []domain.ProfileKey{domain.ProfileFoodie}},
			answers: domain.SurveyAnswers{},
			key:     domain.ProfileFoodie,
			want:    14,
		},
		{
			name:    "vibe and food matches",
			place:   domain.Place{Rating: 4.5, Vibe: domain.VibeLively, Food: domain.FoodLocal},
			answers: domain.SurveyAnswers{Vibe: "hareketli", Food: "local"},
			key:     domain.ProfileFoodie,
			want:    13,
		},
		{
			name:    "interest tags add two each",
			place:   domain.Place{Rating: 3, Tags: []string{"cafe", "bakery", "museum"}},
			answers: domain.SurveyAnswers{Interests: []string{"cafe", "bakery", "absent"}},
			want:    10,
		},
		{
			name:  "saturates at one hundred",
			place: domain.Place{Rating: 5, Tags: []string{"tag"}},
			answers: domain.SurveyAnswers{
				Interests: manyTags,
			},
			want: 100,
		},
		{
			name:    "no terms at all",
			place:   domain.Place{},
			answers: domain.SurveyAnswers{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePlace(&tt.place, tt.answers, tt.key)
			if got != tt.want {
				t.Errorf("ScorePlace() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("ScorePlace() = %d, outside [0,100]", got)
			}
		})
	}
}

func TestRankPlacesStableSort(t *testing.T) {
	candidates := []domain.Place{
		{ID: "a", Rating: 3},
		{ID: "b", Rating: 5},
		{ID: "c", Rating: 3},
		{ID: "d", Rating: 4},
	}

	ranked := RankPlaces(candidates, domain.SurveyAnswers{}, "")

	wantOrder := []string{"b", "d", "a", "c"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Fatalf("ranked[%d] = %s, want %s", i, ranked[i].ID, id)
		}
	}

	// Ties keep provider order: a before c.
	if ranked[2].Score != ranked[3].Score {
		t.Fatalf("expected a tie between positions 2 and 3")
	}

	// Input slice is untouched.
	if candidates[0].ID != "a" || candidates[0].Score != 0 {
		t.Errorf("RankPlaces mutated its input: %+v", candidates[0])
	}
}
