package survey

import "github.com/auramap/auramap-backend/internal/domain"

// DeriveProfileType turns survey answers into the five-way profile
// classification. Pure function: same answers, same result.
//
// Scores are additive. Activity is the dominant signal (+6); vibe, food
// and each interest tag contribute smaller fixed increments. The winner
// is picked by iterating domain.ProfileKeys in canonical order with a
// strict > comparison, so an exact tie resolves to the earliest key.
func DeriveProfileType(answers domain.SurveyAnswers) (domain.ProfileKey, string, domain.ScoreBreakdown) {
	score := domain.ScoreBreakdown{}
	for _, k := range domain.ProfileKeys {
		score[k] = 0
	}

	if empty(answers) {
		return domain.ProfileLaptop, domain.ProfileLaptop.Label(), score
	}

	switch answers.Activity {
	case "museum":
		score[domain.ProfileCulture] += 6
	case "nature":
		score[domain.ProfileNature] += 6
	case "food":
		score[domain.ProfileFoodie] += 6
	case "games":
		score[domain.ProfileFun] += 6
	case "cafe":
		score[domain.ProfileLaptop] += 6
	}

	switch answers.Vibe {
	case "quiet":
		score[domain.ProfileNature] += 2
		score[domain.ProfileLaptop] += 2
		score[domain.ProfileCulture] += 1
	case "medium":
		score[domain.ProfileFoodie] += 1
		score[domain.ProfileFun] += 1
	case "crowded":
		score[domain.ProfileFun] += 2
		score[domain.ProfileFoodie] += 1
	}

	switch answers.Food {
	case "coffee":
		score[domain.ProfileLaptop] += 2
	case "dessert", "local", "world":
		score[domain.ProfileFoodie] += 2
	}

	// Interest tags are additive and independent; no double-counting
	// suppression.
	for _, tag := range answers.Interests {
		switch tag {
		case "art":
			score[domain.ProfileCulture] += 2
		case "books":
			score[domain.ProfileCulture] += 1
			score[domain.ProfileLaptop] += 1
		case "outdoor":
			score[domain.ProfileNature] += 2
		case "coffee":
			score[domain.ProfileLaptop] += 2
		case "food":
			score[domain.ProfileFoodie] += 2
		case "games":
			score[domain.ProfileFun] += 2
		}
	}

	best := domain.ProfileKeys[0]
	bestVal := -1
	for _, k := range domain.ProfileKeys {
		if score[k] > bestVal {
			bestVal = score[k]
			best = k
		}
	}

	return best, best.Label(), score
}

func empty(a domain.SurveyAnswers) bool {
	return a.Activity == "" && a.Vibe == "" && a.Budget == "" && a.Food == "" &&
		a.Weather == "" && a.Group == "" && len(a.Interests) == 0
}

// profileKeywords drives the places search per profile type.
var profileKeywords = map[domain.ProfileKey][]string{
	domain.ProfileCulture: {"museum", "gallery", "art cafe", "cultural center", "theater"},
	domain.ProfileNature:  {"park", "garden", "hiking trail", "beach", "picnic area", "nature reserve"},
	domain.ProfileFoodie:  {"restaurant", "cafe", "bakery", "pizza", "sushi", "kebab", "burger"},
	domain.ProfileFun:     {"arcade", "board game cafe", "gaming lounge", "entertainment"},
	domain.ProfileLaptop:  {"cafe", "coffee shop", "library", "quiet lounge"},
}

// SearchKeywords returns the provider keywords for a profile key, with
// a generic fallback for users who have not completed the survey.
func SearchKeywords(key domain.ProfileKey) []string {
	if kw, ok := profileKeywords[key]; ok {
		return kw
	}
	return []string{"cafe", "restaurant", "attraction"}
}
