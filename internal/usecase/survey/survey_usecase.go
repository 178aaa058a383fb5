package survey

import (
	"context"
	"fmt"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/repository"
)

type SurveyUseCase struct {
	userRepo repository.UserRepository
}

func NewSurveyUseCase(userRepo repository.UserRepository) *SurveyUseCase {
	return &SurveyUseCase{userRepo: userRepo}
}

// SubmitRequest carries the survey selections. All fields are optional;
// a re-submission merges over the stored answers field by field.
type SubmitRequest struct {
	Activity  string   `json:"activity" binding:"omitempty,oneof=museum nature food games cafe"`
	Vibe      string   `json:"vibe" binding:"omitempty,oneof=quiet medium crowded"`
	Budget    string   `json:"budget"`
	Food      string   `json:"food" binding:"omitempty,oneof=coffee dessert local world"`
	Weather   string   `json:"weather"`
	Group     string   `json:"group"`
	Interests []string `json:"interests"`
}

// SubmitResponse is the derived classification.
type SubmitResponse struct {
	ProfileKey     domain.ProfileKey     `json:"profile_key"`
	ProfileType    string                `json:"profile_type"`
	ScoreBreakdown domain.ScoreBreakdown `json:"score_breakdown"`
}

// Submit merges the new answers over the stored ones, re-derives the
// profile type and persists both.
func (uc *SurveyUseCase) Submit(ctx context.Context, userID string, req *SubmitRequest) (*SubmitResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := user.Answers.Merge(domain.SurveyAnswers{
		Activity:  req.Activity,
		Vibe:      req.Vibe,
		Budget:    req.Budget,
		Food:      req.Food,
		Weather:   req.Weather,
		Group:     req.Group,
		Interests: req.Interests,
	})

	key, label, breakdown := DeriveProfileType(merged)

	if err := uc.userRepo.UpdateSurvey(ctx, userID, merged, key, label, breakdown); err != nil {
		return nil, fmt.Errorf("failed to save survey: %w", err)
	}

	return &SubmitResponse{
		ProfileKey:     key,
		ProfileType:    label,
		ScoreBreakdown: breakdown,
	}, nil
}

// Reset clears answers and the derived profile, keeping identity fields.
func (uc *SurveyUseCase) Reset(ctx context.Context, userID string) error {
	return uc.userRepo.ResetSurvey(ctx, userID)
}

// GetProfile returns the user's stored profile state.
func (uc *SurveyUseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}
