package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/usecase/survey"
)

type SurveyHandler struct {
	surveyUseCase *survey.SurveyUseCase
}

func NewSurveyHandler(surveyUseCase *survey.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{surveyUseCase: surveyUseCase}
}

// Submit merges new answers and re-derives the profile type
// @Summary Submit survey
// @Tags survey
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body survey.SubmitRequest true "Survey answers"
// @Success 200 {object} survey.SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Router /survey [post]
func (h *SurveyHandler) Submit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req survey.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.surveyUseCase.Submit(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reset clears the answers and the derived profile
// @Summary Reset survey
// @Tags survey
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /survey [delete]
func (h *SurveyHandler) Reset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.surveyUseCase.Reset(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "survey reset"})
}

// GetProfile returns the stored profile state
// @Summary Get profile
// @Tags survey
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Router /survey/profile [get]
func (h *SurveyHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.surveyUseCase.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
