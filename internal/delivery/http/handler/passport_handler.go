package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/usecase/passport"
)

type PassportHandler struct {
	passportUseCase *passport.PassportUseCase
}

func NewPassportHandler(passportUseCase *passport.PassportUseCase) *PassportHandler {
	return &PassportHandler{passportUseCase: passportUseCase}
}

// CheckIn records a stamp for the place
// @Summary Check in
// @Tags passport
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body passport.CheckInRequest true "Check-in data"
// @Success 201 {object} passport.CheckInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /passport/check-in [post]
func (h *PassportHandler) CheckIn(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req passport.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.passportUseCase.CheckIn(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Stamps returns the user's passport, newest first
// @Summary My stamps
// @Tags passport
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Stamp
// @Router /passport/stamps [get]
func (h *PassportHandler) Stamps(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stamps, err := h.passportUseCase.GetStamps(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stamps)
}

// FriendStamps returns recent stamps of followed users
// @Summary Friend stamps
// @Tags passport
// @Security BearerAuth
// @Produce json
// @Success 200 {array} passport.FriendStamp
// @Router /passport/friend-stamps [get]
func (h *PassportHandler) FriendStamps(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	stamps, err := h.passportUseCase.GetFriendStamps(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stamps)
}

// Summary returns passport totals and per-category counts
// @Summary Passport summary
// @Tags passport
// @Security BearerAuth
// @Produce json
// @Success 200 {object} passport.Summary
// @Router /passport/summary [get]
func (h *PassportHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.passportUseCase.GetSummary(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GoodDeeds lists the user's good-deed tokens
// @Summary My good deeds
// @Tags passport
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.GoodDeed
// @Router /passport/good-deeds [get]
func (h *PassportHandler) GoodDeeds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	deeds, err := h.passportUseCase.GetGoodDeeds(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deeds)
}

// RestaurantGoodDeeds lists tokens waiting at one restaurant
// @Summary Restaurant good deeds
// @Tags passport
// @Security BearerAuth
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Success 200 {array} domain.GoodDeed
// @Router /passport/good-deeds/restaurant/{restaurant_id} [get]
func (h *PassportHandler) RestaurantGoodDeeds(c *gin.Context) {
	deeds, err := h.passportUseCase.GetRestaurantGoodDeeds(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deeds)
}
