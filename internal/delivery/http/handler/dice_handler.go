package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/domain"
	"github.com/auramap/auramap-backend/internal/usecase/dicegame"
)

type DiceHandler struct {
	diceUseCase *dicegame.DiceGameUseCase
}

func NewDiceHandler(diceUseCase *dicegame.DiceGameUseCase) *DiceHandler {
	return &DiceHandler{diceUseCase: diceUseCase}
}

type DiceInviteRequest struct {
	OpponentID string `json:"opponent_id" binding:"required"`
}

// Invite opens a pending game against the opponent
// @Summary Create dice invite
// @Tags dice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body DiceInviteRequest true "Opponent"
// @Success 201 {object} domain.DiceGame
// @Failure 409 {object} ErrorResponse
// @Router /dice/invite [post]
func (h *DiceHandler) Invite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req DiceInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	game, err := h.diceUseCase.CreateInvite(c.Request.Context(), user, req.OpponentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// Accept moves a pending game to accepted; invited player only
// @Summary Accept dice invite
// @Tags dice
// @Security BearerAuth
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} domain.DiceGame
// @Failure 403 {object} ErrorResponse
// @Router /dice/{game_id}/accept [post]
func (h *DiceHandler) Accept(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	game, err := h.diceUseCase.AcceptInvite(c.Request.Context(), c.Param("game_id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

type DiceRollRequest struct {
	CandidatePlaces []domain.Place `json:"candidate_places" binding:"required"`
}

// Roll draws the die and picks the destination
// @Summary Roll dice
// @Tags dice
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param game_id path string true "Game ID"
// @Param request body DiceRollRequest true "Candidate pool"
// @Success 200 {object} dicegame.RollResult
// @Failure 409 {object} ErrorResponse
// @Router /dice/{game_id}/roll [post]
func (h *DiceHandler) Roll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req DiceRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.diceUseCase.RollDice(c.Request.Context(), c.Param("game_id"), user.ID, req.CandidatePlaces)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get returns one game; players only
// @Summary Get dice game
// @Tags dice
// @Security BearerAuth
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} domain.DiceGame
// @Failure 404 {object} ErrorResponse
// @Router /dice/{game_id} [get]
func (h *DiceHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	game, err := h.diceUseCase.GetGame(c.Request.Context(), c.Param("game_id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// Today lists the user's games for the current day
// @Summary Today's dice games
// @Tags dice
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.DiceGame
// @Router /dice/today [get]
func (h *DiceHandler) Today(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	games, err := h.diceUseCase.GetTodayGames(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}
