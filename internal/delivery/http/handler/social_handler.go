package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/usecase/social"
)

type SocialHandler struct {
	socialUseCase *social.SocialUseCase
}

func NewSocialHandler(socialUseCase *social.SocialUseCase) *SocialHandler {
	return &SocialHandler{socialUseCase: socialUseCase}
}

// Follow adds a follow edge to the target user
// @Summary Follow user
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /social/follow/{user_id} [post]
func (h *SocialHandler) Follow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.socialUseCase.Follow(c.Request.Context(), user, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "followed"})
}

// Unfollow removes the follow edge
// @Summary Unfollow user
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Router /social/follow/{user_id} [delete]
func (h *SocialHandler) Unfollow(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.socialUseCase.Unfollow(c.Request.Context(), user.ID, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "unfollowed"})
}

// Followers lists the user's followers
// @Summary Followers
// @Tags social
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.User
// @Router /social/followers [get]
func (h *SocialHandler) Followers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	users, err := h.socialUseCase.Followers(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Following lists who the user follows
// @Summary Following
// @Tags social
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.User
// @Router /social/following [get]
func (h *SocialHandler) Following(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	users, err := h.socialUseCase.Following(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Search finds users by username or email substring
// @Summary Search users
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param q query string true "Query"
// @Success 200 {array} domain.User
// @Router /social/search [get]
func (h *SocialHandler) Search(c *gin.Context) {
	users, err := h.socialUseCase.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns a user's public profile
// @Summary User profile
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /social/users/{user_id} [get]
func (h *SocialHandler) GetUser(c *gin.Context) {
	user, err := h.socialUseCase.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateMemory posts a new memory
// @Summary Create memory
// @Tags social
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body social.CreateMemoryRequest true "Memory data"
// @Success 201 {object} domain.Memory
// @Failure 400 {object} ErrorResponse
// @Router /social/memories [post]
func (h *SocialHandler) CreateMemory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req social.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	memory, err := h.socialUseCase.CreateMemory(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, memory)
}

// Feed returns own and followed users' memories, newest first
// @Summary Feed
// @Tags social
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Memory
// @Router /social/feed [get]
func (h *SocialHandler) Feed(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	feed, err := h.socialUseCase.Feed(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// Like adds the user to a memory's likes set
// @Summary Like memory
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param memory_id path string true "Memory ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /social/memories/{memory_id}/like [post]
func (h *SocialHandler) Like(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.socialUseCase.LikeMemory(c.Request.Context(), user, c.Param("memory_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "liked"})
}

// Unlike removes the user from a memory's likes set
// @Summary Unlike memory
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param memory_id path string true "Memory ID"
// @Success 200 {object} SuccessResponse
// @Router /social/memories/{memory_id}/like [delete]
func (h *SocialHandler) Unlike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.socialUseCase.UnlikeMemory(c.Request.Context(), user.ID, c.Param("memory_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "unliked"})
}

// Comment appends a comment to a memory
// @Summary Comment on memory
// @Tags social
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param memory_id path string true "Memory ID"
// @Param request body social.CommentRequest true "Comment text"
// @Success 201 {object} domain.Comment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /social/memories/{memory_id}/comments [post]
func (h *SocialHandler) Comment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req social.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	comment, err := h.socialUseCase.AddComment(c.Request.Context(), user, c.Param("memory_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
