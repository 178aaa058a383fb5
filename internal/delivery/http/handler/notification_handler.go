package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/usecase/notification"
)

type NotificationHandler struct {
	emitter *notification.Emitter
}

func NewNotificationHandler(emitter *notification.Emitter) *NotificationHandler {
	return &NotificationHandler{emitter: emitter}
}

// List returns the user's notifications, newest first
// @Summary List notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	notifications, err := h.emitter.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead flips the read flag of one notification
// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param notification_id path string true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{notification_id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.emitter.MarkRead(c.Request.Context(), user.ID, c.Param("notification_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "marked as read"})
}
