package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps domain sentinels to HTTP status codes. Unknown
// errors become opaque 500s; the sentinel text is safe to expose.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMemoryNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrGoodDeedNotFound),
		errors.Is(err, domain.ErrGameNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrDuplicateCheckIn),
		errors.Is(err, domain.ErrDuplicateInvite),
		errors.Is(err, domain.ErrGameNotReady):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidCredential),
		errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrNotYourGame):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrInsufficientCandidates):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, domain.ErrProviderUnavailable):
		status = http.StatusServiceUnavailable
		message = err.Error()
	}

	c.JSON(status, ErrorResponse{Error: message})
}

// currentUser pulls the user loaded by the auth middleware.
func currentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return nil, false
	}
	user, ok := value.(*domain.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return nil, false
	}
	return user, true
}
