package handlers

import (
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow HTTP requests
type FollowHandler struct {
	userRepository repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{userRepository: userRepo}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.POST("/follow/:userId", h.FollowUser, sessionAuth)
}

// FollowUser adds the target user to the caller's following set. The add is
// idempotent and the target is not checked for existence.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	userID := userIDFromContext(c)
	targetID := c.Param("userId")

	if err := h.userRepository.AddFollowing(c.Request().Context(), userID, targetID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Followed user"})
}
