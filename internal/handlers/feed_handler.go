package handlers

import (
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.GET("/feed", h.GetFeed, sessionAuth)
}

// GetFeed returns posts authored by users the caller follows, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	userID := userIDFromContext(c)

	user, err := h.userRepository.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	posts, err := h.postRepository.GetPostsByAuthorIDs(c.Request().Context(), user.Following)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	return c.JSON(http.StatusOK, posts)
}
