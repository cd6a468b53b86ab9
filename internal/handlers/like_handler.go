package handlers

import (
	"errors"
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{postRepository: postRepo}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.POST("/likes/:postId", h.ToggleLike, sessionAuth)
}

// ToggleLike likes the post when the caller has not liked it yet and unlikes
// it otherwise. Read-then-write; concurrent toggles from the same user are
// not serialized.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := userIDFromContext(c)
	postID := c.Param("postId")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	liked := false
	for _, id := range post.Likes {
		if id == userID {
			liked = true
			break
		}
	}

	if liked {
		if err := h.postRepository.RemoveLike(c.Request().Context(), postID, userID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"msg": "Post unliked"})
	}

	if err := h.postRepository.AddLike(c.Request().Context(), postID, userID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Post liked"})
}
