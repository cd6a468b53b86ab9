package handlers

import (
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/models"
	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.POST("/comments/:postId", h.AddComment, sessionAuth)
	e.GET("/comments/:postId", h.GetComments)
}

// AddComment adds a comment to a post. The post is not checked for existence;
// a comment on an unknown post ID is stored as-is.
func (h *CommentHandler) AddComment(c echo.Context) error {
	userID := userIDFromContext(c)
	postID := c.Param("postId")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": err.Error()})
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Comment added"})
}

// GetComments retrieves all comments for a post
func (h *CommentHandler) GetComments(c echo.Context) error {
	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}
	return c.JSON(http.StatusOK, comments)
}
