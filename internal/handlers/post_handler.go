package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/models"
	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MediaUploader pushes image bytes to an external hosting service and returns
// a durable public URL.
type MediaUploader interface {
	Upload(ctx context.Context, r io.Reader) (string, error)
}

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	mediaUploader  MediaUploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploader MediaUploader) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		mediaUploader:  uploader,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.POST("/posts", h.CreatePost, sessionAuth)
	e.GET("/posts", h.GetPosts)
	e.GET("/posts/:id", h.GetPost)
	e.DELETE("/posts/:id", h.DeletePost, sessionAuth)
}

// CreatePost publishes a new post from a multipart form. The image part is
// optional; when present it is uploaded to the media service first and only
// the resulting URL is stored.
func (h *PostHandler) CreatePost(c echo.Context) error {
	authorID := userIDFromContext(c)

	title := c.FormValue("title")
	content := c.FormValue("content")
	if title == "" || content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Title and content are required"})
	}

	imageURL := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Failed to read image"})
		}
		defer file.Close()

		imageURL, err = h.mediaUploader.Upload(c.Request().Context(), file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Failed to upload image"})
		}
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		Image:    imageURL,
		AuthorID: authorID,
		Likes:    []string{},
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Post created", "id": post.ID.Hex()})
}

// GetPosts retrieves every post, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the caller. The delete filter matches
// both ID and author, so a missing post and someone else's post fail the same
// way and leak nothing about which it was.
func (h *PostHandler) DeletePost(c echo.Context) error {
	authorID := userIDFromContext(c)

	deleted, err := h.postRepository.DeletePostByAuthor(c.Request().Context(), c.Param("id"), authorID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}
	if !deleted {
		return c.JSON(http.StatusForbidden, echo.Map{"msg": "Unauthorized or post not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Post deleted"})
}
