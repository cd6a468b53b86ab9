package handlers

import (
	"github.com/devarafat/miniblog/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// userIDFromContext returns the authenticated caller's user ID placed in the
// context by the session middleware, or "" on unprotected routes.
func userIDFromContext(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserIDKey).(string)
	return id
}
