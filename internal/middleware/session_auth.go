package middleware

import (
	"net/http"

	"github.com/devarafat/miniblog/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the name of the server-signed session cookie.
const SessionCookieName = "session"

// ContextUserIDKey is the echo context key under which the authenticated
// user's ID is stored for downstream handlers.
const ContextUserIDKey = "userID"

// SessionAuth verifies the signed session cookie and threads the caller's
// identity through the request context. Requests without a valid session are
// rejected with 401.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Authentication required"})
			}

			claims := &models.SessionClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Authentication required"})
			}

			c.Set(ContextUserIDKey, claims.UserID)

			return next(c)
		}
	}
}
