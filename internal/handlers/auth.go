package handlers

import (
	"net/http"
	"time"
	"unicode"

	"github.com/devarafat/miniblog/backend/internal/middleware"
	"github.com/devarafat/miniblog/backend/internal/models"
	"github.com/devarafat/miniblog/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 72 * time.Hour

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	userRepository repositories.UserRepository
	sessionSecret  string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		sessionSecret:  sessionSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo, sessionAuth echo.MiddlewareFunc) {
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout, sessionAuth)
}

// Register creates a new account. Registration implies login: a session
// cookie is issued immediately on success.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": err.Error()})
	}

	// Check-then-insert; not atomic, mirrors the single-node deployment model.
	if _, err := h.userRepository.GetUserByEmail(c.Request().Context(), req.Email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Email already exists"})
	}

	if !isStrongPassword(req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Weak password. Use upper, lower, digit, and special char"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Failed to hash password"})
	}

	user := &models.User{
		Email:     req.Email,
		Password:  string(hashedPassword),
		Name:      req.Name,
		Username:  req.Username,
		Following: []string{},
		Confirmed: false,
	}

	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": err.Error()})
	}

	if err := h.setSessionCookie(c, user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Failed to establish session"})
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "User registered successfully"})
}

// Login authenticates by email and password. Unknown email and wrong password
// produce identical responses to avoid account enumeration.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Invalid request payload"})
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": err.Error()})
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"msg": "Invalid credentials"})
	}

	if err := h.setSessionCookie(c, user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Failed to establish session"})
	}

	return c.JSON(http.StatusOK, echo.Map{"msg": "Login successful"})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, echo.Map{"msg": "Logged out"})
}

// setSessionCookie signs a session token for the user and attaches it to the
// response as an HttpOnly cookie.
func (h *AuthHandler) setSessionCookie(c echo.Context, user *models.User) error {
	claims := &models.SessionClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.sessionSecret))
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// isStrongPassword enforces the registration password policy: minimum 8
// characters with at least one uppercase letter, one lowercase letter, one
// digit and one symbol.
func isStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
