package models

import (
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account stored in MongoDB
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"` // Unique across all users (checked at registration)
	Password  string             `json:"-" bson:"password"`  // bcrypt hash, never serialized
	Name      string             `json:"name" bson:"name"`
	Username  string             `json:"username" bson:"username"`
	Following []string           `json:"following" bson:"following"` // Hex IDs of followed users, set semantics
	Confirmed bool               `json:"confirmed" bson:"confirmed"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionClaims are the custom claims signed into the session cookie
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
