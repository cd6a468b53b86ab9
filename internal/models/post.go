package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post stored in MongoDB
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image" bson:"image"` // Hosted image URL, empty if the post has no image
	AuthorID  string             `json:"author_id" bson:"author_id"`
	Likes     []string           `json:"likes" bson:"likes"` // Hex IDs of users who liked the post, set semantics
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
