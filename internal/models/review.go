package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a row of the reviews table
type ReviewDB struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Author
	ToolID     uuid.UUID `json:"tool_id" db:"tool_id"`         // Reviewed tool
	Rating     int       `json:"rating" db:"rating"`           // 1..5
	ReviewText string    `json:"review_text" db:"review_text"` // Review body
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// ReviewAuthor is the public part of the reviewing user.
type ReviewAuthor struct {
	Username string `json:"username" db:"username"`
}

// ReviewWithUser is a review joined with its author's username
// swagger:model ReviewWithUser
type ReviewWithUser struct {
	ReviewDB
	User ReviewAuthor `json:"user" db:"user"`
}

// ReviewRequest represents the JSON body for submitting a review
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Tool id
	// required: true
	ToolID string `json:"tool_id" validate:"required,uuid"`

	// Rating from 1 to 5
	// required: true
	// example: 5
	Rating int `json:"rating" validate:"min=1,max=5"`

	// Review text (at least 10 characters)
	// required: true
	// example: Great tool, works perfectly
	ReviewText string `json:"review_text" validate:"min=10"`
}
