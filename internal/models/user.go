package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row mirrored from the identity provider
type UserDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Identity provider user id
	Username  string    `json:"username" db:"username"`     // Unique username
	Email     string    `json:"email" db:"email"`           // Unique email
	IsAdmin   bool      `json:"is_admin" db:"is_admin"`     // Grants access to /api/admin routes
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserMirror is the validated shape used to upsert a users row.
type UserMirror struct {
	ID       uuid.UUID `validate:"required"`
	Username string    `json:"username" validate:"min=3"`
	Email    string    `json:"email" validate:"email"`
}
