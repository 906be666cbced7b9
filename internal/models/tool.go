package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// StringList maps a PostgreSQL text[] column. It always encodes to a JSON array, never null.
type StringList []string

// Scan decodes the text representation of a text[] value.
func (l *StringList) Scan(src any) error {
	var out []string
	if err := pgtype.NewMap().SQLScanner(&out).Scan(src); err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalJSON encodes a nil list as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// ToolDB represents a row of the tools table
type ToolDB struct {
	ID                  uuid.UUID  `json:"id" db:"id"`                                     // Primary key
	Title               string     `json:"title" db:"title"`                               // Display title
	Slug                string     `json:"slug" db:"slug"`                                 // Unique URL key
	ShortDesc           string     `json:"short_desc" db:"short_desc"`                     // Card description
	DescriptionMarkdown string     `json:"description_markdown" db:"description_markdown"` // Full description, markdown
	Images              StringList `json:"images" db:"images"`                             // Ordered image URLs
	Tags                StringList `json:"tags" db:"tags"`                                 // Free-text tags
	DonationURL         *string    `json:"donation_url" db:"donation_url"`                 // Optional donation link
	TelegramURL         *string    `json:"telegram_url" db:"telegram_url"`                 // Optional community link
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`                     // Creation timestamp
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`                     // Last update timestamp
}

// ToolStats holds the values derived from downloads and reviews at read time.
type ToolStats struct {
	DownloadCount int64   `json:"download_count" example:"42"`
	AverageRating float64 `json:"average_rating" example:"4.5"`
	ReviewCount   int64   `json:"review_count" example:"8"`
}

// ToolWithStats is a tool joined with its download buttons and derived stats
// swagger:model ToolWithStats
type ToolWithStats struct {
	ToolDB
	DownloadButtons []DownloadButtonDB `json:"download_buttons"`
	ToolStats
}

// ToolRequest represents the JSON body for creating or updating a tool
// swagger:model ToolRequest
type ToolRequest struct {
	// Title
	// required: true
	// example: Cheat Engine
	Title string `json:"title" validate:"required"`

	// URL key, lowercase letters, digits and hyphens
	// required: true
	// example: cheat-engine
	Slug string `json:"slug" validate:"required,slug"`

	// Short description (at least 10 characters)
	// required: true
	ShortDesc string `json:"short_desc" validate:"min=10"`

	// Full markdown description (at least 20 characters)
	// required: true
	DescriptionMarkdown string `json:"description_markdown" validate:"min=20"`

	// Image URLs
	Images []string `json:"images" validate:"dive,url"`

	// Tags
	Tags []string `json:"tags"`

	// Optional donation link
	DonationURL *string `json:"donation_url" validate:"omitempty,url"`

	// Optional community link
	TelegramURL *string `json:"telegram_url" validate:"omitempty,url"`

	// Download buttons; replaces the existing set on update
	DownloadButtons []DownloadButtonRequest `json:"downloadButtons"`
}
