package models

import (
	"time"

	"github.com/google/uuid"
)

// DownloadDB represents a row of the append-only downloads table
type DownloadDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                       // Primary key
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Downloading user
	ToolID       uuid.UUID `json:"tool_id" db:"tool_id"`             // Downloaded tool
	ButtonLabel  string    `json:"button_label" db:"button_label"`   // Label snapshot at download time
	DownloadedAt time.Time `json:"downloaded_at" db:"downloaded_at"` // Event timestamp
}

// DownloadRequest represents the JSON body for tracking a download
// swagger:model DownloadRequest
type DownloadRequest struct {
	// Tool id
	// required: true
	ToolID string `json:"tool_id" validate:"required,uuid"`

	// Label of the button that was clicked
	// required: true
	// example: Windows x64
	ButtonLabel string `json:"button_label" validate:"required"`
}

// DownloadEvent is published to the downloads topic for every recorded download.
type DownloadEvent struct {
	EventID     string `json:"event_id"`     // Unique event id
	UserID      string `json:"user_id"`      // Downloading user
	ToolID      string `json:"tool_id"`      // Downloaded tool
	ButtonLabel string `json:"button_label"` // Button label snapshot
	Timestamp   int64  `json:"timestamp"`    // Unix seconds
}
