package models

import "github.com/google/uuid"

// DownloadButtonDB represents a row of the download_buttons table
type DownloadButtonDB struct {
	ID     uuid.UUID `json:"id" db:"id"`           // Primary key
	ToolID uuid.UUID `json:"tool_id" db:"tool_id"` // Owning tool
	Label  string    `json:"label" db:"label"`     // Button caption
	URL    string    `json:"url" db:"url"`         // Download target
	Order  int       `json:"order" db:"order"`     // Display position, 0..n-1
}

// DownloadButtonRequest is one entry of ToolRequest.DownloadButtons.
// Order is accepted for compatibility but replaced by the list index.
type DownloadButtonRequest struct {
	Label string `json:"label" validate:"required"`
	URL   string `json:"url" validate:"url"`
	Order int    `json:"order,omitempty"`
}

// Blank reports whether the entry is an empty form row that should be dropped.
func (b DownloadButtonRequest) Blank() bool {
	return b.Label == "" || b.URL == ""
}
