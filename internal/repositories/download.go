package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

type DownloadReadRepository struct {
	db *sqlx.DB
}

func NewDownloadReadRepository(db *sqlx.DB) *DownloadReadRepository {
	return &DownloadReadRepository{db: db}
}

func (r *DownloadReadRepository) CountByToolID(ctx context.Context, toolID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM downloads WHERE tool_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, toolID)
	logQuery(query, []any{toolID}, count, err)

	return count, classify(err)
}

type DownloadWriteRepository struct {
	db *sqlx.DB
}

func NewDownloadWriteRepository(db *sqlx.DB) *DownloadWriteRepository {
	return &DownloadWriteRepository{db: db}
}

// Save appends a download row.
func (r *DownloadWriteRepository) Save(ctx context.Context, userID, toolID uuid.UUID, buttonLabel string) (*models.DownloadDB, error) {
	const query = `
		INSERT INTO downloads (user_id, tool_id, button_label)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, tool_id, button_label, downloaded_at
	`
	args := []any{userID, toolID, buttonLabel}

	var download models.DownloadDB
	err := r.db.GetContext(ctx, &download, query, args...)
	logQuery(query, args, download.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &download, nil
}
