package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

type DownloadButtonReadRepository struct {
	db *sqlx.DB
}

func NewDownloadButtonReadRepository(db *sqlx.DB) *DownloadButtonReadRepository {
	return &DownloadButtonReadRepository{db: db}
}

// ListByToolID returns the tool's buttons in display order.
func (r *DownloadButtonReadRepository) ListByToolID(ctx context.Context, toolID uuid.UUID) ([]models.DownloadButtonDB, error) {
	const query = `
		SELECT id, tool_id, label, url, "order"
		FROM download_buttons
		WHERE tool_id = $1
		ORDER BY "order", id
	`

	buttons := []models.DownloadButtonDB{}
	err := r.db.SelectContext(ctx, &buttons, query, toolID)
	logQuery(query, []any{toolID}, len(buttons), err)

	return buttons, classify(err)
}

type DownloadButtonWriteRepository struct {
	db *sqlx.DB
}

func NewDownloadButtonWriteRepository(db *sqlx.DB) *DownloadButtonWriteRepository {
	return &DownloadButtonWriteRepository{db: db}
}

func (r *DownloadButtonWriteRepository) DeleteByToolID(ctx context.Context, toolID uuid.UUID) error {
	const query = `DELETE FROM download_buttons WHERE tool_id = $1`

	res, err := r.db.ExecContext(ctx, query, toolID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{toolID}, rowsAffected, err)

	return classify(err)
}

// InsertMany inserts all buttons in one statement. Callers set Order.
func (r *DownloadButtonWriteRepository) InsertMany(ctx context.Context, buttons []models.DownloadButtonDB) error {
	if len(buttons) == 0 {
		return nil
	}

	const query = `
		INSERT INTO download_buttons (tool_id, label, url, "order")
		VALUES (:tool_id, :label, :url, :order)
	`

	res, err := r.db.NamedExecContext(ctx, query, buttons)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{buttons}, rowsAffected, err)

	return classify(err)
}
