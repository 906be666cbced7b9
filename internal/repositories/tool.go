package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

const toolColumns = `id, title, slug, short_desc, description_markdown, images, tags, donation_url, telegram_url, created_at, updated_at`

// ToolReadRepository handles tool read operations
type ToolReadRepository struct {
	db *sqlx.DB
}

func NewToolReadRepository(db *sqlx.DB) *ToolReadRepository {
	return &ToolReadRepository{db: db}
}

// List returns tools newest first. A limit of 0 returns every tool.
func (r *ToolReadRepository) List(ctx context.Context, limit int) ([]models.ToolDB, error) {
	const query = `
		SELECT ` + toolColumns + `
		FROM tools
		ORDER BY created_at DESC
		LIMIT $1
	`

	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	tools := []models.ToolDB{}
	err := r.db.SelectContext(ctx, &tools, query, limitArg)
	logQuery(query, []any{limitArg}, len(tools), err)

	return tools, classify(err)
}

func (r *ToolReadRepository) GetBySlug(ctx context.Context, slug string) (*models.ToolDB, error) {
	const query = `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE slug = $1
	`

	var tool models.ToolDB
	err := r.db.GetContext(ctx, &tool, query, slug)
	logQuery(query, []any{slug}, tool.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &tool, nil
}

func (r *ToolReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ToolDB, error) {
	const query = `
		SELECT ` + toolColumns + `
		FROM tools
		WHERE id = $1
	`

	var tool models.ToolDB
	err := r.db.GetContext(ctx, &tool, query, id)
	logQuery(query, []any{id}, tool.Slug, err)

	if err != nil {
		return nil, classify(err)
	}
	return &tool, nil
}

// ToolWriteRepository handles tool write operations
type ToolWriteRepository struct {
	db *sqlx.DB
}

func NewToolWriteRepository(db *sqlx.DB) *ToolWriteRepository {
	return &ToolWriteRepository{db: db}
}

func toolArgs(req models.ToolRequest) []any {
	images, tags := req.Images, req.Tags
	if images == nil {
		images = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	return []any{req.Title, req.Slug, req.ShortDesc, req.DescriptionMarkdown, images, tags, req.DonationURL, req.TelegramURL}
}

// Create inserts a tool row. A taken slug yields ErrDuplicate.
func (r *ToolWriteRepository) Create(ctx context.Context, req models.ToolRequest) (*models.ToolDB, error) {
	const query = `
		INSERT INTO tools (title, slug, short_desc, description_markdown, images, tags, donation_url, telegram_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + toolColumns

	args := toolArgs(req)

	var tool models.ToolDB
	err := r.db.GetContext(ctx, &tool, query, args...)
	logQuery(query, args, tool.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &tool, nil
}

// Update overwrites every writable column of the tool and bumps updated_at.
func (r *ToolWriteRepository) Update(ctx context.Context, id uuid.UUID, req models.ToolRequest) (*models.ToolDB, error) {
	const query = `
		UPDATE tools
		SET title = $2, slug = $3, short_desc = $4, description_markdown = $5,
		    images = $6, tags = $7, donation_url = $8, telegram_url = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + toolColumns

	args := append([]any{id}, toolArgs(req)...)

	var tool models.ToolDB
	err := r.db.GetContext(ctx, &tool, query, args...)
	logQuery(query, args, tool.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &tool, nil
}

// Delete removes the tool; buttons, downloads and reviews go with it through ON DELETE CASCADE.
func (r *ToolWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM tools WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return classify(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
