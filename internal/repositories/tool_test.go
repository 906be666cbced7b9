package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toolCols = []string{"id", "title", "slug", "short_desc", "description_markdown", "images", "tags", "donation_url", "telegram_url", "created_at", "updated_at"}

func toolRow(rows *sqlmock.Rows, id uuid.UUID, slug string, images string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id.String(), "Title "+slug, slug, "short description!", "a full markdown description here", images, "{}", nil, nil, now, now)
}

func TestToolReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolReadRepository(db)

	id1, id2 := uuid.New(), uuid.New()

	t.Run("all tools", func(t *testing.T) {
		rows := sqlmock.NewRows(toolCols)
		toolRow(rows, id1, "b", `{https://e.com/1.png,https://e.com/2.png}`)
		toolRow(rows, id2, "a", "{}")

		mock.ExpectQuery(`SELECT .+ FROM tools ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(nil).
			WillReturnRows(rows)

		tools, err := repo.List(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, id1, tools[0].ID)
		assert.Equal(t, models.StringList{"https://e.com/1.png", "https://e.com/2.png"}, tools[0].Images)
		assert.Empty(t, tools[1].Images)
	})

	t.Run("limited", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM tools ORDER BY created_at DESC LIMIT \$1`).
			WithArgs(6).
			WillReturnRows(sqlmock.NewRows(toolCols))

		tools, err := repo.List(context.Background(), 6)
		require.NoError(t, err)
		assert.Empty(t, tools)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolReadRepository_GetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolReadRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`FROM tools WHERE slug = \$1`).
		WithArgs("x").
		WillReturnRows(toolRow(sqlmock.NewRows(toolCols), id, "x", "{}"))

	tool, err := repo.GetBySlug(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, id, tool.ID)

	mock.ExpectQuery(`FROM tools WHERE slug = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	tool, err = repo.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, tool)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolWriteRepository(db)
	id := uuid.New()

	req := models.ToolRequest{
		Title:               "X",
		Slug:                "x",
		ShortDesc:           "short description!",
		DescriptionMarkdown: "a full markdown description here",
	}

	mock.ExpectQuery(`INSERT INTO tools`).
		WithArgs("X", "x", "short description!", "a full markdown description here", []string{}, []string{}, (*string)(nil), (*string)(nil)).
		WillReturnRows(toolRow(sqlmock.NewRows(toolCols), id, "x", "{}"))

	tool, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, tool.ID)

	mock.ExpectQuery(`INSERT INTO tools`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"tools_slug_key\""})

	_, err = repo.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolWriteRepository(db)
	id := uuid.New()

	req := models.ToolRequest{Title: "Y", Slug: "y", ShortDesc: "short description!", DescriptionMarkdown: "a full markdown description here"}

	mock.ExpectQuery(`UPDATE tools SET .+ updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs(id, "Y", "y", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(toolRow(sqlmock.NewRows(toolCols), id, "y", "{}"))

	tool, err := repo.Update(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, "y", tool.Slug)

	mock.ExpectQuery(`UPDATE tools`).WillReturnError(sql.ErrNoRows)

	_, err = repo.Update(context.Background(), id, req)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewToolWriteRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM tools WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(`DELETE FROM tools WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
