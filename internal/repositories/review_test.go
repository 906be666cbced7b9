package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewReadRepository_ListByToolID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewReadRepository(db)
	toolID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`FROM reviews r JOIN users u ON u.id = r.user_id WHERE r.tool_id = \$1 ORDER BY r.created_at DESC`).
		WithArgs(toolID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tool_id", "rating", "review_text", "created_at", "user.username"}).
			AddRow(uuid.NewString(), userID.String(), toolID.String(), 5, "Great tool, works perfectly", time.Now(), "alice"))

	reviews, err := repo.ListByToolID(context.Background(), toolID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "alice", reviews[0].User.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewReadRepository_RatingsByToolID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewReadRepository(db)
	toolID := uuid.New()

	mock.ExpectQuery(`SELECT rating FROM reviews WHERE tool_id = \$1`).
		WithArgs(toolID).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(5).AddRow(3))

	ratings, err := repo.RatingsByToolID(context.Background(), toolID)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, ratings)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewWriteRepository(db)
	toolID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(userID, toolID, 5, "Great tool, works perfectly").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tool_id", "rating", "review_text", "created_at"}).
			AddRow(uuid.NewString(), userID.String(), toolID.String(), 5, "Great tool, works perfectly", time.Now()))

	review, err := repo.Save(context.Background(), userID, toolID, 5, "Great tool, works perfectly")
	require.NoError(t, err)
	assert.Equal(t, toolID, review.ToolID)

	mock.ExpectQuery(`INSERT INTO reviews`).
		WithArgs(userID, toolID, 4, "Changed my mind about it").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_id_tool_id_key"})

	review, err = repo.Save(context.Background(), userID, toolID, 4, "Changed my mind about it")
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Nil(t, review)

	assert.NoError(t, mock.ExpectationsWereMet())
}
