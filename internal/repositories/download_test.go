package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadRepositories(t *testing.T) {
	db, mock := newMockDB(t)
	readRepo := NewDownloadReadRepository(db)
	writeRepo := NewDownloadWriteRepository(db)
	toolID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`INSERT INTO downloads \(user_id, tool_id, button_label\)`).
		WithArgs(userID, toolID, "Main").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "tool_id", "button_label", "downloaded_at"}).
			AddRow(uuid.NewString(), userID.String(), toolID.String(), "Main", time.Now()))

	download, err := writeRepo.Save(context.Background(), userID, toolID, "Main")
	require.NoError(t, err)
	assert.Equal(t, "Main", download.ButtonLabel)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM downloads WHERE tool_id = \$1`).
		WithArgs(toolID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := readRepo.CountByToolID(context.Background(), toolID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_Totals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM tools\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total_tools", "total_downloads", "total_reviews", "average_rating"}).
			AddRow(3, 10, 4, 4.25))

	stats, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalTools)
	assert.Equal(t, int64(10), stats.TotalDownloads)
	assert.Equal(t, int64(4), stats.TotalReviews)
	assert.Equal(t, 4.25, stats.AverageRating)

	assert.NoError(t, mock.ExpectationsWereMet())
}
