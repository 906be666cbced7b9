package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

// StatsRepository computes catalog-wide aggregates.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Totals(ctx context.Context) (*models.AdminStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM tools)     AS total_tools,
			(SELECT COUNT(*) FROM downloads) AS total_downloads,
			(SELECT COUNT(*) FROM reviews)   AS total_reviews,
			(SELECT COALESCE(AVG(rating), 0)::float8 FROM reviews) AS average_rating
	`

	var row struct {
		TotalTools     int64   `db:"total_tools"`
		TotalDownloads int64   `db:"total_downloads"`
		TotalReviews   int64   `db:"total_reviews"`
		AverageRating  float64 `db:"average_rating"`
	}
	err := r.db.GetContext(ctx, &row, query)
	logQuery(query, nil, row, err)

	if err != nil {
		return nil, classify(err)
	}

	return &models.AdminStats{
		TotalTools:     row.TotalTools,
		TotalDownloads: row.TotalDownloads,
		TotalReviews:   row.TotalReviews,
		AverageRating:  row.AverageRating,
	}, nil
}
