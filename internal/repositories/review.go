package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// ListByToolID returns the tool's reviews with the author's username, newest first.
func (r *ReviewReadRepository) ListByToolID(ctx context.Context, toolID uuid.UUID) ([]models.ReviewWithUser, error) {
	const query = `
		SELECT r.id, r.user_id, r.tool_id, r.rating, r.review_text, r.created_at,
		       u.username AS "user.username"
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.tool_id = $1
		ORDER BY r.created_at DESC
	`

	reviews := []models.ReviewWithUser{}
	err := r.db.SelectContext(ctx, &reviews, query, toolID)
	logQuery(query, []any{toolID}, len(reviews), err)

	return reviews, classify(err)
}

// RatingsByToolID returns every rating given to the tool.
func (r *ReviewReadRepository) RatingsByToolID(ctx context.Context, toolID uuid.UUID) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE tool_id = $1`

	ratings := []int{}
	err := r.db.SelectContext(ctx, &ratings, query, toolID)
	logQuery(query, []any{toolID}, len(ratings), err)

	return ratings, classify(err)
}

type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Save inserts a review. A second review by the same user for the same tool yields ErrDuplicate.
func (r *ReviewWriteRepository) Save(ctx context.Context, userID, toolID uuid.UUID, rating int, text string) (*models.ReviewDB, error) {
	const query = `
		INSERT INTO reviews (user_id, tool_id, rating, review_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, tool_id, rating, review_text, created_at
	`
	args := []any{userID, toolID, rating, text}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)
	logQuery(query, args, review.ID, err)

	if err != nil {
		return nil, classify(err)
	}
	return &review, nil
}
