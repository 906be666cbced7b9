package services

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/metrics"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
)

// ErrAlreadyReviewed is returned for a second review of the same tool by the same user.
var ErrAlreadyReviewed = errors.New("You have already reviewed this tool")

// ReviewReader lists reviews.
type ReviewReader interface {
	ListByToolID(ctx context.Context, toolID uuid.UUID) ([]models.ReviewWithUser, error)
}

// ReviewWriter inserts reviews.
type ReviewWriter interface {
	Save(ctx context.Context, userID, toolID uuid.UUID, rating int, text string) (*models.ReviewDB, error)
}

// ToolLookup resolves a tool by id.
type ToolLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ToolDB, error)
}

// MirrorEnsurer makes sure the acting user has a users row.
type MirrorEnsurer interface {
	EnsureMirror(ctx context.Context, user *identity.User) error
}

// ReviewService reads and submits reviews.
type ReviewService struct {
	reader ReviewReader
	writer ReviewWriter
	tools  ToolLookup
	users  MirrorEnsurer
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reader ReviewReader, writer ReviewWriter, tools ToolLookup, users MirrorEnsurer) *ReviewService {
	return &ReviewService{reader: reader, writer: writer, tools: tools, users: users}
}

// ListByTool returns the tool's reviews with author usernames, newest first.
func (s *ReviewService) ListByTool(ctx context.Context, toolID uuid.UUID) ([]models.ReviewWithUser, error) {
	reviews, err := s.reader.ListByToolID(ctx, toolID)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "tool_id", toolID, "error", err)
		return nil, err
	}
	return reviews, nil
}

// Submit validates and stores a review by user.
func (s *ReviewService) Submit(ctx context.Context, user *identity.User, req models.ReviewRequest) (*models.ReviewDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	toolID, err := uuid.Parse(req.ToolID)
	if err != nil {
		return nil, &validation.Error{Field: "tool_id", Message: "tool_id must be a valid id"}
	}

	if err := lookupTool(ctx, s.tools, toolID); err != nil {
		return nil, err
	}
	if err := s.users.EnsureMirror(ctx, user); err != nil {
		return nil, err
	}

	review, err := s.writer.Save(ctx, user.ID, toolID, req.Rating, req.ReviewText)
	if errors.Is(err, repositories.ErrDuplicate) {
		metrics.RecordReview("duplicate")
		return nil, ErrAlreadyReviewed
	}
	if err != nil {
		metrics.RecordReview("error")
		logger.Log.Errorw("failed to save review", "user_id", user.ID, "tool_id", toolID, "error", err)
		return nil, err
	}

	metrics.RecordReview("created")
	logger.Log.Infow("review submitted", "review_id", review.ID, "user_id", user.ID, "tool_id", toolID, "rating", review.Rating)
	return review, nil
}

func lookupTool(ctx context.Context, tools ToolLookup, id uuid.UUID) error {
	_, err := tools.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrToolNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get tool", "tool_id", id, "error", err)
		return err
	}
	return nil
}
