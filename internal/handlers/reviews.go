package handlers

//go:generate mockgen -source=reviews.go -destination=reviews_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/middlewares"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

// ReviewLister lists the reviews of a tool.
type ReviewLister interface {
	ListByTool(ctx context.Context, toolID uuid.UUID) ([]models.ReviewWithUser, error)
}

// ReviewSubmitter stores a review.
type ReviewSubmitter interface {
	Submit(ctx context.Context, user *identity.User, req models.ReviewRequest) (*models.ReviewDB, error)
}

// NewListReviewsHandler returns a tool's reviews.
// @Summary List reviews
// @Description Reviews of a tool with the author's username, newest first
// @Tags reviews
// @Produce json
// @Param toolId path string true "Tool id"
// @Success 200 {array} models.ReviewWithUser
// @Failure 400 {object} handlers.ErrorResponse "Invalid tool id"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/reviews/{toolId} [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolID, err := uuid.Parse(chi.URLParam(r, "toolId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid tool id")
			return
		}

		reviews, err := svc.ListByTool(r.Context(), toolID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewSubmitReviewHandler stores a review by the authenticated user.
// @Summary Submit review
// @Description One review per user and tool; a second attempt fails with 400
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body models.ReviewRequest true "Review"
// @Success 201 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation error or already reviewed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Tool not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/reviews [post]
// @Security BearerAuth
func NewSubmitReviewHandler(svc ReviewSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.ReviewRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if _, err := svc.Submit(r.Context(), user, req); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, SuccessResponse{Success: true})
	}
}
