package handlers

//go:generate mockgen -source=downloads.go -destination=downloads_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/middlewares"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

// DownloadRecorder stores a download.
type DownloadRecorder interface {
	Record(ctx context.Context, user *identity.User, req models.DownloadRequest) (*models.DownloadDB, error)
}

// NewRecordDownloadHandler records a download by the authenticated user.
// @Summary Track download
// @Tags downloads
// @Accept json
// @Produce json
// @Param request body models.DownloadRequest true "Download"
// @Success 201 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Tool not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/downloads [post]
// @Security BearerAuth
func NewRecordDownloadHandler(svc DownloadRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.DownloadRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if _, err := svc.Record(r.Context(), user, req); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, SuccessResponse{Success: true})
	}
}
