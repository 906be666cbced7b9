package handlers

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/middlewares"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

// StatsGetter computes catalog-wide aggregates.
type StatsGetter interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// ToolEditor creates, updates and deletes tools.
type ToolEditor interface {
	Create(ctx context.Context, req models.ToolRequest) (*models.ToolWithStats, error)
	Update(ctx context.Context, id uuid.UUID, req models.ToolRequest) (*models.ToolWithStats, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TestLoginResponse echoes the admin identity
// swagger:model TestLoginResponse
type TestLoginResponse struct {
	// example: true
	OK bool `json:"ok"`

	// Admin email
	// example: admin@example.com
	Admin string `json:"admin"`

	// example: Admin authentication successful
	Message string `json:"message"`
}

// NewTestLoginHandler confirms that the caller passed the admin guard.
// @Summary Test admin login
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.TestLoginResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /api/admin/test-login [get]
// @Security BearerAuth
func NewTestLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeJSON(w, http.StatusOK, TestLoginResponse{
			OK:      true,
			Admin:   user.Email,
			Message: "Admin authentication successful",
		})
	}
}

// NewAdminListToolsHandler returns all tools for the admin panel.
// @Summary List tools (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} models.ToolWithStats
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/tools [get]
// @Security BearerAuth
func NewAdminListToolsHandler(svc ToolLister) http.HandlerFunc {
	return NewListToolsHandler(svc)
}

// NewAdminStatsHandler returns totals across tools, downloads and reviews.
// @Summary Catalog stats
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminStats
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// NewCreateToolHandler creates a tool and its download buttons.
// @Summary Create tool
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ToolRequest true "Tool"
// @Success 201 {object} models.ToolWithStats
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/tools [post]
// @Security BearerAuth
func NewCreateToolHandler(svc ToolEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ToolRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tool, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, tool)
	}
}

// NewUpdateToolHandler overwrites a tool and replaces its download buttons.
// @Summary Update tool
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tool id"
// @Param request body models.ToolRequest true "Tool"
// @Success 200 {object} models.ToolWithStats
// @Failure 400 {object} handlers.ErrorResponse "Validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Tool not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/tools/{id} [put]
// @Security BearerAuth
func NewUpdateToolHandler(svc ToolEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := toolIDParam(w, r)
		if !ok {
			return
		}

		var req models.ToolRequest
		if !decodeBody(w, r, &req) {
			return
		}

		tool, err := svc.Update(r.Context(), id, req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tool)
	}
}

// NewDeleteToolHandler deletes a tool with its buttons, downloads and reviews.
// @Summary Delete tool
// @Tags admin
// @Produce json
// @Param id path string true "Tool id"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid tool id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Tool not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/admin/tools/{id} [delete]
// @Security BearerAuth
func NewDeleteToolHandler(svc ToolEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := toolIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func toolIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tool id")
		return uuid.Nil, false
	}
	return id, true
}
