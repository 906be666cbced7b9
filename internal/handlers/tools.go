package handlers

//go:generate mockgen -source=tools.go -destination=tools_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

// ToolLister lists every tool with stats.
type ToolLister interface {
	List(ctx context.Context) ([]models.ToolWithStats, error)
}

// FeaturedLister lists the newest tools with stats.
type FeaturedLister interface {
	Featured(ctx context.Context) ([]models.ToolWithStats, error)
}

// ToolGetter fetches one tool with stats.
type ToolGetter interface {
	GetBySlug(ctx context.Context, slug string) (*models.ToolWithStats, error)
}

// NewListToolsHandler returns all tools.
// @Summary List tools
// @Description All tools with download buttons, download count, average rating and review count, newest first
// @Tags tools
// @Produce json
// @Success 200 {array} models.ToolWithStats
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/tools [get]
func NewListToolsHandler(svc ToolLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tools)
	}
}

// NewFeaturedToolsHandler returns the six newest tools.
// @Summary Featured tools
// @Description The six newest tools with stats
// @Tags tools
// @Produce json
// @Success 200 {array} models.ToolWithStats
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/tools/featured [get]
func NewFeaturedToolsHandler(svc FeaturedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := svc.Featured(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tools)
	}
}

// NewGetToolHandler returns one tool by slug.
// @Summary Get tool
// @Tags tools
// @Produce json
// @Param slug path string true "Tool slug"
// @Success 200 {object} models.ToolWithStats
// @Failure 404 {object} handlers.ErrorResponse "Tool not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/tools/{slug} [get]
func NewGetToolHandler(svc ToolGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tool, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tool)
	}
}
