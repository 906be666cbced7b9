package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
	"golang.org/x/sync/errgroup"
)

// FeaturedLimit is the number of newest tools shown as featured.
const FeaturedLimit = 6

// statsConcurrency bounds the per-tool stat queries running at once.
const statsConcurrency = 8

// ErrToolNotFound is returned when no tool matches the given slug or id.
var ErrToolNotFound = errors.New("Tool not found")

// ErrSlugTaken is returned when a create or update collides with another tool's slug.
var ErrSlugTaken = &validation.Error{Field: "slug", Message: "A tool with this slug already exists"}

// ToolReader reads tool rows.
type ToolReader interface {
	List(ctx context.Context, limit int) ([]models.ToolDB, error) // Newest first, 0 means all
	GetBySlug(ctx context.Context, slug string) (*models.ToolDB, error)
}

// ToolWriter writes tool rows.
type ToolWriter interface {
	Create(ctx context.Context, req models.ToolRequest) (*models.ToolDB, error)
	Update(ctx context.Context, id uuid.UUID, req models.ToolRequest) (*models.ToolDB, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ButtonReader reads download buttons.
type ButtonReader interface {
	ListByToolID(ctx context.Context, toolID uuid.UUID) ([]models.DownloadButtonDB, error)
}

// ButtonWriter replaces download buttons.
type ButtonWriter interface {
	DeleteByToolID(ctx context.Context, toolID uuid.UUID) error
	InsertMany(ctx context.Context, buttons []models.DownloadButtonDB) error
}

// DownloadCounter counts recorded downloads.
type DownloadCounter interface {
	CountByToolID(ctx context.Context, toolID uuid.UUID) (int64, error)
}

// RatingReader lists review ratings.
type RatingReader interface {
	RatingsByToolID(ctx context.Context, toolID uuid.UUID) ([]int, error)
}

// CatalogService serves tools with their buttons and derived stats, and handles admin writes.
type CatalogService struct {
	tools        ToolReader
	toolWriter   ToolWriter
	buttons      ButtonReader
	buttonWriter ButtonWriter
	downloads    DownloadCounter
	ratings      RatingReader
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	tools ToolReader,
	toolWriter ToolWriter,
	buttons ButtonReader,
	buttonWriter ButtonWriter,
	downloads DownloadCounter,
	ratings RatingReader,
) *CatalogService {
	return &CatalogService{
		tools:        tools,
		toolWriter:   toolWriter,
		buttons:      buttons,
		buttonWriter: buttonWriter,
		downloads:    downloads,
		ratings:      ratings,
	}
}

// List returns every tool with stats, newest first.
func (s *CatalogService) List(ctx context.Context) ([]models.ToolWithStats, error) {
	return s.list(ctx, 0)
}

// Featured returns the FeaturedLimit newest tools with stats.
func (s *CatalogService) Featured(ctx context.Context) ([]models.ToolWithStats, error) {
	return s.list(ctx, FeaturedLimit)
}

func (s *CatalogService) list(ctx context.Context, limit int) ([]models.ToolWithStats, error) {
	tools, err := s.tools.List(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list tools", "limit", limit, "error", err)
		return nil, err
	}
	return s.withStats(ctx, tools)
}

// GetBySlug returns one tool with stats.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.ToolWithStats, error) {
	tool, err := s.tools.GetBySlug(ctx, slug)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrToolNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get tool", "slug", slug, "error", err)
		return nil, err
	}

	out, err := s.statsFor(ctx, *tool)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create validates the request, inserts the tool and then its buttons.
func (s *CatalogService) Create(ctx context.Context, req models.ToolRequest) (*models.ToolWithStats, error) {
	buttons, err := prepareTool(req)
	if err != nil {
		return nil, err
	}

	tool, err := s.toolWriter.Create(ctx, req)
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Warnw("tool slug already taken", "slug", req.Slug)
		return nil, ErrSlugTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to create tool", "slug", req.Slug, "error", err)
		return nil, err
	}

	if err := s.insertButtons(ctx, tool.ID, buttons); err != nil {
		return nil, err
	}

	logger.Log.Infow("tool created", "tool_id", tool.ID, "slug", tool.Slug, "buttons", len(buttons))

	out, err := s.statsFor(ctx, *tool)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update validates the request, overwrites the tool and replaces its whole button set.
// The two writes are not atomic: a failure after the tool update leaves the tool without buttons.
func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req models.ToolRequest) (*models.ToolWithStats, error) {
	buttons, err := prepareTool(req)
	if err != nil {
		return nil, err
	}

	tool, err := s.toolWriter.Update(ctx, id, req)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrToolNotFound
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		logger.Log.Warnw("tool slug already taken", "tool_id", id, "slug", req.Slug)
		return nil, ErrSlugTaken
	}
	if err != nil {
		logger.Log.Errorw("failed to update tool", "tool_id", id, "error", err)
		return nil, err
	}

	if err := s.buttonWriter.DeleteByToolID(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete download buttons", "tool_id", id, "error", err)
		return nil, err
	}
	if err := s.insertButtons(ctx, id, buttons); err != nil {
		return nil, err
	}

	logger.Log.Infow("tool updated", "tool_id", id, "slug", tool.Slug, "buttons", len(buttons))

	out, err := s.statsFor(ctx, *tool)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the tool together with its buttons, downloads and reviews.
func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.toolWriter.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrToolNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete tool", "tool_id", id, "error", err)
		return err
	}

	logger.Log.Infow("tool deleted", "tool_id", id)
	return nil
}

func (s *CatalogService) insertButtons(ctx context.Context, toolID uuid.UUID, buttons []models.DownloadButtonRequest) error {
	rows := make([]models.DownloadButtonDB, 0, len(buttons))
	for i, b := range buttons {
		rows = append(rows, models.DownloadButtonDB{ToolID: toolID, Label: b.Label, URL: b.URL, Order: i})
	}

	if err := s.buttonWriter.InsertMany(ctx, rows); err != nil {
		logger.Log.Errorw("failed to insert download buttons", "tool_id", toolID, "error", err)
		return err
	}
	return nil
}

// withStats assembles stats for every tool as a bounded parallel batch. Output order matches input order.
func (s *CatalogService) withStats(ctx context.Context, tools []models.ToolDB) ([]models.ToolWithStats, error) {
	out := make([]models.ToolWithStats, len(tools))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)

	for i := range tools {
		g.Go(func() error {
			tws, err := s.statsFor(gctx, tools[i])
			if err != nil {
				return err
			}
			out[i] = tws
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CatalogService) statsFor(ctx context.Context, tool models.ToolDB) (models.ToolWithStats, error) {
	buttons, err := s.buttons.ListByToolID(ctx, tool.ID)
	if err != nil {
		logger.Log.Errorw("failed to list download buttons", "tool_id", tool.ID, "error", err)
		return models.ToolWithStats{}, err
	}

	downloads, err := s.downloads.CountByToolID(ctx, tool.ID)
	if err != nil {
		logger.Log.Errorw("failed to count downloads", "tool_id", tool.ID, "error", err)
		return models.ToolWithStats{}, err
	}

	ratings, err := s.ratings.RatingsByToolID(ctx, tool.ID)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "tool_id", tool.ID, "error", err)
		return models.ToolWithStats{}, err
	}

	return models.ToolWithStats{
		ToolDB:          tool,
		DownloadButtons: buttons,
		ToolStats: models.ToolStats{
			DownloadCount: downloads,
			AverageRating: models.AverageRating(ratings),
			ReviewCount:   int64(len(ratings)),
		},
	}, nil
}

// prepareTool validates the tool fields and returns its buttons with blank rows dropped.
func prepareTool(req models.ToolRequest) ([]models.DownloadButtonRequest, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	buttons := make([]models.DownloadButtonRequest, 0, len(req.DownloadButtons))
	for i, b := range req.DownloadButtons {
		if b.Blank() {
			continue
		}
		if err := validation.Struct(b); err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				prefix := fmt.Sprintf("downloadButtons[%d].", i)
				return nil, &validation.Error{Field: prefix + verr.Field, Message: prefix + verr.Message}
			}
			return nil, err
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}
