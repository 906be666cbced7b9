package services

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
)

// ErrUserNotMirrored is returned when granting admin to an email that never signed in.
var ErrUserNotMirrored = errors.New("no user with this email has signed in yet")

// StatsReader computes catalog-wide aggregates.
type StatsReader interface {
	Totals(ctx context.Context) (*models.AdminStats, error)
}

// AdminDirectory lists and flags administrators.
type AdminDirectory interface {
	ListAdmins(ctx context.Context) ([]models.UserDB, error)
	SetAdminByEmail(ctx context.Context, email string, isAdmin bool) error
}

// AdminService serves the admin dashboard aggregates and admin bootstrap.
type AdminService struct {
	stats  StatsReader
	admins AdminDirectory
}

// NewAdminService creates a new AdminService.
func NewAdminService(stats StatsReader, admins AdminDirectory) *AdminService {
	return &AdminService{stats: stats, admins: admins}
}

// Stats returns totals of tools, downloads and reviews and the global average rating.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := s.stats.Totals(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute admin stats", "error", err)
		return nil, err
	}
	return stats, nil
}

// CheckAdmins returns the current administrators and warns when there are none.
func (s *AdminService) CheckAdmins(ctx context.Context) ([]models.UserDB, error) {
	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list admins", "error", err)
		return nil, err
	}

	if len(admins) == 0 {
		logger.Log.Warnw("no admin users found; sign in once, then run `toolsctl admin grant <email>`")
	}
	return admins, nil
}

// GrantAdmin sets or clears the admin flag of the user with the given email.
func (s *AdminService) GrantAdmin(ctx context.Context, email string, isAdmin bool) error {
	err := s.admins.SetAdminByEmail(ctx, email, isAdmin)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotMirrored
	}
	if err != nil {
		logger.Log.Errorw("failed to set admin flag", "email", email, "error", err)
		return err
	}

	logger.Log.Infow("admin flag updated", "email", email, "is_admin", isAdmin)
	return nil
}
