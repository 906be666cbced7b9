package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
)

const minUsernameLen = 3

// placeholderEmailDomain stands in for the address of identities that signed up without one.
const placeholderEmailDomain = "users.noreply.invalid"

// UserReader reads mirrored users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserWriter inserts mirrored users.
type UserWriter interface {
	Insert(ctx context.Context, id uuid.UUID, username, email string) error
}

// UserService keeps the local users table in step with the identity provider.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// EnsureMirror inserts a users row for an identity seen for the first time.
// Existing rows are left untouched, so their admin flag survives.
func (s *UserService) EnsureMirror(ctx context.Context, user *identity.User) error {
	_, err := s.reader.GetByID(ctx, user.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("failed to look up user", "user_id", user.ID, "error", err)
		return err
	}

	mirror := models.UserMirror{ID: user.ID, Username: mirrorUsername(user), Email: mirrorEmail(user)}
	if err := validation.Struct(mirror); err != nil {
		logger.Log.Warnw("identity cannot be mirrored", "user_id", user.ID, "error", err)
		return err
	}

	err = s.writer.Insert(ctx, mirror.ID, mirror.Username, mirror.Email)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Either a concurrent request mirrored the same user or the username is taken.
		if _, getErr := s.reader.GetByID(ctx, user.ID); getErr == nil {
			return nil
		}
		mirror.Username = mirror.Username + "-" + user.ID.String()[:8]
		err = s.writer.Insert(ctx, mirror.ID, mirror.Username, mirror.Email)
	}
	if err != nil {
		logger.Log.Errorw("failed to mirror user", "user_id", user.ID, "username", mirror.Username, "error", err)
		return err
	}

	logger.Log.Infow("user mirrored", "user_id", user.ID, "username", mirror.Username)
	return nil
}

// IsAdmin reports whether the user carries the admin flag. Unknown users are not admins.
func (s *UserService) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	isAdmin, err := s.reader.IsAdmin(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to check admin flag", "user_id", id, "error", err)
		return false, err
	}
	return isAdmin, nil
}

// mirrorUsername picks the metadata username, else the email local part, else the id prefix,
// padded to the minimum length in characters.
func mirrorUsername(user *identity.User) string {
	name := strings.TrimSpace(user.Username)
	if name == "" {
		name, _, _ = strings.Cut(user.Email, "@")
	}
	if name == "" {
		name = "user-" + user.ID.String()[:8]
	}
	for utf8.RuneCountInString(name) < minUsernameLen {
		name += "_"
	}
	return name
}

// mirrorEmail returns the identity's email, or a per-user placeholder when it has none.
func mirrorEmail(user *identity.User) string {
	if email := strings.TrimSpace(user.Email); email != "" {
		return email
	}
	return user.ID.String() + "@" + placeholderEmailDomain
}
