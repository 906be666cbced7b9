package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, is_admin, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.Username, err)

	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// IsAdmin reports the admin flag of the user; a missing row yields ErrNotFound.
func (r *UserReadRepository) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT is_admin FROM users WHERE id = $1`

	var isAdmin bool
	err := r.db.GetContext(ctx, &isAdmin, query, id)
	logQuery(query, []any{id}, isAdmin, err)

	return isAdmin, classify(err)
}

// ListAdmins returns all users with the admin flag set, oldest first.
func (r *UserReadRepository) ListAdmins(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email, is_admin, created_at
		FROM users
		WHERE is_admin
		ORDER BY created_at
	`

	admins := []models.UserDB{}
	err := r.db.SelectContext(ctx, &admins, query)
	logQuery(query, nil, len(admins), err)

	return admins, classify(err)
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Insert creates the mirror row of an identity provider user. Admin flag defaults to false.
func (r *UserWriteRepository) Insert(ctx context.Context, id uuid.UUID, username, email string) error {
	const query = `
		INSERT INTO users (id, username, email)
		VALUES ($1, $2, $3)
	`
	args := []any{id, username, email}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return classify(err)
}

// SetAdminByEmail sets the admin flag of the user with the given email.
func (r *UserWriteRepository) SetAdminByEmail(ctx context.Context, email string, isAdmin bool) error {
	const query = `UPDATE users SET is_admin = $2 WHERE email = $1`
	args := []any{email, isAdmin}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return classify(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UserRepository combines user reads and writes for callers that need both.
type UserRepository struct {
	*UserReadRepository
	*UserWriteRepository
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		UserReadRepository:  NewUserReadRepository(db),
		UserWriteRepository: NewUserWriteRepository(db),
	}
}
