package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserReadRepository_IsAdmin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	id := uuid.New()

	tests := []struct {
		name      string
		setup     func()
		wantAdmin bool
		wantErr   error
	}{
		{
			name: "admin",
			setup: func() {
				mock.ExpectQuery(`SELECT is_admin FROM users WHERE id = \$1`).WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"is_admin"}).AddRow(true))
			},
			wantAdmin: true,
		},
		{
			name: "regular user",
			setup: func() {
				mock.ExpectQuery(`SELECT is_admin FROM users WHERE id = \$1`).WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"is_admin"}).AddRow(false))
			},
		},
		{
			name: "not mirrored",
			setup: func() {
				mock.ExpectQuery(`SELECT is_admin FROM users WHERE id = \$1`).WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			isAdmin, err := repo.IsAdmin(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAdmin, isAdmin)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByIDAndListAdmins(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	id := uuid.New()
	cols := []string{"id", "username", "email", "is_admin", "created_at"}

	mock.ExpectQuery(`FROM users WHERE id = \$1`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), "alice", "alice@example.com", false, time.Now()))

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	mock.ExpectQuery(`FROM users WHERE is_admin ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id.String(), "root", "root@example.com", true, time.Now()))

	admins, err := repo.ListAdmins(context.Background())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsAdmin)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	id := uuid.New()

	mock.ExpectExec(`INSERT INTO users \(id, username, email\)`).
		WithArgs(id, "alice", "alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Insert(context.Background(), id, "alice", "alice@example.com"))

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Insert(context.Background(), id, "alice", "alice@example.com"), ErrDuplicate)

	mock.ExpectExec(`UPDATE users SET is_admin = \$2 WHERE email = \$1`).
		WithArgs("alice@example.com", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetAdminByEmail(context.Background(), "alice@example.com", true))

	mock.ExpectExec(`UPDATE users SET is_admin`).
		WithArgs("nobody@example.com", true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SetAdminByEmail(context.Background(), "nobody@example.com", true), ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassify(t *testing.T) {
	assert.Nil(t, classify(nil))
	assert.ErrorIs(t, classify(sql.ErrNoRows), ErrNotFound)

	pgErr := &pgconn.PgError{Code: "23505"}
	err := classify(pgErr)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.ErrorAs(t, err, &pgErr)

	other := errors.New("connection refused")
	assert.Equal(t, other, classify(other))

	fk := &pgconn.PgError{Code: "23503"}
	assert.False(t, errors.Is(classify(fk), ErrDuplicate))
}
