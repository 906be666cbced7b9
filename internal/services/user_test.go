package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureMirror(t *testing.T) {
	ctx := context.Background()
	id := uuid.MustParse("0b5e8f4a-1c2d-4e3f-9a8b-7c6d5e4f3a2b")

	tests := []struct {
		name      string
		user      *identity.User
		mockSetup func(r *MockUserReader, w *MockUserWriter)
		wantErr   bool
	}{
		{
			name: "already mirrored",
			user: &identity.User{ID: id, Email: "alice@example.com"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(&models.UserDB{ID: id, IsAdmin: true}, nil)
			},
		},
		{
			name: "username from metadata",
			user: &identity.User{ID: id, Email: "alice@example.com", Username: "alice_gg"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "alice_gg", "alice@example.com").Return(nil)
			},
		},
		{
			name: "username from short email padded",
			user: &identity.User{ID: id, Email: "al@example.com"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "al_", "al@example.com").Return(nil)
			},
		},
		{
			name: "single multibyte rune padded by characters",
			user: &identity.User{ID: id, Email: "li@example.com", Username: "李"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "李__", "li@example.com").Return(nil)
			},
		},
		{
			name: "two byte rune padded by characters",
			user: &identity.User{ID: id, Email: "e@example.com", Username: "é"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "é__", "e@example.com").Return(nil)
			},
		},
		{
			name: "no email uses placeholder",
			user: &identity.User{ID: id, Username: "phone_user"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "phone_user", id.String()+"@users.noreply.invalid").Return(nil)
			},
		},
		{
			name: "no email and no username falls back to id",
			user: &identity.User{ID: id},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)
				w.EXPECT().Insert(ctx, id, "user-0b5e8f4a", id.String()+"@users.noreply.invalid").Return(nil)
			},
		},
		{
			name: "taken username gets id suffix",
			user: &identity.User{ID: id, Email: "bob@example.com"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound).Times(2)
				gomock.InOrder(
					w.EXPECT().Insert(ctx, id, "bob", "bob@example.com").Return(repositories.ErrDuplicate),
					w.EXPECT().Insert(ctx, id, "bob-0b5e8f4a", "bob@example.com").Return(nil),
				)
			},
		},
		{
			name: "mirrored concurrently",
			user: &identity.User{ID: id, Email: "bob@example.com"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				gomock.InOrder(
					r.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound),
					w.EXPECT().Insert(ctx, id, "bob", "bob@example.com").Return(repositories.ErrDuplicate),
					r.EXPECT().GetByID(ctx, id).Return(&models.UserDB{ID: id}, nil),
				)
			},
		},
		{
			name: "lookup error",
			user: &identity.User{ID: id, Email: "bob@example.com"},
			mockSetup: func(r *MockUserReader, w *MockUserWriter) {
				r.EXPECT().GetByID(ctx, id).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := NewMockUserReader(ctrl)
			writer := NewMockUserWriter(ctrl)
			tt.mockSetup(reader, writer)

			err := NewUserService(reader, writer).EnsureMirror(ctx, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_EnsureMirror_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	id := uuid.New()
	reader.EXPECT().GetByID(ctx, id).Return(nil, repositories.ErrNotFound)

	err := NewUserService(reader, writer).EnsureMirror(ctx, &identity.User{ID: id, Username: "carol", Email: "not-an-email"})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestMirrorFields_PassValidation(t *testing.T) {
	id := uuid.New()
	users := []*identity.User{
		{ID: id, Username: "李"},
		{ID: id, Username: "é"},
		{ID: id, Username: "ab"},
		{ID: id, Email: "x@example.com"},
		{ID: id},
	}

	for _, u := range users {
		mirror := models.UserMirror{ID: u.ID, Username: mirrorUsername(u), Email: mirrorEmail(u)}
		assert.NoError(t, validation.Struct(mirror), "username %q", u.Username)
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name      string
		repoAdmin bool
		repoErr   error
		want      bool
		wantErr   bool
	}{
		{"admin", true, nil, true, false},
		{"not admin", false, nil, false, false},
		{"not mirrored", false, repositories.ErrNotFound, false, false},
		{"db error", false, errors.New("db down"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := NewMockUserReader(ctrl)
			reader.EXPECT().IsAdmin(ctx, id).Return(tt.repoAdmin, tt.repoErr)

			got, err := NewUserService(reader, nil).IsAdmin(ctx, id)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
