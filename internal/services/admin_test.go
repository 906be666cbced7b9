package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stats := NewMockStatsReader(ctrl)

	want := &models.AdminStats{TotalTools: 2, TotalDownloads: 9, TotalReviews: 3, AverageRating: 4}
	stats.EXPECT().Totals(ctx).Return(want, nil)

	got, err := NewAdminService(stats, nil).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	stats.EXPECT().Totals(ctx).Return(nil, errors.New("timeout"))
	_, err = NewAdminService(stats, nil).Stats(ctx)
	assert.Error(t, err)
}

func TestAdminService_CheckAdmins(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	dir := NewMockAdminDirectory(ctrl)
	svc := NewAdminService(nil, dir)

	dir.EXPECT().ListAdmins(ctx).Return([]models.UserDB{}, nil)
	admins, err := svc.CheckAdmins(ctx)
	require.NoError(t, err)
	assert.Empty(t, admins)

	dir.EXPECT().ListAdmins(ctx).Return([]models.UserDB{{ID: uuid.New(), Email: "root@example.com", IsAdmin: true}}, nil)
	admins, err = svc.CheckAdmins(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestAdminService_GrantAdmin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"granted", nil, nil},
		{"never signed in", repositories.ErrNotFound, ErrUserNotMirrored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := NewMockAdminDirectory(ctrl)
			dir.EXPECT().SetAdminByEmail(ctx, "root@example.com", true).Return(tt.repoErr)

			err := NewAdminService(nil, dir).GrantAdmin(ctx, "root@example.com", true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
