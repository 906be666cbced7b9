package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_ListByTool(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	reader := NewMockReviewReader(ctrl)
	toolID := uuid.New()

	reader.EXPECT().ListByToolID(ctx, toolID).Return([]models.ReviewWithUser{
		{ReviewDB: models.ReviewDB{Rating: 5}, User: models.ReviewAuthor{Username: "alice"}},
	}, nil)

	reviews, err := NewReviewService(reader, nil, nil, nil).ListByTool(ctx, toolID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].User.Username)
}

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()
	user := &identity.User{ID: uuid.New(), Email: "alice@example.com"}
	toolID := uuid.New()
	req := models.ReviewRequest{ToolID: toolID.String(), Rating: 5, ReviewText: "Great tool, works perfectly"}

	tests := []struct {
		name      string
		req       models.ReviewRequest
		mockSetup func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer)
		wantErr   error
		wantField string
	}{
		{
			name: "stored",
			req:  req,
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {
				tools.EXPECT().GetByID(ctx, toolID).Return(&models.ToolDB{ID: toolID}, nil)
				users.EXPECT().EnsureMirror(ctx, user).Return(nil)
				w.EXPECT().Save(ctx, user.ID, toolID, 5, "Great tool, works perfectly").
					Return(&models.ReviewDB{ID: uuid.New(), UserID: user.ID, ToolID: toolID, Rating: 5, CreatedAt: time.Now()}, nil)
			},
		},
		{
			name: "second review",
			req:  req,
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {
				tools.EXPECT().GetByID(ctx, toolID).Return(&models.ToolDB{ID: toolID}, nil)
				users.EXPECT().EnsureMirror(ctx, user).Return(nil)
				w.EXPECT().Save(ctx, user.ID, toolID, 5, "Great tool, works perfectly").
					Return(nil, errors.Join(repositories.ErrDuplicate, errors.New("23505")))
			},
			wantErr: ErrAlreadyReviewed,
		},
		{
			name: "unknown tool",
			req:  req,
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {
				tools.EXPECT().GetByID(ctx, toolID).Return(nil, repositories.ErrNotFound)
			},
			wantErr: ErrToolNotFound,
		},
		{
			name:      "rating out of range",
			req:       models.ReviewRequest{ToolID: toolID.String(), Rating: 6, ReviewText: "Great tool, works perfectly"},
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {},
			wantField: "rating",
		},
		{
			name:      "short text",
			req:       models.ReviewRequest{ToolID: toolID.String(), Rating: 3, ReviewText: "meh"},
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {},
			wantField: "review_text",
		},
		{
			name:      "malformed tool id",
			req:       models.ReviewRequest{ToolID: "42", Rating: 3, ReviewText: "Great tool, works perfectly"},
			mockSetup: func(w *MockReviewWriter, tools *MockToolLookup, users *MockMirrorEnsurer) {},
			wantField: "tool_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			writer := NewMockReviewWriter(ctrl)
			tools := NewMockToolLookup(ctrl)
			users := NewMockMirrorEnsurer(ctrl)
			tt.mockSetup(writer, tools, users)

			review, err := NewReviewService(nil, writer, tools, users).Submit(ctx, user, tt.req)

			switch {
			case tt.wantField != "":
				var verr *validation.Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.Nil(t, review)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, review)
			default:
				require.NoError(t, err)
				assert.Equal(t, 5, review.Rating)
			}
		})
	}
}
