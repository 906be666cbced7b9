package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRecordDownloadHandler(t *testing.T) {
	user := &identity.User{ID: uuid.New(), Email: "alice@example.com"}
	body := models.DownloadRequest{ToolID: uuid.NewString(), ButtonLabel: "Main"}

	tests := []struct {
		name           string
		user           *identity.User
		body           any
		mockSetup      func(m *MockDownloadRecorder)
		expectedStatus int
	}{
		{
			name: "recorded",
			user: user,
			body: body,
			mockSetup: func(m *MockDownloadRecorder) {
				m.EXPECT().Record(gomock.Any(), user, body).Return(&models.DownloadDB{ID: uuid.New()}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown tool",
			user: user,
			body: body,
			mockSetup: func(m *MockDownloadRecorder) {
				m.EXPECT().Record(gomock.Any(), user, body).Return(nil, services.ErrToolNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "datastore error",
			user: user,
			body: body,
			mockSetup: func(m *MockDownloadRecorder) {
				m.EXPECT().Record(gomock.Any(), user, body).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unauthenticated",
			body:           body,
			mockSetup:      func(m *MockDownloadRecorder) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockDownloadRecorder(ctrl)
			tt.mockSetup(svc)

			req := newRequest(http.MethodPost, "/api/downloads", tt.body)
			if tt.user != nil {
				req = withUser(req, tt.user)
			}
			rr := httptest.NewRecorder()
			NewRecordDownloadHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
