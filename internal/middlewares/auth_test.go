package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	user := &identity.User{ID: uuid.New(), Email: "alice@example.com"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("missing bearer token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "sometoken").Return(nil, identity.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid or expired token"}`,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				m.EXPECT().Authenticate(gomock.Any(), "validtoken").Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := NewMockAuthenticator(ctrl)
			tt.mockSetup(auth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, user.ID, got.ID)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(auth)(nextHandler)

			req := httptest.NewRequest(http.MethodPost, "/api/downloads", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	user := &identity.User{ID: uuid.New(), Email: "root@example.com"}

	tests := []struct {
		name             string
		mockSetup        func(a *MockAuthenticator, c *MockAdminChecker)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(a *MockAuthenticator, c *MockAdminChecker) {
				a.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("missing bearer token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name: "NotAdmin",
			mockSetup: func(a *MockAuthenticator, c *MockAdminChecker) {
				a.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				a.EXPECT().Authenticate(gomock.Any(), "token").Return(user, nil)
				c.EXPECT().IsAdmin(gomock.Any(), user.ID).Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Forbidden"}`,
		},
		{
			name: "LookupFails",
			mockSetup: func(a *MockAuthenticator, c *MockAdminChecker) {
				a.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				a.EXPECT().Authenticate(gomock.Any(), "token").Return(user, nil)
				c.EXPECT().IsAdmin(gomock.Any(), user.ID).Return(false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"db down"}`,
		},
		{
			name: "Admin",
			mockSetup: func(a *MockAuthenticator, c *MockAdminChecker) {
				a.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				a.EXPECT().Authenticate(gomock.Any(), "token").Return(user, nil)
				c.EXPECT().IsAdmin(gomock.Any(), user.ID).Return(true, nil)
			},
			expectedStatus:   http.StatusNoContent,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := NewMockAuthenticator(ctrl)
			admins := NewMockAdminChecker(ctrl)
			tt.mockSetup(auth, admins)

			nextCalled := false
			handler := AdminMiddleware(auth, admins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/tools/"+uuid.NewString(), nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	user, ok := UserFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, user)
}
