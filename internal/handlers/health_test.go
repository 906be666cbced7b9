package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"ok", nil, http.StatusOK, `{"status":"ok","version":"1.2.3"}`},
		{"db down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable, `{"status":"unavailable","version":"1.2.3"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := NewMockPinger(ctrl)
			db.EXPECT().PingContext(gomock.Any()).Return(tt.pingErr)

			rr := httptest.NewRecorder()
			NewHealthHandler(db, "1.2.3").ServeHTTP(rr, newRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
