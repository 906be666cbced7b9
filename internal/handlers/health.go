package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger checks datastore connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`

	// example: 1.0.0
	Version string `json:"version"`
}

// NewHealthHandler reports whether the datastore is reachable.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Version: version})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}
}
