package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the service liveness response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: healthy
	Status string `json:"status"`

	// Current server time, RFC 3339
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler reporting service liveness.
// @Summary Health check
// @Description Returns service status and current timestamp
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is healthy"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
