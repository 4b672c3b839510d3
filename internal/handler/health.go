package handler

import (
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
)

// HealthResponse represents the response for the health endpoint
type HealthResponse struct {
	Success bool `json:"success"`
	domain.HealthStatus
}

// HandleHealth provides a basic liveness check
// @Summary Health check
// @Description Returns OK while the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func HandleHealth(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{
			Success:      true,
			HealthStatus: svc.Health(r.Context()),
		})
	}
}
