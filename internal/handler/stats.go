package handler

import (
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
)

// StatsResponse wraps server statistics
type StatsResponse struct {
	Success bool               `json:"success"`
	Stats   domain.ServerStats `json:"stats"`
}

// WeaponsResponse lists the weapon catalog
type WeaponsResponse struct {
	Success bool            `json:"success"`
	Weapons []domain.Weapon `json:"weapons"`
	Count   int             `json:"count"`
}

// HandleGetStats returns store counts and runtime figures
// @Summary Server stats
// @Tags stats
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/stats [get]
func HandleGetStats(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: svc.Stats(r.Context())})
	}
}

// HandleListWeapons returns the weapon catalog with current shared ammo
// @Summary List weapons
// @Tags weapons
// @Produce json
// @Success 200 {object} WeaponsResponse
// @Router /api/weapons [get]
func HandleListWeapons(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weapons := svc.Weapons(r.Context())
		respondJSON(w, http.StatusOK, WeaponsResponse{
			Success: true,
			Weapons: weapons,
			Count:   len(weapons),
		})
	}
}
