package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
)

// ShootRequest is the optional body of a shot
type ShootRequest struct {
	WeaponID      string `json:"weaponId"`
	TargetEnemyID string `json:"targetEnemyId"` // echoed back as given
}

// ShootResponse wraps a shot result
type ShootResponse struct {
	Success bool               `json:"success"`
	Result  *domain.ShotResult `json:"result"`
}

// SpawnResponse wraps a spawned enemy
type SpawnResponse struct {
	Success bool         `json:"success"`
	Enemy   domain.Enemy `json:"enemy"`
	Message string       `json:"message"`
}

// HandleShoot fires a weapon from the shared catalog
// @Summary Shoot
// @Description Rolls accuracy (hit above 30) and decrements the weapon's shared ammo. Damage is reported, never applied.
// @Tags combat
// @Accept json
// @Produce json
// @Param playerId path string true "Player ID"
// @Param request body ShootRequest false "Weapon and target"
// @Success 200 {object} ShootResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/players/{playerId}/shoot [post]
func HandleShoot(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ShootRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Shoot"); err != nil {
			return
		}

		result, err := svc.Shoot(r.Context(), playerIDParam(r), req.WeaponID, req.TargetEnemyID)
		if err != nil {
			if errors.Is(err, domain.ErrWeaponNotFound) {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgWeaponNotFoundName, req.WeaponID))
				return
			}
			respondServiceError(w, r, err, "Shoot")
			return
		}

		respondJSON(w, http.StatusOK, ShootResponse{Success: true, Result: result})
	}
}

// HandleSpawnEnemy spawns a random enemy
// @Summary Spawn enemy
// @Tags combat
// @Produce json
// @Success 201 {object} SpawnResponse
// @Router /api/enemies/spawn [post]
func HandleSpawnEnemy(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.SpawnEnemy(r.Context())
		if err != nil {
			respondServiceError(w, r, err, "Spawn enemy")
			return
		}

		respondJSON(w, http.StatusCreated, SpawnResponse{
			Success: true,
			Enemy:   result.Enemy,
			Message: result.Message,
		})
	}
}
