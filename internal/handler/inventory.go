package handler

import (
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// InventoryResponse wraps a player's inventory
type InventoryResponse struct {
	Success   bool              `json:"success"`
	Inventory *domain.Inventory `json:"inventory"`
}

// UseItemRequest names the item to use
type UseItemRequest struct {
	ItemType string `json:"itemType" validate:"required"`
}

// HandleGetInventory returns a player's inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/players/{playerId}/inventory [get]
func HandleGetInventory(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inventory, err := svc.GetInventory(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, err, "Get inventory")
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{Success: true, Inventory: inventory})
	}
}

// HandleUseItem uses one inventory item.
// An unavailable item is an expected outcome answered with 400 and success=false.
// @Summary Use inventory item
// @Description itemType is one of medical_kit, grenade, ammo_box
// @Tags inventory
// @Accept json
// @Produce json
// @Param playerId path string true "Player ID"
// @Param request body UseItemRequest true "Item to use"
// @Success 200 {object} domain.ItemUseResult
// @Failure 400 {object} domain.ItemUseResult
// @Failure 404 {object} ErrorResponse
// @Router /api/players/{playerId}/use-item [post]
func HandleUseItem(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UseItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
			return
		}

		result, err := svc.UseItem(r.Context(), playerIDParam(r), req.ItemType)
		if err != nil {
			respondServiceError(w, r, err, "Use item")
			return
		}

		status := http.StatusOK
		if !result.Success {
			status = http.StatusBadRequest
			log.Debug("Item not available", "item_type", req.ItemType)
		}
		respondJSON(w, status, result)
	}
}
