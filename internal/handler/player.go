package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/gameplay"
	"github.com/osse101/shooter-mock-api/internal/logger"
)

// CreatePlayerRequest is the optional body of POST /api/players.
// Any name is accepted; body size is bounded by the server's request limit.
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// PlayerResponse carries a player together with its inventory
type PlayerResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Player    *domain.Player    `json:"player"`
	Inventory *domain.Inventory `json:"inventory,omitempty"`
}

// HandleCreatePlayer handles player creation
// @Summary Create player
// @Description Create a player with a starter pistol and starting inventory. The name defaults to Player_<first 8 id chars>.
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest false "Player details"
// @Success 201 {object} PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/players [post]
func HandleCreatePlayer(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		player, inventory, err := svc.CreatePlayer(r.Context(), req.Name)
		if err != nil {
			respondServiceError(w, r, err, "Create player")
			return
		}

		log.Debug("Player created via API", "player_id", player.ID)

		respondJSON(w, http.StatusCreated, PlayerResponse{
			Success:   true,
			Message:   MsgPlayerCreated,
			Player:    player,
			Inventory: inventory,
		})
	}
}

// HandleGetPlayer returns a player and its inventory
// @Summary Get player
// @Tags players
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/players/{playerId} [get]
func HandleGetPlayer(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, inventory, err := svc.GetPlayer(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, err, "Get player")
			return
		}

		respondJSON(w, http.StatusOK, PlayerResponse{
			Success:   true,
			Player:    player,
			Inventory: inventory,
		})
	}
}

// HandleLevelUp levels a player up unconditionally
// @Summary Level up
// @Description Increments level and resets experience, health and armor
// @Tags players
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/players/{playerId}/level-up [post]
func HandleLevelUp(svc gameplay.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := svc.LevelUp(r.Context(), playerIDParam(r))
		if err != nil {
			respondServiceError(w, r, err, "Level up")
			return
		}

		respondJSON(w, http.StatusOK, PlayerResponse{
			Success: true,
			Message: fmt.Sprintf(MsgLevelUpFormat, player.Level),
			Player:  player,
		})
	}
}
