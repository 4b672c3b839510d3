package gameplay

import (
	"context"
	"fmt"

	"github.com/osse101/shooter-mock-api/internal/concurrency"
	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/logger"
	"github.com/osse101/shooter-mock-api/internal/random"
)

// itemEffect applies an item after its count has been consumed
type itemEffect func(ctx context.Context, s *service, playerID string, result *domain.ItemUseResult) error

var itemEffects = map[string]itemEffect{
	domain.ItemMedicalKit: useMedicalKit,
	domain.ItemGrenade:    useGrenade,
	domain.ItemAmmoBox:    useAmmoBox,
}

// UseItem consumes one item. An unknown type or an empty count is reported as
// Success=false with no mutation; only a missing inventory is an error.
func (s *service) UseItem(ctx context.Context, playerID, itemType string) (*domain.ItemUseResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.repo.GetInventory(ctx, playerID); err != nil {
		return nil, err
	}

	result := &domain.ItemUseResult{ItemType: itemType}
	err := s.locks.WithLock(concurrency.PlayerKey(playerID), func() error {
		inventory, err := s.repo.GetInventory(ctx, playerID)
		if err != nil {
			return err
		}

		effect, known := itemEffects[itemType]
		if !known || !inventory.Consume(itemType) {
			result.Message = fmt.Sprintf(MsgItemUnavailable, itemType)
			result.Inventory = inventory
			return nil
		}

		if err := effect(ctx, s, playerID, result); err != nil {
			return err
		}
		if err := s.repo.UpdateInventory(ctx, *inventory); err != nil {
			return err
		}

		result.Success = true
		result.Inventory = inventory
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgItemUsed, "player_id", playerID, "item_type", itemType, "success", result.Success)
	event.PublishBestEffort(ctx, s.bus, event.NewItemUsedEvent(playerID, itemType, result.Success))

	return result, nil
}

func useMedicalKit(ctx context.Context, s *service, playerID string, result *domain.ItemUseResult) error {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	player.Health = min(player.Health+domain.MedicalKitHeal, domain.MaxHealth)
	if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
		return err
	}

	health := player.Health
	result.NewHealth = &health
	result.Message = fmt.Sprintf(MsgMedicalKitUsed, health)
	return nil
}

// useGrenade reports simulated damage; nothing is actually damaged
func useGrenade(_ context.Context, s *service, _ string, result *domain.ItemUseResult) error {
	damage := random.IntRange(s.rnd, domain.GrenadeDamageMin, domain.GrenadeDamageMax)
	result.DamageCaused = &damage
	result.Radius = domain.GrenadeRadiusText
	result.Message = fmt.Sprintf(MsgGrenadeThrown, damage)
	return nil
}

// useAmmoBox reports a fixed resupply; no weapon ammo changes
func useAmmoBox(_ context.Context, _ *service, _ string, result *domain.ItemUseResult) error {
	restored := domain.AmmoBoxRestore
	result.AmmoRestored = &restored
	result.Message = fmt.Sprintf(MsgAmmoBoxUsed, restored)
	return nil
}
