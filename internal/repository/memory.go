package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/shooter-mock-api/internal/domain"
)

// Memory is the process-lifetime Store. All maps are guarded by a single RWMutex;
// values are copied in and out so callers never alias stored records.
// Nothing is ever evicted.
type Memory struct {
	mu          sync.RWMutex
	players     map[string]domain.Player
	inventories map[string]domain.Inventory
	weapons     map[string]domain.Weapon
	weaponOrder []string
	enemies     map[string]domain.Enemy
}

// NewMemory creates a Memory store seeded with the default weapon catalog
func NewMemory() *Memory {
	return NewMemoryWithWeapons(domain.DefaultWeapons())
}

// NewMemoryWithWeapons creates a Memory store seeded with the given catalog
func NewMemoryWithWeapons(weapons []domain.Weapon) *Memory {
	m := &Memory{
		players:     make(map[string]domain.Player),
		inventories: make(map[string]domain.Inventory),
		weapons:     make(map[string]domain.Weapon, len(weapons)),
		enemies:     make(map[string]domain.Enemy),
	}
	for _, w := range weapons {
		if _, dup := m.weapons[w.ID]; !dup {
			m.weaponOrder = append(m.weaponOrder, w.ID)
		}
		m.weapons[w.ID] = w
	}
	return m
}

func (m *Memory) CreatePlayer(ctx context.Context, player domain.Player, inventory domain.Inventory) error {
	if player.ID == "" || inventory.PlayerID != player.ID {
		return fmt.Errorf("%w: inventory must belong to player", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.players[player.ID]; exists {
		return fmt.Errorf("%w: duplicate player id %s", domain.ErrInvalidInput, player.ID)
	}
	m.players[player.ID] = player.Clone()
	m.inventories[player.ID] = inventory
	return nil
}

func (m *Memory) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	out := p.Clone()
	return &out, nil
}

func (m *Memory) UpdatePlayer(ctx context.Context, player domain.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	m.players[player.ID] = player.Clone()
	return nil
}

func (m *Memory) PlayerExists(ctx context.Context, playerID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.players[playerID]
	return ok
}

func (m *Memory) CountPlayers(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

func (m *Memory) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inv, ok := m.inventories[playerID]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	return &inv, nil
}

func (m *Memory) UpdateInventory(ctx context.Context, inventory domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.inventories[inventory.PlayerID]; !ok {
		return domain.ErrInventoryNotFound
	}
	m.inventories[inventory.PlayerID] = inventory
	return nil
}

func (m *Memory) GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.weapons[weaponID]
	if !ok {
		return nil, domain.ErrWeaponNotFound
	}
	return &w, nil
}

// UpdateWeapon replaces a catalog entry. The catalog never grows after construction.
func (m *Memory) UpdateWeapon(ctx context.Context, weapon domain.Weapon) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.weapons[weapon.ID]; !ok {
		return domain.ErrWeaponNotFound
	}
	m.weapons[weapon.ID] = weapon
	return nil
}

func (m *Memory) ListWeapons(ctx context.Context) []domain.Weapon {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Weapon, 0, len(m.weaponOrder))
	for _, id := range m.weaponOrder {
		out = append(out, m.weapons[id])
	}
	return out
}

func (m *Memory) CountWeapons(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.weapons)
}

func (m *Memory) CreateEnemy(ctx context.Context, enemy domain.Enemy) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.enemies[enemy.ID]; exists {
		return fmt.Errorf("%w: duplicate enemy id %s", domain.ErrInvalidInput, enemy.ID)
	}
	m.enemies[enemy.ID] = enemy
	return nil
}

func (m *Memory) GetEnemy(ctx context.Context, enemyID string) (*domain.Enemy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.enemies[enemyID]
	if !ok {
		return nil, fmt.Errorf("%w: enemy %s", domain.ErrNotFound, enemyID)
	}
	return &e, nil
}

func (m *Memory) CountEnemies(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.enemies)
}
