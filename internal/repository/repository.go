// Package repository defines storage for players, inventories, weapons and enemies.
package repository

import (
	"context"

	"github.com/osse101/shooter-mock-api/internal/domain"
)

// Player defines the interface for player storage.
// A player is only ever created together with its inventory.
type Player interface {
	CreatePlayer(ctx context.Context, player domain.Player, inventory domain.Inventory) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error
	PlayerExists(ctx context.Context, playerID string) bool
	CountPlayers(ctx context.Context) int
}

// Inventory defines the interface for inventory storage, keyed by player ID
type Inventory interface {
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
	UpdateInventory(ctx context.Context, inventory domain.Inventory) error
}

// Weapon defines the interface for the shared weapon catalog
type Weapon interface {
	GetWeapon(ctx context.Context, weaponID string) (*domain.Weapon, error)
	UpdateWeapon(ctx context.Context, weapon domain.Weapon) error
	ListWeapons(ctx context.Context) []domain.Weapon
	CountWeapons(ctx context.Context) int
}

// Enemy defines the interface for enemy storage
type Enemy interface {
	CreateEnemy(ctx context.Context, enemy domain.Enemy) error
	GetEnemy(ctx context.Context, enemyID string) (*domain.Enemy, error)
	CountEnemies(ctx context.Context) int
}

// Store composes every entity store the gameplay service needs
type Store interface {
	Player
	Inventory
	Weapon
	Enemy
}
