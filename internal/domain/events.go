package domain

// Event type constants used for event bus subscriptions, metrics and the live stream.
//
// Event types follow the pattern: <entity>.<action> (e.g., "weapon.fired")
const (
	// EventTypePlayerCreated is published after a player and its inventory are stored
	EventTypePlayerCreated = "player.created"

	// EventTypeWeaponFired is published for every resolved shot, hit or miss
	EventTypeWeaponFired = "weapon.fired"

	// EventTypeEnemySpawned is published when an enemy is spawned
	EventTypeEnemySpawned = "enemy.spawned"

	// EventTypeItemUsed is published for every use-item call, including unsuccessful ones
	EventTypeItemUsed = "item.used"

	// EventTypePlayerLevelUp is published when a player levels up
	EventTypePlayerLevelUp = "player.level_up"
)

// PlayerCreatedPayload is the payload of EventTypePlayerCreated
type PlayerCreatedPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// WeaponFiredPayload is the payload of EventTypeWeaponFired
type WeaponFiredPayload struct {
	PlayerID      string `json:"player_id"`
	WeaponID      string `json:"weapon_id"`
	Hit           bool   `json:"hit"`
	AmmoLeft      int    `json:"ammo_left"`
	TargetEnemyID string `json:"target_enemy_id,omitempty"`
}

// EnemySpawnedPayload is the payload of EventTypeEnemySpawned
type EnemySpawnedPayload struct {
	EnemyID string `json:"enemy_id"`
	Type    string `json:"type"`
	Health  int    `json:"health"`
}

// ItemUsedPayload is the payload of EventTypeItemUsed
type ItemUsedPayload struct {
	PlayerID string `json:"player_id"`
	ItemType string `json:"item_type"`
	Success  bool   `json:"success"`
}

// PlayerLevelUpPayload is the payload of EventTypePlayerLevelUp
type PlayerLevelUpPayload struct {
	PlayerID string `json:"player_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}
