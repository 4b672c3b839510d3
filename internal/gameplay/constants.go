package gameplay

import "github.com/osse101/shooter-mock-api/internal/domain"

// Health check
const (
	HealthMessage = "Shooter mock API is running"
)

// Use-item result messages
const (
	MsgMedicalKitUsed  = "Medical kit used. Health restored to %d"
	MsgGrenadeThrown   = "Grenade thrown! Damage caused: %d"
	MsgAmmoBoxUsed     = "Ammo box used. %d rounds restored"
	MsgItemUnavailable = "No %s available"
)

// Spawn announcements by enemy type. %s is the title-cased label.
var spawnMessages = map[string]string{
	domain.EnemyZombie:  "A %s rises from the ground and shambles toward you!",
	domain.EnemySoldier: "A hostile %s has entered the area!",
	domain.EnemyRobot:   "A %s powers up and scans for targets!",
	domain.EnemyAlien:   "An %s has landed from outer space!",
}

// MsgEnemySpawnedFallback is used for a type without a dedicated announcement
const MsgEnemySpawnedFallback = "A %s has spawned!"

// Log messages
const (
	LogMsgPlayerCreated = "Player created"
	LogMsgShotFired     = "Shot fired"
	LogMsgEnemySpawned  = "Enemy spawned"
	LogMsgItemUsed      = "Item used"
	LogMsgLevelUp       = "Player leveled up"
)
