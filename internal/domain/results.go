package domain

import (
	"strconv"
	"time"
)

// ShotResult describes the outcome of a single shot.
// Damage is reported only; no health is changed by shooting.
type ShotResult struct {
	PlayerID      string    `json:"playerId"`
	WeaponID      string    `json:"weaponId"`
	WeaponName    string    `json:"weaponName"`
	Damage        int       `json:"damage"`
	Hit           bool      `json:"hit"`
	Accuracy      string    `json:"accuracy"`
	TargetEnemyID string    `json:"targetEnemyId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// FormatAccuracy renders an accuracy roll with two decimals
func FormatAccuracy(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// ItemUseResult is the outcome of using an inventory item.
// Success=false is an expected outcome (nothing left, unknown item), not an error.
type ItemUseResult struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	ItemType     string     `json:"itemType"`
	NewHealth    *int       `json:"newHealth,omitempty"`
	DamageCaused *int       `json:"damageCaused,omitempty"`
	Radius       string     `json:"radius,omitempty"`
	AmmoRestored *int       `json:"ammoRestored,omitempty"`
	Inventory    *Inventory `json:"inventory,omitempty"`
}

// SpawnResult is a freshly spawned enemy and its announcement
type SpawnResult struct {
	Enemy   Enemy  `json:"enemy"`
	Message string `json:"message"`
}

// HealthStatus is the liveness payload
type HealthStatus struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// MemoryStats mirrors the runtime memory figures reported by stats
type MemoryStats struct {
	AllocBytes      uint64 `json:"allocBytes"`
	TotalAllocBytes uint64 `json:"totalAllocBytes"`
	SysBytes        uint64 `json:"sysBytes"`
	HeapInUseBytes  uint64 `json:"heapInUseBytes"`
	NumGC           uint32 `json:"numGC"`
	Goroutines      int    `json:"goroutines"`
}

// ServerStats summarizes store contents and host runtime figures
type ServerStats struct {
	Players       int         `json:"players"`
	Enemies       int         `json:"enemies"`
	Weapons       int         `json:"weapons"`
	ServerTime    time.Time   `json:"serverTime"`
	UptimeSeconds float64     `json:"uptimeSeconds"`
	Memory        MemoryStats `json:"memory"`
}
