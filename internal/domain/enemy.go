package domain

import "time"

// Enemy is a spawned opponent. Enemies are never mutated after spawning.
type Enemy struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Health    int       `json:"health"`
	Position  Position  `json:"position"`
	SpawnedAt time.Time `json:"spawnedAt"`
}
