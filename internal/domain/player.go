package domain

import "time"

// Position is a point in the game world
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Player represents a registered player
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	Health     int       `json:"health"`
	Armor      int       `json:"armor"`
	Position   Position  `json:"position"`
	Weapons    []string  `json:"weapons"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Clone returns a copy that shares no slices with the receiver
func (p Player) Clone() Player {
	out := p
	out.Weapons = append([]string(nil), p.Weapons...)
	return out
}
