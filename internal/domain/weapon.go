package domain

// Weapon is an entry of the shared weapon catalog.
// Ammo is global to the catalog, not per player.
type Weapon struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Damage int    `json:"damage"`
	Ammo   int    `json:"ammo"`
}

// DefaultWeapons returns the catalog seeded at startup, in listing order
func DefaultWeapons() []Weapon {
	return []Weapon{
		{ID: WeaponPistol, Name: "Pistola", Damage: 25, Ammo: 12},
		{ID: WeaponRifle, Name: "Rifle de Asalto", Damage: 45, Ammo: 30},
		{ID: WeaponShotgun, Name: "Escopeta", Damage: 80, Ammo: 8},
		{ID: WeaponSniper, Name: "Rifle de Francotirador", Damage: 100, Ammo: 5},
	}
}
