package domain

// Inventory holds a player's consumable counts. One per player, created with the player.
type Inventory struct {
	PlayerID    string `json:"player_id"`
	MedicalKits int    `json:"medical_kits"`
	AmmoBoxes   int    `json:"ammo_boxes"`
	Grenades    int    `json:"grenades"`
}

// NewInventory returns the starting inventory for a player
func NewInventory(playerID string) Inventory {
	return Inventory{
		PlayerID:    playerID,
		MedicalKits: StartingMedicalKits,
		AmmoBoxes:   StartingAmmoBoxes,
		Grenades:    StartingGrenades,
	}
}

// Count returns the remaining count for an item type and whether the type is known
func (i Inventory) Count(itemType string) (int, bool) {
	switch itemType {
	case ItemMedicalKit:
		return i.MedicalKits, true
	case ItemGrenade:
		return i.Grenades, true
	case ItemAmmoBox:
		return i.AmmoBoxes, true
	}
	return 0, false
}

// Consume decrements the count of itemType by one.
// Returns false without mutating when the type is unknown or the count is zero.
func (i *Inventory) Consume(itemType string) bool {
	var count *int
	switch itemType {
	case ItemMedicalKit:
		count = &i.MedicalKits
	case ItemGrenade:
		count = &i.Grenades
	case ItemAmmoBox:
		count = &i.AmmoBoxes
	default:
		return false
	}
	if *count <= 0 {
		return false
	}
	*count--
	return true
}
