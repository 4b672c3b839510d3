package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInventory_StartingCounts(t *testing.T) {
	inv := NewInventory("p1")

	assert.Equal(t, "p1", inv.PlayerID)
	assert.Equal(t, 3, inv.MedicalKits)
	assert.Equal(t, 5, inv.AmmoBoxes)
	assert.Equal(t, 2, inv.Grenades)
}

func TestInventory_Consume(t *testing.T) {
	tests := []struct {
		name     string
		inv      Inventory
		itemType string
		wantOK   bool
		want     Inventory
	}{
		{
			name:     "medical kit decrements",
			inv:      Inventory{MedicalKits: 2},
			itemType: ItemMedicalKit,
			wantOK:   true,
			want:     Inventory{MedicalKits: 1},
		},
		{
			name:     "grenade decrements",
			inv:      Inventory{Grenades: 1},
			itemType: ItemGrenade,
			wantOK:   true,
			want:     Inventory{Grenades: 0},
		},
		{
			name:     "ammo box decrements",
			inv:      Inventory{AmmoBoxes: 5},
			itemType: ItemAmmoBox,
			wantOK:   true,
			want:     Inventory{AmmoBoxes: 4},
		},
		{
			name:     "empty count is not consumed",
			inv:      Inventory{MedicalKits: 0, Grenades: 2},
			itemType: ItemMedicalKit,
			wantOK:   false,
			want:     Inventory{MedicalKits: 0, Grenades: 2},
		},
		{
			name:     "unknown item leaves inventory untouched",
			inv:      NewInventory("p"),
			itemType: "bandage",
			wantOK:   false,
			want:     NewInventory("p"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.inv
			ok := inv.Consume(tt.itemType)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, inv)
		})
	}
}

func TestInventory_Count(t *testing.T) {
	inv := NewInventory("p")

	n, ok := inv.Count(ItemGrenade)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = inv.Count("bandage")
	assert.False(t, ok)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrPlayerNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrInventoryNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrWeaponNotFound, ErrInvalidInput))
	assert.False(t, errors.Is(ErrWeaponNotFound, ErrNotFound))
	assert.Contains(t, ErrPlayerNotFound.Error(), ErrMsgPlayerNotFound)
}

func TestFormatAccuracy(t *testing.T) {
	assert.Equal(t, "30.00", FormatAccuracy(30))
	assert.Equal(t, "99.99", FormatAccuracy(99.994))
	assert.Equal(t, "0.13", FormatAccuracy(0.125000001))
}

func TestPlayerClone_DoesNotShareWeapons(t *testing.T) {
	p := Player{ID: "p", Weapons: []string{WeaponPistol}}
	c := p.Clone()
	c.Weapons[0] = WeaponRifle

	assert.Equal(t, WeaponPistol, p.Weapons[0])
}

func TestDefaultWeapons(t *testing.T) {
	weapons := DefaultWeapons()
	assert.Len(t, weapons, 4)
	assert.Equal(t, WeaponPistol, weapons[0].ID)
	assert.Equal(t, "Rifle de Asalto", weapons[1].Name)
	assert.Equal(t, 45, weapons[1].Damage)
	assert.Equal(t, 30, weapons[1].Ammo)
}
