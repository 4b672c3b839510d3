package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/shooter-mock-api/internal/domain"
)

func newTestPlayer(id string) domain.Player {
	return domain.Player{
		ID:        id,
		Name:      "tester",
		Level:     1,
		Health:    100,
		Armor:     50,
		Weapons:   []string{domain.WeaponPistol},
		CreatedAt: time.Now(),
	}
}

func TestMemory_CreatePlayer_StoresPair(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1"))
	require.NoError(t, err)

	assert.True(t, m.PlayerExists(ctx, "p1"))
	assert.Equal(t, 1, m.CountPlayers(ctx))

	inv, err := m.GetInventory(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, inv.MedicalKits)
}

func TestMemory_CreatePlayer_RejectsMismatchedInventory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	err := m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("other"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, m.PlayerExists(ctx, "p1"))
	_, err = m.GetInventory(ctx, "other")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_CreatePlayer_RejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1")))
	err := m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMemory_GetPlayer_NotFound(t *testing.T) {
	_, err := NewMemory().GetPlayer(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_GetPlayer_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1")))

	p, err := m.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	p.Health = 1
	p.Weapons[0] = domain.WeaponSniper

	again, err := m.GetPlayer(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 100, again.Health)
	assert.Equal(t, domain.WeaponPistol, again.Weapons[0])
}

func TestMemory_UpdatePlayer(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1")))

	p, _ := m.GetPlayer(ctx, "p1")
	p.Level = 7
	require.NoError(t, m.UpdatePlayer(ctx, *p))

	again, _ := m.GetPlayer(ctx, "p1")
	assert.Equal(t, 7, again.Level)

	assert.ErrorIs(t, m.UpdatePlayer(ctx, newTestPlayer("ghost")), domain.ErrPlayerNotFound)
}

func TestMemory_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.CreatePlayer(ctx, newTestPlayer("p1"), domain.NewInventory("p1")))

	inv, _ := m.GetInventory(ctx, "p1")
	inv.Grenades = 0
	require.NoError(t, m.UpdateInventory(ctx, *inv))

	again, _ := m.GetInventory(ctx, "p1")
	assert.Equal(t, 0, again.Grenades)

	err := m.UpdateInventory(ctx, domain.NewInventory("ghost"))
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}

func TestMemory_Weapons(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	weapons := m.ListWeapons(ctx)
	require.Len(t, weapons, 4)
	assert.Equal(t, []string{"pistol", "rifle", "shotgun", "sniper"},
		[]string{weapons[0].ID, weapons[1].ID, weapons[2].ID, weapons[3].ID})
	assert.Equal(t, 4, m.CountWeapons(ctx))

	rifle, err := m.GetWeapon(ctx, domain.WeaponRifle)
	require.NoError(t, err)
	rifle.Ammo--
	require.NoError(t, m.UpdateWeapon(ctx, *rifle))

	again, _ := m.GetWeapon(ctx, domain.WeaponRifle)
	assert.Equal(t, 29, again.Ammo)

	_, err = m.GetWeapon(ctx, "bazooka")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = m.UpdateWeapon(ctx, domain.Weapon{ID: "bazooka"})
	assert.ErrorIs(t, err, domain.ErrWeaponNotFound)
	assert.Equal(t, 4, m.CountWeapons(ctx))
}

func TestMemory_Enemies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.CreateEnemy(ctx, domain.Enemy{ID: "e1", Type: domain.EnemyRobot, Health: 50}))
	assert.Equal(t, 1, m.CountEnemies(ctx))

	e, err := m.GetEnemy(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.EnemyRobot, e.Type)

	_, err = m.GetEnemy(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, m.CreateEnemy(ctx, domain.Enemy{ID: "e1"}), domain.ErrInvalidInput)
}

func TestMemory_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('A'+i%26)) + string(rune('a'+i/26))
			_ = m.CreatePlayer(ctx, newTestPlayer(id), domain.NewInventory(id))
			_ = m.CreateEnemy(ctx, domain.Enemy{ID: id})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, m.CountPlayers(ctx))
	assert.Equal(t, 50, m.CountEnemies(ctx))
}
