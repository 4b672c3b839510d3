// Package gameplay implements the mock shooter simulation: players, the shared
// weapon catalog, enemies and inventories.
package gameplay

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/shooter-mock-api/internal/concurrency"
	"github.com/osse101/shooter-mock-api/internal/domain"
	"github.com/osse101/shooter-mock-api/internal/event"
	"github.com/osse101/shooter-mock-api/internal/logger"
	"github.com/osse101/shooter-mock-api/internal/random"
	"github.com/osse101/shooter-mock-api/internal/repository"
)

// Service defines the gameplay operations exposed over HTTP
type Service interface {
	Health(ctx context.Context) domain.HealthStatus
	CreatePlayer(ctx context.Context, name string) (*domain.Player, *domain.Inventory, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, *domain.Inventory, error)
	Shoot(ctx context.Context, playerID, weaponID, targetEnemyID string) (*domain.ShotResult, error)
	SpawnEnemy(ctx context.Context) (*domain.SpawnResult, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
	UseItem(ctx context.Context, playerID, itemType string) (*domain.ItemUseResult, error)
	LevelUp(ctx context.Context, playerID string) (*domain.Player, error)
	Stats(ctx context.Context) domain.ServerStats
	Weapons(ctx context.Context) []domain.Weapon
}

// Clock returns the current time
type Clock func() time.Time

type service struct {
	repo    repository.Store
	rnd     random.Source
	bus     event.Bus
	locks   *concurrency.LockManager
	now     Clock
	started time.Time
	version string
}

// NewService creates the gameplay service. version is reported by Health and falls back to
// domain.ServiceVersion when empty. A nil clock uses time.Now; a nil bus disables events.
func NewService(repo repository.Store, rnd random.Source, bus event.Bus, version string, clock Clock) Service {
	if clock == nil {
		clock = time.Now
	}
	if version == "" {
		version = domain.ServiceVersion
	}
	return &service{
		repo:    repo,
		rnd:     rnd,
		bus:     bus,
		locks:   concurrency.NewLockManager(),
		now:     clock,
		started: clock(),
		version: version,
	}
}

func (s *service) Health(ctx context.Context) domain.HealthStatus {
	return domain.HealthStatus{
		Status:    domain.HealthStatusOK,
		Message:   HealthMessage,
		Timestamp: s.now(),
		Version:   s.version,
	}
}

func (s *service) CreatePlayer(ctx context.Context, name string) (*domain.Player, *domain.Inventory, error) {
	log := logger.FromContext(ctx)

	id := uuid.NewString()
	if name == "" {
		name = domain.PlayerNamePrefix + id[:domain.PlayerNameIDLength]
	}

	player := domain.Player{
		ID:         id,
		Name:       name,
		Level:      domain.StartingLevel,
		Experience: domain.StartingExperience,
		Health:     domain.MaxHealth,
		Armor:      domain.StartingArmor,
		Weapons:    []string{domain.StarterWeapon},
		CreatedAt:  s.now(),
	}
	inventory := domain.NewInventory(id)

	if err := s.repo.CreatePlayer(ctx, player, inventory); err != nil {
		return nil, nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info(LogMsgPlayerCreated, "player_id", id, "name", name)
	event.PublishBestEffort(ctx, s.bus, event.NewPlayerCreatedEvent(player))

	return &player, &inventory, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, *domain.Inventory, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	inventory, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	return player, inventory, nil
}

func (s *service) Shoot(ctx context.Context, playerID, weaponID, targetEnemyID string) (*domain.ShotResult, error) {
	log := logger.FromContext(ctx)

	if !s.repo.PlayerExists(ctx, playerID) {
		return nil, domain.ErrPlayerNotFound
	}

	if weaponID == "" {
		weaponID = domain.StarterWeapon
	}
	// Resolve before locking so unknown IDs never allocate a lock
	if _, err := s.repo.GetWeapon(ctx, weaponID); err != nil {
		return nil, fmt.Errorf("%w: %s", err, weaponID)
	}

	var (
		result   domain.ShotResult
		ammoLeft int
	)
	err := s.locks.WithLock(concurrency.WeaponKey(weaponID), func() error {
		weapon, err := s.repo.GetWeapon(ctx, weaponID)
		if err != nil {
			return err
		}

		accuracy := random.FloatRange(s.rnd, 0, domain.AccuracyMax)

		if weapon.Ammo > 0 {
			weapon.Ammo--
		}
		if err := s.repo.UpdateWeapon(ctx, *weapon); err != nil {
			return err
		}
		ammoLeft = weapon.Ammo

		result = domain.ShotResult{
			PlayerID:      playerID,
			WeaponID:      weapon.ID,
			WeaponName:    weapon.Name,
			Damage:        weapon.Damage,
			Hit:           accuracy > domain.HitThreshold,
			Accuracy:      domain.FormatAccuracy(accuracy),
			TargetEnemyID: targetEnemyID,
			Timestamp:     s.now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgShotFired, "player_id", playerID, "weapon_id", weaponID, "hit", result.Hit, "ammo_left", ammoLeft)
	event.PublishBestEffort(ctx, s.bus, event.NewWeaponFiredEvent(result, ammoLeft))

	return &result, nil
}

func (s *service) SpawnEnemy(ctx context.Context) (*domain.SpawnResult, error) {
	log := logger.FromContext(ctx)

	enemy := domain.Enemy{
		ID:     uuid.NewString(),
		Type:   random.Pick(s.rnd, domain.EnemyTypes),
		Health: random.IntRange(s.rnd, domain.EnemyHealthMin, domain.EnemyHealthMax),
		Position: domain.Position{
			X: random.FloatRange(s.rnd, 0, domain.EnemyPositionMax),
			Y: random.FloatRange(s.rnd, 0, domain.EnemyPositionMax),
			Z: random.FloatRange(s.rnd, 0, domain.EnemyPositionMax),
		},
		SpawnedAt: s.now(),
	}

	if err := s.repo.CreateEnemy(ctx, enemy); err != nil {
		return nil, fmt.Errorf("failed to spawn enemy: %w", err)
	}

	log.Debug(LogMsgEnemySpawned, "enemy_id", enemy.ID, "type", enemy.Type, "health", enemy.Health)
	event.PublishBestEffort(ctx, s.bus, event.NewEnemySpawnedEvent(enemy))

	return &domain.SpawnResult{
		Enemy:   enemy,
		Message: spawnMessage(enemy.Type),
	}, nil
}

// spawnMessage builds the type-specific announcement for an enemy label
func spawnMessage(enemyType string) string {
	// Casers are stateful and not safe for concurrent use
	label := cases.Title(language.English).String(enemyType)
	format, ok := spawnMessages[enemyType]
	if !ok {
		format = MsgEnemySpawnedFallback
	}
	return fmt.Sprintf(format, label)
}

func (s *service) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return s.repo.GetInventory(ctx, playerID)
}

func (s *service) LevelUp(ctx context.Context, playerID string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if !s.repo.PlayerExists(ctx, playerID) {
		return nil, domain.ErrPlayerNotFound
	}

	var (
		updated  *domain.Player
		oldLevel int
	)
	err := s.locks.WithLock(concurrency.PlayerKey(playerID), func() error {
		player, err := s.repo.GetPlayer(ctx, playerID)
		if err != nil {
			return err
		}

		oldLevel = player.Level
		player.Level++
		player.Experience = 0
		player.Health = domain.MaxHealth
		player.Armor = domain.StartingArmor

		if err := s.repo.UpdatePlayer(ctx, *player); err != nil {
			return err
		}
		updated = player
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgLevelUp, "player_id", playerID, "old_level", oldLevel, "new_level", updated.Level)
	event.PublishBestEffort(ctx, s.bus, event.NewPlayerLevelUpEvent(playerID, oldLevel, updated.Level))

	return updated, nil
}

func (s *service) Stats(ctx context.Context) domain.ServerStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	now := s.now()
	return domain.ServerStats{
		Players:       s.repo.CountPlayers(ctx),
		Enemies:       s.repo.CountEnemies(ctx),
		Weapons:       s.repo.CountWeapons(ctx),
		ServerTime:    now,
		UptimeSeconds: now.Sub(s.started).Seconds(),
		Memory: domain.MemoryStats{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			HeapInUseBytes:  mem.HeapInuse,
			NumGC:           mem.NumGC,
			Goroutines:      runtime.NumGoroutine(),
		},
	}
}

func (s *service) Weapons(ctx context.Context) []domain.Weapon {
	return s.repo.ListWeapons(ctx)
}
