package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/shooter-mock-api/internal/domain"
)

// MockGameplayService mocks gameplay.Service
type MockGameplayService struct {
	mock.Mock
}

func (m *MockGameplayService) Health(ctx context.Context) domain.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(domain.HealthStatus)
}

func (m *MockGameplayService) CreatePlayer(ctx context.Context, name string) (*domain.Player, *domain.Inventory, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*domain.Player)
	inv, _ := args.Get(1).(*domain.Inventory)
	return p, inv, args.Error(2)
}

func (m *MockGameplayService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, *domain.Inventory, error) {
	args := m.Called(ctx, playerID)
	p, _ := args.Get(0).(*domain.Player)
	inv, _ := args.Get(1).(*domain.Inventory)
	return p, inv, args.Error(2)
}

func (m *MockGameplayService) Shoot(ctx context.Context, playerID, weaponID, targetEnemyID string) (*domain.ShotResult, error) {
	args := m.Called(ctx, playerID, weaponID, targetEnemyID)
	res, _ := args.Get(0).(*domain.ShotResult)
	return res, args.Error(1)
}

func (m *MockGameplayService) SpawnEnemy(ctx context.Context) (*domain.SpawnResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*domain.SpawnResult)
	return res, args.Error(1)
}

func (m *MockGameplayService) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	args := m.Called(ctx, playerID)
	inv, _ := args.Get(0).(*domain.Inventory)
	return inv, args.Error(1)
}

func (m *MockGameplayService) UseItem(ctx context.Context, playerID, itemType string) (*domain.ItemUseResult, error) {
	args := m.Called(ctx, playerID, itemType)
	res, _ := args.Get(0).(*domain.ItemUseResult)
	return res, args.Error(1)
}

func (m *MockGameplayService) LevelUp(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	p, _ := args.Get(0).(*domain.Player)
	return p, args.Error(1)
}

func (m *MockGameplayService) Stats(ctx context.Context) domain.ServerStats {
	args := m.Called(ctx)
	return args.Get(0).(domain.ServerStats)
}

func (m *MockGameplayService) Weapons(ctx context.Context) []domain.Weapon {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Weapon)
}
