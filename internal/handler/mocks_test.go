package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// MockReforgeService mocks reforge.Service
type MockReforgeService struct {
	mock.Mock
}

func (m *MockReforgeService) Attempt(ctx context.Context, player uuid.UUID, slot int, useProtection bool) (*domain.AttemptResult, error) {
	args := m.Called(ctx, player, slot, useProtection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttemptResult), args.Error(1)
}

func (m *MockReforgeService) Preview(ctx context.Context, player uuid.UUID, slot int) (*domain.Preview, error) {
	args := m.Called(ctx, player, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preview), args.Error(1)
}

func (m *MockReforgeService) ReforgeableSlots(ctx context.Context, player uuid.UUID) ([]domain.ReforgeableSlot, error) {
	args := m.Called(ctx, player)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReforgeableSlot), args.Error(1)
}

func (m *MockReforgeService) SuccessChance(currentLevel int) float64 {
	return m.Called(currentLevel).Get(0).(float64)
}

func (m *MockReforgeService) CoinCost(currentLevel int) float64 {
	return m.Called(currentLevel).Get(0).(float64)
}

func (m *MockReforgeService) ProtectionCost(currentLevel int) float64 {
	return m.Called(currentLevel).Get(0).(float64)
}

func (m *MockReforgeService) RequiredMaterials(currentLevel int) []domain.MaterialRequirement {
	args := m.Called(currentLevel)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.MaterialRequirement)
}

func (m *MockReforgeService) HasMaterials(ctx context.Context, player uuid.UUID, currentLevel int) (bool, error) {
	args := m.Called(ctx, player, currentLevel)
	return args.Bool(0), args.Error(1)
}

func (m *MockReforgeService) HasCoins(ctx context.Context, player uuid.UUID, currentLevel int, useProtection bool) (bool, error) {
	args := m.Called(ctx, player, currentLevel, useProtection)
	return args.Bool(0), args.Error(1)
}

func (m *MockReforgeService) FormatCurrency(amount float64) string {
	return m.Called(amount).String(0)
}

func (m *MockReforgeService) AdjustOutgoingDamage(base float64, weaponLevel int) float64 {
	return m.Called(base, weaponLevel).Get(0).(float64)
}

func (m *MockReforgeService) AdjustIncomingDamage(amount float64, armorLevels ...int) float64 {
	return m.Called(amount, armorLevels).Get(0).(float64)
}

// MockPinger mocks a level store backend for readiness checks
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockDepositor mocks the economy used by the admin deposit route
type MockDepositor struct {
	mock.Mock
}

func (m *MockDepositor) Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	return m.Called(ctx, player, amount, reason).Error(0)
}

func (m *MockDepositor) Balance(ctx context.Context, player uuid.UUID) (float64, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(float64), args.Error(1)
}

func loadCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	c, err := i18n.Load()
	require.NoError(t, err)
	return c
}

// staticConfig serves the default table without a message prefix
func staticConfig() progression.StaticSource {
	table := progression.DefaultTable()
	table.General.MessagePrefix = ""
	return progression.StaticSource{Table: table}
}
