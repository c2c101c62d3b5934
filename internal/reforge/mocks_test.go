package reforge

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/economy"
	"github.com/osse101/Reforge_Go/internal/inventory"
)

// MockEconomy is a mock implementation of Economy
type MockEconomy struct {
	mock.Mock
}

func (m *MockEconomy) IsAvailable() bool {
	return m.Called().Bool(0)
}

func (m *MockEconomy) Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	return m.Called(ctx, player, amount, reason).Error(0)
}

func (m *MockEconomy) Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	return m.Called(ctx, player, amount, reason).Error(0)
}

func (m *MockEconomy) Balance(ctx context.Context, player uuid.UUID) (float64, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockEconomy) HasBalance(ctx context.Context, player uuid.UUID, amount float64) (bool, error) {
	args := m.Called(ctx, player, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockEconomy) Format(amount float64) string {
	return m.Called(amount).String(0)
}

// unloadingProvider goes unavailable right after taking coins
type unloadingProvider struct {
	*economy.MemoryProvider
}

func (p unloadingProvider) Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	err := p.MemoryProvider.Withdraw(ctx, player, amount, reason)
	p.SetAvailable(false)
	return err
}

// flakyGateway fails reads of one slot and can fail every write
type flakyGateway struct {
	*inventory.Memory
	badSlot    int
	failWrites bool
}

func (g *flakyGateway) SlotAt(ctx context.Context, player uuid.UUID, slot int) (domain.ItemStack, error) {
	if slot == g.badSlot {
		return domain.ItemStack{}, domain.ErrSlotOutOfRange
	}
	return g.Memory.SlotAt(ctx, player, slot)
}

func (g *flakyGateway) SetSlot(ctx context.Context, player uuid.UUID, slot int, stack domain.ItemStack) error {
	if g.failWrites {
		return domain.ErrInventoryFull
	}
	return g.Memory.SetSlot(ctx, player, slot, stack)
}
