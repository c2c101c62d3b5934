package economy

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/domain"
)

func TestMemoryProvider_WithdrawDeposit(t *testing.T) {
	// ARRANGE
	ctx := context.Background()
	p := NewMemoryProvider(200)
	player := uuid.New()

	// ACT
	require.NoError(t, p.Withdraw(ctx, player, 150, "reforge"))
	err := p.Withdraw(ctx, player, 100, "reforge")

	// ASSERT
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	balance, _ := p.Balance(ctx, player)
	assert.Equal(t, 50.0, balance, "failed withdraw debits nothing")

	require.NoError(t, p.Deposit(ctx, player, 150, "refund"))
	balance, _ = p.Balance(ctx, player)
	assert.Equal(t, 200.0, balance)

	ok, err := p.HasBalance(ctx, player, 200)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryProvider_RejectsNegativeAmounts(t *testing.T) {
	p := NewMemoryProvider(0)
	ctx := context.Background()

	assert.ErrorIs(t, p.Deposit(ctx, uuid.New(), -1, "x"), domain.ErrInvalidAmount)
	assert.ErrorIs(t, p.Withdraw(ctx, uuid.New(), -1, "x"), domain.ErrInvalidAmount)
}

func TestMemoryProvider_ConcurrentWithdrawNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider(0)
	player := uuid.New()
	p.SetBalance(player, 100)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.Withdraw(ctx, player, 10, "race") == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, wins)
	balance, _ := p.Balance(ctx, player)
	assert.Zero(t, balance)
}

func TestMemoryProvider_Format(t *testing.T) {
	assert.Equal(t, "150 coins", NewMemoryProvider(0).Format(150))
}

func TestRegistry_ActivatePreferred(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	first := NewMemoryProvider(1)
	second := NewMemoryProvider(2)
	r.Register(ctx, "First", first)
	r.Register(ctx, "second", second)

	require.True(t, r.Activate(ctx, "SECOND"))

	balance, err := r.Balance(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2.0, balance)
}

func TestRegistry_FallsBackToFirstAvailable(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	down := NewMemoryProvider(1)
	down.SetAvailable(false)
	up := NewMemoryProvider(2)
	r.Register(ctx, "down", down)
	r.Register(ctx, "up", up)

	require.True(t, r.Activate(ctx, "missing"))

	balance, err := r.Balance(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2.0, balance)
}

func TestRegistry_NoProvider(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	player := uuid.New()

	assert.False(t, r.Activate(ctx, ""))
	assert.False(t, r.IsAvailable())
	assert.Equal(t, NoProviderName, r.ProviderName())
	assert.Equal(t, "150", r.Format(150))
	assert.ErrorIs(t, r.Withdraw(ctx, player, 1, "x"), domain.ErrEconomyUnavailable)
	assert.ErrorIs(t, r.Deposit(ctx, player, 1, "x"), domain.ErrEconomyUnavailable)
	_, err := r.HasBalance(ctx, player, 1)
	assert.ErrorIs(t, err, domain.ErrEconomyUnavailable)
}

func TestRegistry_ActiveGoesAway(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	p := NewMemoryProvider(0)
	r.Register(ctx, ProviderMemory, p)
	require.True(t, r.Activate(ctx, ProviderMemory))
	assert.True(t, r.IsAvailable())

	assert.Same(t, p, r.Active())

	p.SetAvailable(false)

	assert.False(t, r.IsAvailable())
	assert.Nil(t, r.Active())
}

func TestRegistry_Lookup(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	r.Register(ctx, "Memory", NewMemoryProvider(0))

	p, err := r.Lookup("memory")
	require.NoError(t, err)
	assert.Equal(t, ProviderMemory, p.Name())

	_, err = r.Lookup("vault")
	assert.ErrorIs(t, err, domain.ErrProviderNotFound)
}
