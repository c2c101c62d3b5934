package economy

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/concurrency"
	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// MemoryProvider keeps balances in process memory. New players start with
// the configured starting balance.
type MemoryProvider struct {
	starting float64
	currency string
	locks    *concurrency.LockManager
	enabled  atomic.Bool

	mu       sync.RWMutex
	balances map[uuid.UUID]float64
}

// NewMemoryProvider creates an available provider
func NewMemoryProvider(startingBalance float64) *MemoryProvider {
	p := &MemoryProvider{
		starting: startingBalance,
		currency: DefaultCurrencyName,
		locks:    concurrency.NewLockManager(),
		balances: make(map[uuid.UUID]float64),
	}
	p.enabled.Store(true)
	return p
}

func (p *MemoryProvider) Name() string { return ProviderMemory }

func (p *MemoryProvider) IsAvailable() bool { return p.enabled.Load() }

// SetAvailable toggles availability, e.g. when the backing add-on unloads
func (p *MemoryProvider) SetAvailable(available bool) { p.enabled.Store(available) }

// SetBalance overwrites a player's balance
func (p *MemoryProvider) SetBalance(player uuid.UUID, amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[player] = amount
}

func (p *MemoryProvider) Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	if amount < 0 {
		return fmt.Errorf("%w: "+ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount)
	}

	p.locks.WithLock(player.String(), func() {
		p.store(player, p.load(player)+amount)
	})
	logger.FromContext(ctx).Debug(LogMsgDeposit, "player", player, "amount", amount, "reason", reason)
	return nil
}

func (p *MemoryProvider) Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error {
	if amount < 0 {
		return fmt.Errorf("%w: "+ErrMsgNegativeAmountFmt, domain.ErrInvalidAmount, amount)
	}

	var err error
	p.locks.WithLock(player.String(), func() {
		balance := p.load(player)
		if balance < amount {
			err = fmt.Errorf("%w: "+ErrMsgBalanceFmt, domain.ErrInsufficientFunds, amount, balance)
			return
		}
		p.store(player, balance-amount)
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgWithdraw, "player", player, "amount", amount, "reason", reason)
	return nil
}

func (p *MemoryProvider) Balance(_ context.Context, player uuid.UUID) (float64, error) {
	return p.load(player), nil
}

func (p *MemoryProvider) HasBalance(_ context.Context, player uuid.UUID, amount float64) (bool, error) {
	return p.load(player) >= amount, nil
}

func (p *MemoryProvider) Format(amount float64) string {
	return fmt.Sprintf("%.0f %s", amount, p.currency)
}

func (p *MemoryProvider) load(player uuid.UUID) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if balance, ok := p.balances[player]; ok {
		return balance
	}
	return p.starting
}

func (p *MemoryProvider) store(player uuid.UUID, balance float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balances[player] = balance
}
