// Package economy connects the engine to whichever currency backend is
// installed on the host.
package economy

import (
	"context"

	"github.com/google/uuid"
)

// Provider is one currency backend. IsAvailable must give a definite answer
// without side effects; a registry skips providers reporting false.
type Provider interface {
	Name() string
	IsAvailable() bool
	// Deposit credits amount to player.
	Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	// Withdraw debits amount, returning domain.ErrInsufficientFunds when the
	// balance is too low. Nothing is debited on error.
	Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	Balance(ctx context.Context, player uuid.UUID) (float64, error)
	HasBalance(ctx context.Context, player uuid.UUID, amount float64) (bool, error)
	Format(amount float64) string
}
