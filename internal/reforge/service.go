// Package reforge runs reforge attempts: validate, charge, consume, roll and
// apply the outcome.
package reforge

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/concurrency"
	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/eligibility"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/progression"
	"github.com/osse101/Reforge_Go/internal/recipe"
	"github.com/osse101/Reforge_Go/internal/utils"
)

// Economy is the currency surface the engine needs. When IsAvailable is
// false every cost check passes.
type Economy interface {
	IsAvailable() bool
	Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	Balance(ctx context.Context, player uuid.UUID) (float64, error)
	HasBalance(ctx context.Context, player uuid.UUID, amount float64) (bool, error)
	Format(amount float64) string
}

// Service defines the reforge operations
type Service interface {
	// Attempt reforges the item in slot (domain.HeldSlot for the held item).
	// Validation refusals return a wrapped domain error; funds and materials
	// refusals return a result with Outcome CannotAttempt.
	Attempt(ctx context.Context, player uuid.UUID, slot int, useProtection bool) (*domain.AttemptResult, error)
	Preview(ctx context.Context, player uuid.UUID, slot int) (*domain.Preview, error)
	ReforgeableSlots(ctx context.Context, player uuid.UUID) ([]domain.ReforgeableSlot, error)

	// Per-level queries take the item's current level; the next level is
	// what they describe.
	SuccessChance(currentLevel int) float64
	CoinCost(currentLevel int) float64
	ProtectionCost(currentLevel int) float64
	RequiredMaterials(currentLevel int) []domain.MaterialRequirement
	HasMaterials(ctx context.Context, player uuid.UUID, currentLevel int) (bool, error)
	HasCoins(ctx context.Context, player uuid.UUID, currentLevel int, useProtection bool) (bool, error)
	FormatCurrency(amount float64) string

	AdjustOutgoingDamage(base float64, weaponLevel int) float64
	AdjustIncomingDamage(amount float64, armorLevels ...int) float64
}

type service struct {
	config   progression.Source
	filter   *eligibility.Filter
	store    levelstore.Store
	gw       inventory.Gateway
	economy  Economy
	recipes  *recipe.Resolver
	inFlight *concurrency.InFlight
	rnd      func() float64 // For rolling RNG
}

// NewService creates a new reforge service
func NewService(config progression.Source, filter *eligibility.Filter, store levelstore.Store, gw inventory.Gateway, economy Economy, recipes *recipe.Resolver) Service {
	return &service{
		config:   config,
		filter:   filter,
		store:    store,
		gw:       gw,
		economy:  economy,
		recipes:  recipes,
		inFlight: concurrency.NewInFlight(),
		rnd:      utils.RandomFloat,
	}
}

func (s *service) FormatCurrency(amount float64) string {
	return s.economy.Format(amount)
}
