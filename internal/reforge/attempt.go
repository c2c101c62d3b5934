package reforge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/economy"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// target is a validated item together with the level it is being raised to
type target struct {
	slot    int
	stack   domain.ItemStack
	current int
	next    int
	def     progression.LevelDefinition
}

// Attempt runs one reforge attempt to completion. A second attempt for the
// same player while one is running is refused with domain.ErrAttemptInProgress.
func (s *service) Attempt(ctx context.Context, player uuid.UUID, slot int, useProtection bool) (*domain.AttemptResult, error) {
	if player == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidPlayer)
	}
	ctx = logger.WithPlayer(ctx, player.String())
	log := logger.FromContext(ctx)

	key := player.String()
	if !s.inFlight.TryAcquire(key) {
		log.Info(LogMsgAttemptBusy, "slot", slot)
		metrics.RecordRefusal(RefusalInProgress)
		return nil, fmt.Errorf("%w: %s", domain.ErrAttemptInProgress, key)
	}
	defer s.inFlight.Release(key)

	// One snapshot for the whole attempt
	table := s.config.Current()

	t, err := s.validate(ctx, table, player, slot)
	if err != nil {
		log.Info(LogMsgAttemptRefused, "slot", slot, "error", err)
		return nil, err
	}

	protected := useProtection && table.General.ProtectionEnabled
	result := &domain.AttemptResult{
		ItemID:        t.stack.ItemID,
		DisplayName:   s.filter.DisplayName(t.stack.ItemID),
		CurrentLevel:  t.current,
		TargetLevel:   t.next,
		SuccessChance: t.def.SuccessChance,
		TotalCost:     table.TotalCost(t.def.CoinCost, protected),
		Category:      s.filter.Category(t.stack.ItemID),
		Protected:     protected,
	}
	log.Info(LogMsgAttemptStarted, "item", t.stack.ItemID, "slot", slot, "target_level", t.next, "cost", result.TotalCost, "protected", protected)

	payer, charged, ok := s.charge(ctx, player, result.TotalCost)
	if !ok {
		return s.refuse(ctx, result, domain.ReasonInsufficientFunds), nil
	}

	if err := inventory.Consume(ctx, s.gw, player, t.def.Materials); err != nil {
		if !errors.Is(err, domain.ErrInsufficientMaterials) {
			log.Warn(LogMsgConsumeFailed, "error", err)
		}
		s.refund(ctx, payer, player, charged)
		return s.refuse(ctx, result, domain.ReasonInsufficientMaterials), nil
	}
	metrics.RecordMaterialsConsumed(totalUnits(t.def.Materials))

	result.Roll = s.rnd()
	rollLog := log.Debug
	if table.General.Debug {
		rollLog = log.Info
	}
	rollLog(LogMsgRoll, "item", t.stack.ItemID, "target_level", t.next, "roll", result.Roll, "chance", t.def.SuccessChance)

	switch {
	case result.Roll < t.def.SuccessChance:
		s.applySuccess(ctx, table, player, t, result)
	case protected:
		s.applyProtectedFailure(ctx, player, t, result)
	default:
		s.applyFailure(ctx, table, player, t, result)
	}

	metrics.RecordAttempt(result)
	log.Info(LogMsgAttemptResolved, "item", t.stack.ItemID, "outcome", result.Outcome, "level", levelAfter(result))
	return result, nil
}

// validate checks the item without touching any resource
func (s *service) validate(ctx context.Context, table *progression.Table, player uuid.UUID, slot int) (*target, error) {
	stack, err := inventory.ItemAt(ctx, s.gw, player, slot)
	if err != nil {
		// An unreadable slot is treated like an empty one
		logger.FromContext(ctx).Warn(LogMsgReadItemFailed, "slot", slot, "error", err)
		stack = domain.ItemStack{}
	}
	if stack.IsEmpty() {
		metrics.RecordRefusal(RefusalNoItem)
		return nil, fmt.Errorf("%w: "+ErrMsgSlotFmt, domain.ErrItemNotFound, slot)
	}
	if !s.filter.IsReforgeable(stack.ItemID) {
		metrics.RecordRefusal(RefusalNotReforgeable)
		return nil, fmt.Errorf("%w: "+ErrMsgItemFmt, domain.ErrNotReforgeable, stack.ItemID)
	}

	current := s.filter.GetLevel(ctx, player, stack)
	if current >= table.General.MaxLevel {
		metrics.RecordRefusal(RefusalMaxLevel)
		return nil, fmt.Errorf("%w: "+ErrMsgLevelFmt, domain.ErrMaxLevel, stack.ItemID, current, table.General.MaxLevel)
	}

	next := current + 1
	def, ok := table.LevelConfig(next)
	if !ok {
		metrics.RecordRefusal(RefusalLevelNotConfigured)
		return nil, fmt.Errorf("%w: "+ErrMsgTargetFmt, domain.ErrLevelNotConfigured, next)
	}

	return &target{slot: slot, stack: stack, current: current, next: next, def: def}, nil
}

// wallet is the backend one attempt is charged against
type wallet interface {
	HasBalance(ctx context.Context, player uuid.UUID, amount float64) (bool, error)
	Withdraw(ctx context.Context, player uuid.UUID, amount float64, reason string) error
	Deposit(ctx context.Context, player uuid.UUID, amount float64, reason string) error
}

// switchable is implemented by economies that route to a replaceable provider
type switchable interface {
	Active() economy.Provider
}

// activeWallet pins the provider currently behind the economy so a refund
// reaches the backend that was charged.
func (s *service) activeWallet() wallet {
	if sw, ok := s.economy.(switchable); ok {
		if p := sw.Active(); p != nil {
			return p
		}
	}
	return s.economy
}

// charge withdraws amount and returns the wallet it was taken from together
// with the amount actually taken, or false when the player cannot pay.
// Without an economy nothing is taken.
func (s *service) charge(ctx context.Context, player uuid.UUID, amount float64) (wallet, float64, bool) {
	if amount <= 0 {
		return nil, 0, true
	}
	log := logger.FromContext(ctx)
	if !s.economy.IsAvailable() {
		log.Debug(LogMsgEconomyFailOpen, "amount", amount)
		return nil, 0, true
	}

	w := s.activeWallet()
	has, err := w.HasBalance(ctx, player, amount)
	if err != nil {
		log.Warn(LogMsgBalanceCheckFailed, "error", err)
		return nil, 0, false
	}
	if !has {
		return nil, 0, false
	}
	if err := w.Withdraw(ctx, player, amount, ReasonCharge); err != nil {
		if !errors.Is(err, domain.ErrInsufficientFunds) {
			log.Warn(LogMsgWithdrawFailed, "error", err)
		}
		return nil, 0, false
	}
	return w, amount, true
}

func (s *service) refund(ctx context.Context, w wallet, player uuid.UUID, amount float64) {
	if amount <= 0 || w == nil {
		return
	}
	log := logger.FromContext(ctx)
	if err := w.Deposit(ctx, player, amount, ReasonRefund); err != nil {
		metrics.RecordRefundFailure(amount)
		log.Error(LogMsgRefundFailed, "player", player, "amount", amount, "error", err)
		return
	}
	log.Info(LogMsgCostRefunded, "amount", amount)
}

func (s *service) refuse(ctx context.Context, result *domain.AttemptResult, reason domain.RefusalReason) *domain.AttemptResult {
	result.Outcome = domain.OutcomeCannotAttempt
	result.Reason = reason
	metrics.RecordAttempt(result)
	logger.FromContext(ctx).Info(LogMsgAttemptRefused, "item", result.ItemID, "reason", reason)
	return result
}

func (s *service) applySuccess(ctx context.Context, table *progression.Table, player uuid.UUID, t *target, result *domain.AttemptResult) {
	log := logger.FromContext(ctx)
	result.Outcome = domain.OutcomeSuccess
	result.WeaponBonus = table.CumulativeWeaponBonus(t.next)
	result.ArmorBonus = table.CumulativeArmorBonus(t.next)

	if err := s.store.Set(ctx, player, t.stack.ItemID, t.next); err != nil {
		log.Error(LogMsgPersistFailed, "item", t.stack.ItemID, "level", t.next, "error", err)
	}
	if s.gw.SupportsItemTags() {
		if err := inventory.ReplaceAt(ctx, s.gw, player, t.slot, t.stack.WithLevel(t.next)); err != nil {
			log.Error(LogMsgWriteItemFailed, "slot", t.slot, "error", err)
		}
	}
}

// applyProtectedFailure resets the level but keeps the item. The protection
// surcharge replaces the material refund.
func (s *service) applyProtectedFailure(ctx context.Context, player uuid.UUID, t *target, result *domain.AttemptResult) {
	log := logger.FromContext(ctx)
	result.Outcome = domain.OutcomeFailureProtected

	if err := s.store.Remove(ctx, player, t.stack.ItemID); err != nil {
		log.Error(LogMsgPersistFailed, "item", t.stack.ItemID, "error", err)
	}
	if s.gw.SupportsItemTags() {
		if err := inventory.ReplaceAt(ctx, s.gw, player, t.slot, t.stack.WithLevel(0)); err != nil {
			log.Error(LogMsgWriteItemFailed, "slot", t.slot, "error", err)
		}
	}
}

// applyFailure destroys the item and hands back part of its recipe
func (s *service) applyFailure(ctx context.Context, table *progression.Table, player uuid.UUID, t *target, result *domain.AttemptResult) {
	log := logger.FromContext(ctx)
	result.Outcome = domain.OutcomeFailure

	if err := s.store.Remove(ctx, player, t.stack.ItemID); err != nil {
		log.Error(LogMsgPersistFailed, "item", t.stack.ItemID, "error", err)
	}
	if err := inventory.DestroyAt(ctx, s.gw, player, t.slot); err != nil {
		log.Error(LogMsgDestroyFailed, "slot", t.slot, "error", err)
	}

	result.Returned = s.recipes.Refund(ctx, t.stack.ItemID, table.General.FailureReturnRate)
	if err := inventory.Grant(ctx, s.gw, player, result.Returned); err != nil {
		log.Error(LogMsgGrantFailed, "error", err)
	}
}

func totalUnits(materials []domain.MaterialRequirement) int {
	total := 0
	for _, m := range materials {
		total += m.Count
	}
	return total
}

func levelAfter(result *domain.AttemptResult) int {
	if result.Outcome == domain.OutcomeSuccess {
		return result.TargetLevel
	}
	return 0
}
