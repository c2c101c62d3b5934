package reforge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/logger"
)

func (s *service) nextLevel(currentLevel int) (int, bool) {
	table := s.config.Current()
	next := currentLevel + 1
	if next > table.General.MaxLevel {
		return next, false
	}
	_, ok := table.LevelConfig(next)
	return next, ok
}

func (s *service) SuccessChance(currentLevel int) float64 {
	next, ok := s.nextLevel(currentLevel)
	if !ok {
		return 0
	}
	def, _ := s.config.Current().LevelConfig(next)
	return def.SuccessChance
}

func (s *service) CoinCost(currentLevel int) float64 {
	next, ok := s.nextLevel(currentLevel)
	if !ok {
		return 0
	}
	def, _ := s.config.Current().LevelConfig(next)
	return def.CoinCost
}

// ProtectionCost is 0 when protection is disabled
func (s *service) ProtectionCost(currentLevel int) float64 {
	return s.config.Current().ProtectionCost(s.CoinCost(currentLevel))
}

func (s *service) RequiredMaterials(currentLevel int) []domain.MaterialRequirement {
	next, ok := s.nextLevel(currentLevel)
	if !ok {
		return nil
	}
	def, _ := s.config.Current().LevelConfig(next)
	out := make([]domain.MaterialRequirement, len(def.Materials))
	copy(out, def.Materials)
	return out
}

func (s *service) HasMaterials(ctx context.Context, player uuid.UUID, currentLevel int) (bool, error) {
	ok, err := inventory.HasAll(ctx, s.gw, player, s.RequiredMaterials(currentLevel))
	if err != nil {
		return false, fmt.Errorf(ErrMsgMaterialsFailed, err)
	}
	return ok, nil
}

// HasCoins passes when no economy is available
func (s *service) HasCoins(ctx context.Context, player uuid.UUID, currentLevel int, useProtection bool) (bool, error) {
	table := s.config.Current()
	cost := table.TotalCost(s.CoinCost(currentLevel), useProtection)
	if cost <= 0 || !s.economy.IsAvailable() {
		return true, nil
	}
	return s.economy.HasBalance(ctx, player, cost)
}

func (s *service) ReforgeableSlots(ctx context.Context, player uuid.UUID) ([]domain.ReforgeableSlot, error) {
	slots, err := s.filter.FindReforgeableSlots(ctx, player)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFindSlotsFailed, err)
	}
	return slots, nil
}

// Preview describes the next attempt on the item in slot. Items at max level
// get a preview with AtMaxLevel set and no cost or materials.
func (s *service) Preview(ctx context.Context, player uuid.UUID, slot int) (*domain.Preview, error) {
	log := logger.FromContext(ctx)
	table := s.config.Current()

	stack, err := inventory.ItemAt(ctx, s.gw, player, slot)
	if err != nil {
		log.Warn(LogMsgReadItemFailed, "slot", slot, "error", err)
		stack = domain.ItemStack{}
	}
	if stack.IsEmpty() {
		return nil, fmt.Errorf("%w: "+ErrMsgSlotFmt, domain.ErrItemNotFound, slot)
	}
	if !s.filter.IsReforgeable(stack.ItemID) {
		return nil, fmt.Errorf("%w: "+ErrMsgItemFmt, domain.ErrNotReforgeable, stack.ItemID)
	}

	current := s.filter.GetLevel(ctx, player, stack)
	category := s.filter.Category(stack.ItemID)
	p := &domain.Preview{
		ItemID:       stack.ItemID,
		DisplayName:  s.filter.DisplayName(stack.ItemID),
		Category:     category,
		CurrentLevel: current,
		TargetLevel:  current + 1,
		MaxLevel:     table.General.MaxLevel,
		AtMaxLevel:   current >= table.General.MaxLevel,
		CurrentBonus: bonusFor(table.CumulativeWeaponBonus, table.CumulativeArmorBonus, category, current),
		Materials:    []domain.MaterialStatus{},
	}

	if s.economy.IsAvailable() {
		balance, err := s.economy.Balance(ctx, player)
		if err != nil {
			log.Warn(LogMsgPreviewBalanceFail, "error", err)
		}
		p.Balance = balance
		p.FormattedBalance = s.economy.Format(balance)
	}

	def, ok := table.LevelConfig(p.TargetLevel)
	if p.AtMaxLevel || !ok {
		p.TargetLevel = current
		p.TargetBonus = p.CurrentBonus
		return p, nil
	}

	p.SuccessChance = def.SuccessChance
	p.CoinCost = def.CoinCost
	p.ProtectionCost = table.ProtectionCost(def.CoinCost)
	p.TargetBonus = bonusFor(table.CumulativeWeaponBonus, table.CumulativeArmorBonus, category, p.TargetLevel)

	p.HasMaterials, err = inventory.HasAll(ctx, s.gw, player, def.Materials)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMaterialsFailed, err)
	}
	for _, m := range def.Materials {
		have, err := inventory.Count(ctx, s.gw, player, m.ItemID)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgMaterialsFailed, err)
		}
		p.Materials = append(p.Materials, domain.MaterialStatus{MaterialRequirement: m, Owned: have, Met: have >= m.Count})
	}

	p.HasCoins = def.CoinCost <= 0 || !s.economy.IsAvailable() || p.Balance >= def.CoinCost
	return p, nil
}

func bonusFor(weapon, armor func(int) float64, category domain.Category, level int) float64 {
	if category == domain.CategoryArmor {
		return armor(level)
	}
	return weapon(level)
}
