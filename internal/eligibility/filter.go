// Package eligibility decides which items can be reforged and what level
// they are at.
package eligibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/levelstore"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// Filter classifies items against the live progression table and resolves
// their current level.
type Filter struct {
	config progression.Source
	store  levelstore.Store
	gw     inventory.Gateway
}

// NewFilter creates a filter
func NewFilter(config progression.Source, store levelstore.Store, gw inventory.Gateway) *Filter {
	return &Filter{config: config, store: store, gw: gw}
}

// IsWeapon reports whether itemID is an eligible weapon
func (f *Filter) IsWeapon(itemID string) bool {
	return f.config.Current().AllowedItems.IsWeapon(domain.CanonicalItemID(itemID))
}

// IsArmor reports whether itemID is an eligible armor piece
func (f *Filter) IsArmor(itemID string) bool {
	return f.config.Current().AllowedItems.IsArmor(domain.CanonicalItemID(itemID))
}

// IsReforgeable reports whether itemID is an eligible weapon or armor piece
func (f *Filter) IsReforgeable(itemID string) bool {
	if itemID == "" {
		return false
	}
	allowed := f.config.Current().AllowedItems
	name := domain.CanonicalItemID(itemID)
	return allowed.IsWeapon(name) || allowed.IsArmor(name)
}

// Category classifies itemID. Weapon patterns are checked before armor.
func (f *Filter) Category(itemID string) domain.Category {
	switch {
	case f.IsWeapon(itemID):
		return domain.CategoryWeapon
	case f.IsArmor(itemID):
		return domain.CategoryArmor
	default:
		return domain.CategoryUnknown
	}
}

// GetLevel returns the level of stack for player. When the gateway supports
// tags the stack's own tag is the level, and an untagged stack is level 0;
// the store is only consulted to warn about divergence. Without tag support
// the per-item-type store is used. Store read errors are logged and read as 0.
func (f *Filter) GetLevel(ctx context.Context, player uuid.UUID, stack domain.ItemStack) int {
	if stack.IsEmpty() {
		return 0
	}
	log := logger.FromContext(ctx)

	stored, err := f.store.Get(ctx, player, stack.ItemID)
	if err != nil {
		log.Warn(LogMsgStoreReadFailed, "item", stack.ItemID, "error", err)
		stored = 0
	}

	if f.gw.SupportsItemTags() {
		if stack.Level > 0 && stored != 0 && stored != stack.Level {
			log.Warn(LogMsgLevelDiverged, "item", stack.ItemID, "tag", stack.Level, "store", stored)
		}
		return stack.Level
	}
	return stored
}

// IsMaxLevel reports whether stack has reached the configured max level
func (f *Filter) IsMaxLevel(ctx context.Context, player uuid.UUID, stack domain.ItemStack) bool {
	return f.GetLevel(ctx, player, stack) >= f.config.Current().General.MaxLevel
}

// DisplayName returns the configured custom name, or a name derived from the
// id: "hytale:Weapon_Sword_Iron" becomes "Sword Iron".
func (f *Filter) DisplayName(itemID string) string {
	name := domain.CanonicalItemID(itemID)
	custom := f.config.Current().CustomItems
	if display, ok := custom[name]; ok && display != "" {
		return display
	}
	if display, ok := custom[itemID]; ok && display != "" {
		return display
	}

	name = strings.TrimPrefix(name, WeaponPrefix)
	name = strings.TrimPrefix(name, ArmorPrefix)
	return strings.ReplaceAll(name, NameSeparator, NameSpace)
}

// FindReforgeableSlots lists every container slot holding a reforgeable
// item, with its current level. Unreadable slots are skipped.
func (f *Filter) FindReforgeableSlots(ctx context.Context, player uuid.UUID) ([]domain.ReforgeableSlot, error) {
	capacity, err := f.gw.Capacity(ctx, player)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCapacityFailed, err)
	}

	slots := make([]domain.ReforgeableSlot, 0)
	for i := 0; i < capacity; i++ {
		stack, err := f.gw.SlotAt(ctx, player, i)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgSlotReadFailed, "slot", i, "error", err)
			continue
		}
		if stack.IsEmpty() || !f.IsReforgeable(stack.ItemID) {
			continue
		}
		slots = append(slots, domain.ReforgeableSlot{
			Slot:   i,
			ItemID: stack.ItemID,
			Level:  f.GetLevel(ctx, player, stack),
		})
	}
	return slots, nil
}
