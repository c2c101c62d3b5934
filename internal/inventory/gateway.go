// Package inventory is the engine's view of a player's containers and held
// item, plus the material bookkeeping built on top of it.
package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// Gateway reads and writes one player's item stacks. Slots are numbered
// 0..Capacity-1; an empty slot reads as the zero ItemStack.
type Gateway interface {
	Capacity(ctx context.Context, player uuid.UUID) (int, error)
	SlotAt(ctx context.Context, player uuid.UUID, slot int) (domain.ItemStack, error)
	SetSlot(ctx context.Context, player uuid.UUID, slot int, stack domain.ItemStack) error
	RemoveSlot(ctx context.Context, player uuid.UUID, slot int) error
	HeldItem(ctx context.Context, player uuid.UUID) (domain.ItemStack, error)
	SetHeldItem(ctx context.Context, player uuid.UUID, stack domain.ItemStack) error
	// AddStack merges into stacks of the same item first, then fills empty
	// slots. It returns domain.ErrInventoryFull with whatever did not fit
	// left ungranted.
	AddStack(ctx context.Context, player uuid.UUID, stack domain.ItemStack) error
	// SupportsItemTags reports whether ItemStack.Level survives a round trip.
	SupportsItemTags() bool
}

// ItemAt reads slot, or the held item for domain.HeldSlot
func ItemAt(ctx context.Context, gw Gateway, player uuid.UUID, slot int) (domain.ItemStack, error) {
	if slot == domain.HeldSlot {
		return gw.HeldItem(ctx, player)
	}
	return gw.SlotAt(ctx, player, slot)
}

// ReplaceAt writes stack to slot, or to the player's hand for domain.HeldSlot
func ReplaceAt(ctx context.Context, gw Gateway, player uuid.UUID, slot int, stack domain.ItemStack) error {
	if slot == domain.HeldSlot {
		return gw.SetHeldItem(ctx, player, stack)
	}
	return gw.SetSlot(ctx, player, slot, stack)
}

// DestroyAt clears slot, or empties the player's hand for domain.HeldSlot
func DestroyAt(ctx context.Context, gw Gateway, player uuid.UUID, slot int) error {
	if slot == domain.HeldSlot {
		return gw.SetHeldItem(ctx, player, domain.ItemStack{})
	}
	return gw.RemoveSlot(ctx, player, slot)
}
