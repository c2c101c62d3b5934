package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/logger"
)

// Count sums the quantity of itemID across every container slot. Namespaces
// are ignored, so "hytale:Iron_Ingot" and "Iron_Ingot" count together.
func Count(ctx context.Context, gw Gateway, player uuid.UUID, itemID string) (int, error) {
	counts, err := countAll(ctx, gw, player)
	if err != nil {
		return 0, err
	}
	return counts[domain.CanonicalItemID(itemID)], nil
}

// Shortage describes one unmet requirement
type Shortage struct {
	domain.MaterialRequirement
	Owned int
}

// Check compares reqs against the inventory. Repeated entries for the same
// item are summed before comparing.
func Check(ctx context.Context, gw Gateway, player uuid.UUID, reqs []domain.MaterialRequirement) ([]Shortage, error) {
	counts, err := countAll(ctx, gw, player)
	if err != nil {
		return nil, err
	}

	var short []Shortage
	for _, need := range aggregate(reqs) {
		owned := counts[domain.CanonicalItemID(need.ItemID)]
		if owned < need.Count {
			short = append(short, Shortage{MaterialRequirement: need, Owned: owned})
		}
	}
	return short, nil
}

// HasAll reports whether every requirement is met
func HasAll(ctx context.Context, gw Gateway, player uuid.UUID, reqs []domain.MaterialRequirement) (bool, error) {
	short, err := Check(ctx, gw, player, reqs)
	if err != nil {
		return false, err
	}
	return len(short) == 0, nil
}

// Consume verifies every requirement first and only then deducts. Nothing is
// taken when any material is short; the error wraps
// domain.ErrInsufficientMaterials.
func Consume(ctx context.Context, gw Gateway, player uuid.UUID, reqs []domain.MaterialRequirement) error {
	short, err := Check(ctx, gw, player, reqs)
	if err != nil {
		return err
	}
	if len(short) > 0 {
		parts := make([]string, 0, len(short))
		for _, s := range short {
			parts = append(parts, fmt.Sprintf(ErrMsgMaterialFmt, s.ItemID, s.Count, s.Owned))
		}
		return fmt.Errorf("%w: %s", domain.ErrInsufficientMaterials, strings.Join(parts, ", "))
	}

	capacity, err := gw.Capacity(ctx, player)
	if err != nil {
		return fmt.Errorf(ErrMsgCapacityFailed, err)
	}

	for _, need := range aggregate(reqs) {
		remaining := need.Count
		for slot := 0; slot < capacity && remaining > 0; slot++ {
			stack, err := gw.SlotAt(ctx, player, slot)
			if err != nil {
				return fmt.Errorf(ErrMsgReadSlotFailed, slot, err)
			}
			if stack.IsEmpty() || !domain.SameItem(stack.ItemID, need.ItemID) {
				continue
			}

			take := min(stack.Quantity, remaining)
			remaining -= take
			if take == stack.Quantity {
				err = gw.RemoveSlot(ctx, player, slot)
			} else {
				err = gw.SetSlot(ctx, player, slot, stack.WithQuantity(stack.Quantity-take))
			}
			if err != nil {
				return fmt.Errorf(ErrMsgWriteSlotFailed, slot, err)
			}
		}
	}

	logger.FromContext(ctx).Debug(LogMsgMaterialsConsumed, "player", player, "materials", reqs)
	return nil
}

// Grant adds every material to the inventory. Materials that do not fit are
// logged and skipped; the first gateway error is returned after trying all.
func Grant(ctx context.Context, gw Gateway, player uuid.UUID, materials []domain.MaterialRequirement) error {
	log := logger.FromContext(ctx)

	var firstErr error
	for _, m := range materials {
		if m.Count <= 0 {
			continue
		}
		err := gw.AddStack(ctx, player, domain.ItemStack{ItemID: domain.CanonicalItemID(m.ItemID), Quantity: m.Count})
		if err == nil {
			continue
		}
		log.Warn(LogMsgGrantOverflow, "player", player, "item", m.ItemID, "count", m.Count, "error", err)
		if firstErr == nil {
			firstErr = fmt.Errorf(ErrMsgGrantFailedFmt, m.Count, m.ItemID, err)
		}
	}

	log.Debug(LogMsgMaterialsGranted, "player", player, "materials", materials)
	return firstErr
}

func countAll(ctx context.Context, gw Gateway, player uuid.UUID) (map[string]int, error) {
	capacity, err := gw.Capacity(ctx, player)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCapacityFailed, err)
	}

	counts := make(map[string]int)
	for slot := 0; slot < capacity; slot++ {
		stack, err := gw.SlotAt(ctx, player, slot)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadSlotFailed, slot, err)
		}
		if !stack.IsEmpty() {
			counts[domain.CanonicalItemID(stack.ItemID)] += stack.Quantity
		}
	}
	return counts, nil
}

// aggregate merges repeated requirements, keeping first-seen order
func aggregate(reqs []domain.MaterialRequirement) []domain.MaterialRequirement {
	index := make(map[string]int, len(reqs))
	out := make([]domain.MaterialRequirement, 0, len(reqs))
	for _, r := range reqs {
		key := domain.CanonicalItemID(r.ItemID)
		if i, ok := index[key]; ok {
			out[i].Count += r.Count
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}
