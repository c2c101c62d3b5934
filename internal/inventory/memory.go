package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// MaxStackSize caps a single slot in the memory gateway
const MaxStackSize = 100

type playerInventory struct {
	slots []domain.ItemStack
	held  domain.ItemStack
}

// Memory is an in-process Gateway. Each player gets a fixed number of slots
// on first access.
type Memory struct {
	capacity int
	tags     bool

	mu      sync.Mutex
	players map[uuid.UUID]*playerInventory
}

// NewMemory creates a gateway with capacity slots per player. tags controls
// whether item level tags are kept on stacks.
func NewMemory(capacity int, tags bool) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{
		capacity: capacity,
		tags:     tags,
		players:  make(map[uuid.UUID]*playerInventory),
	}
}

func (m *Memory) inventory(player uuid.UUID) *playerInventory {
	inv, ok := m.players[player]
	if !ok {
		inv = &playerInventory{slots: make([]domain.ItemStack, m.capacity)}
		m.players[player] = inv
	}
	return inv
}

func (m *Memory) checkSlot(slot int) error {
	if slot < 0 || slot >= m.capacity {
		return fmt.Errorf("%w: "+ErrMsgSlotFmt, domain.ErrSlotOutOfRange, slot, m.capacity)
	}
	return nil
}

func (m *Memory) normalize(stack domain.ItemStack) domain.ItemStack {
	if stack.IsEmpty() {
		return domain.ItemStack{}
	}
	if !m.tags {
		stack.Level = 0
	}
	return stack
}

func (m *Memory) Capacity(_ context.Context, _ uuid.UUID) (int, error) {
	return m.capacity, nil
}

func (m *Memory) SlotAt(_ context.Context, player uuid.UUID, slot int) (domain.ItemStack, error) {
	if err := m.checkSlot(slot); err != nil {
		return domain.ItemStack{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inventory(player).slots[slot], nil
}

func (m *Memory) SetSlot(_ context.Context, player uuid.UUID, slot int, stack domain.ItemStack) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory(player).slots[slot] = m.normalize(stack)
	return nil
}

func (m *Memory) RemoveSlot(_ context.Context, player uuid.UUID, slot int) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory(player).slots[slot] = domain.ItemStack{}
	return nil
}

func (m *Memory) HeldItem(_ context.Context, player uuid.UUID) (domain.ItemStack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inventory(player).held, nil
}

func (m *Memory) SetHeldItem(_ context.Context, player uuid.UUID, stack domain.ItemStack) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory(player).held = m.normalize(stack)
	return nil
}

func (m *Memory) AddStack(_ context.Context, player uuid.UUID, stack domain.ItemStack) error {
	stack = m.normalize(stack)
	if stack.IsEmpty() {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	inv := m.inventory(player)

	remaining := stack.Quantity
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if s.IsEmpty() || s.ItemID != stack.ItemID || s.Level != stack.Level {
			continue
		}
		add := min(MaxStackSize-s.Quantity, remaining)
		if add > 0 {
			s.Quantity += add
			remaining -= add
		}
	}
	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		if !inv.slots[i].IsEmpty() {
			continue
		}
		add := min(MaxStackSize, remaining)
		inv.slots[i] = stack.WithQuantity(add)
		remaining -= add
	}

	if remaining > 0 {
		return fmt.Errorf("%w: %d x %s did not fit", domain.ErrInventoryFull, remaining, stack.ItemID)
	}
	return nil
}

func (m *Memory) SupportsItemTags() bool {
	return m.tags
}
