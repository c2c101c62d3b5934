package domain

import "strings"

// NamespaceSeparator splits "hytale:Iron_Ingot" into namespace and name
const NamespaceSeparator = ":"

// HeldSlot addresses the item the player currently holds instead of a container slot
const HeldSlot = -1

// Category classifies an item for reforging
type Category string

const (
	CategoryWeapon  Category = "Weapon"
	CategoryArmor   Category = "Armor"
	CategoryUnknown Category = "Unknown"
)

// ItemStack is one stack of items in an inventory slot or in the player's hand.
// Level is the per-instance reforge tag carried by the item; hosts without
// item metadata leave it at 0.
type ItemStack struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Level    int    `json:"level,omitempty"`
}

// IsEmpty reports whether the stack holds nothing
func (s ItemStack) IsEmpty() bool {
	return s.ItemID == "" || s.Quantity <= 0
}

// WithQuantity returns a copy of the stack with a different quantity
func (s ItemStack) WithQuantity(quantity int) ItemStack {
	s.Quantity = quantity
	return s
}

// WithLevel returns a copy of the stack carrying a different level tag
func (s ItemStack) WithLevel(level int) ItemStack {
	s.Level = level
	return s
}

// MaterialRequirement is a quantity of one material, either consumed by an
// attempt or refunded after a destructive failure.
type MaterialRequirement struct {
	ItemID string `json:"itemId" yaml:"itemId" validate:"required"`
	Count  int    `json:"count" yaml:"count" validate:"gt=0"`
}

// CanonicalItemID strips any namespace prefix ("hytale:Iron_Ingot" -> "Iron_Ingot")
func CanonicalItemID(itemID string) string {
	if idx := strings.LastIndex(itemID, NamespaceSeparator); idx >= 0 {
		return itemID[idx+1:]
	}
	return itemID
}

// SameItem reports whether two ids name the same item, ignoring namespaces
func SameItem(a, b string) bool {
	if a == b {
		return true
	}
	return CanonicalItemID(a) == CanonicalItemID(b)
}
