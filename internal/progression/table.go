package progression

import (
	"sort"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// General holds the settings that apply to every level
type General struct {
	Language                 string  `json:"language" yaml:"language" validate:"required"`
	MessagePrefix            string  `json:"messagePrefix" yaml:"messagePrefix"`
	MaxLevel                 int     `json:"maxReforgeLevel" yaml:"maxReforgeLevel" validate:"min=1,max=20"`
	Debug                    bool    `json:"debugMode" yaml:"debugMode"`
	FailureReturnRate        float64 `json:"failureReturnRate" yaml:"failureReturnRate" validate:"gte=0,lte=1"`
	ProtectionEnabled        bool    `json:"protectionEnabled" yaml:"protectionEnabled"`
	ProtectionCostMultiplier float64 `json:"protectionCostMultiplier" yaml:"protectionCostMultiplier" validate:"gte=0"`
}

// LevelDefinition tunes one rung of the ladder
type LevelDefinition struct {
	SuccessChance float64                      `json:"successChance" yaml:"successChance" validate:"gte=0,lte=1"`
	WeaponBonus   float64                      `json:"weaponDamageBonus" yaml:"weaponDamageBonus" validate:"gte=0"`
	ArmorBonus    float64                      `json:"armorDefenseBonus" yaml:"armorDefenseBonus" validate:"gte=0"`
	CoinCost      float64                      `json:"coinCost" yaml:"coinCost" validate:"gte=0"`
	Materials     []domain.MaterialRequirement `json:"materials" yaml:"materials" validate:"dive"`
}

// AllowedItems lists the eligibility patterns per category.
// Exclusions win over both allow lists.
type AllowedItems struct {
	Weapons    []string `json:"weapons" yaml:"weapons" validate:"dive,required"`
	Armor      []string `json:"armor" yaml:"armor" validate:"dive,required"`
	Exclusions []string `json:"exclusions,omitempty" yaml:"exclusions,omitempty" validate:"dive,required"`
}

// Table is one immutable snapshot of the progression configuration.
// Snapshots handed out by a Manager must not be mutated; use Manager.Update.
type Table struct {
	General        General                                 `json:"general" yaml:"general"`
	Levels         map[int]LevelDefinition                 `json:"levels" yaml:"levels" validate:"dive"`
	AllowedItems   AllowedItems                            `json:"allowedItems" yaml:"allowedItems"`
	ReverseRecipes map[string][]domain.MaterialRequirement `json:"reverseRecipes" yaml:"reverseRecipes" validate:"dive,dive"`
	CustomItems    map[string]string                       `json:"customItems,omitempty" yaml:"customItems,omitempty"`
}

// Source hands out the live snapshot. Consumers hold a Source rather than a
// *Table so reloads are observed without re-injection.
type Source interface {
	Current() *Table
}

// StaticSource serves a fixed table
type StaticSource struct {
	Table *Table
}

// Current returns the wrapped table
func (s StaticSource) Current() *Table {
	return s.Table
}

// LevelConfig returns the definition for level, falling back to the highest
// configured level below it. ok is false when nothing at or below level exists.
func (t *Table) LevelConfig(level int) (LevelDefinition, bool) {
	if def, ok := t.Levels[level]; ok {
		return def, true
	}

	best := 0
	for l := range t.Levels {
		if l <= level && l > best {
			best = l
		}
	}
	if best == 0 {
		return LevelDefinition{}, false
	}
	return t.Levels[best], true
}

// CumulativeWeaponBonus sums the weapon bonus of levels 1..level
func (t *Table) CumulativeWeaponBonus(level int) float64 {
	total := 0.0
	for i := 1; i <= level; i++ {
		if def, ok := t.LevelConfig(i); ok {
			total += def.WeaponBonus
		}
	}
	return total
}

// CumulativeArmorBonus sums the armor bonus of levels 1..level
func (t *Table) CumulativeArmorBonus(level int) float64 {
	total := 0.0
	for i := 1; i <= level; i++ {
		if def, ok := t.LevelConfig(i); ok {
			total += def.ArmorBonus
		}
	}
	return total
}

// ProtectionCost is the surcharge for protecting an attempt with the given base cost
func (t *Table) ProtectionCost(coinCost float64) float64 {
	if !t.General.ProtectionEnabled {
		return 0
	}
	return coinCost * t.General.ProtectionCostMultiplier
}

// TotalCost is the coin cost of an attempt, including protection when requested
func (t *Table) TotalCost(coinCost float64, useProtection bool) float64 {
	if !useProtection {
		return coinCost
	}
	return coinCost + t.ProtectionCost(coinCost)
}

// SortedLevels returns configured level numbers in ascending order
func (t *Table) SortedLevels() []int {
	levels := make([]int, 0, len(t.Levels))
	for l := range t.Levels {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// ReverseRecipe returns the configured refund for itemID, trying the bare
// name before the fully-qualified id.
func (t *Table) ReverseRecipe(itemID string) ([]domain.MaterialRequirement, bool) {
	if recipe, ok := t.ReverseRecipes[domain.CanonicalItemID(itemID)]; ok {
		return recipe, true
	}
	recipe, ok := t.ReverseRecipes[itemID]
	return recipe, ok
}

// Clone returns a deep copy that is safe to mutate
func (t *Table) Clone() *Table {
	c := &Table{
		General:        t.General,
		Levels:         make(map[int]LevelDefinition, len(t.Levels)),
		ReverseRecipes: make(map[string][]domain.MaterialRequirement, len(t.ReverseRecipes)),
		CustomItems:    make(map[string]string, len(t.CustomItems)),
	}
	c.AllowedItems = AllowedItems{
		Weapons:    cloneStrings(t.AllowedItems.Weapons),
		Armor:      cloneStrings(t.AllowedItems.Armor),
		Exclusions: cloneStrings(t.AllowedItems.Exclusions),
	}
	for l, def := range t.Levels {
		def.Materials = cloneMaterials(def.Materials)
		c.Levels[l] = def
	}
	for id, recipe := range t.ReverseRecipes {
		c.ReverseRecipes[id] = cloneMaterials(recipe)
	}
	for id, name := range t.CustomItems {
		c.CustomItems[id] = name
	}
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneMaterials(in []domain.MaterialRequirement) []domain.MaterialRequirement {
	if in == nil {
		return nil
	}
	out := make([]domain.MaterialRequirement, len(in))
	copy(out, in)
	return out
}

// normalize fills nil maps so callers can index without checks
func (t *Table) normalize() {
	if t.Levels == nil {
		t.Levels = make(map[int]LevelDefinition)
	}
	if t.ReverseRecipes == nil {
		t.ReverseRecipes = make(map[string][]domain.MaterialRequirement)
	}
	if t.CustomItems == nil {
		t.CustomItems = make(map[string]string)
	}
}
