// Package recipe works out which materials a destroyed item gives back.
package recipe

import (
	"context"
	"strings"

	"github.com/osse101/Reforge_Go/internal/domain"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/progression"
)

// baseUnit maps a name fragment to the bar count needed to craft that item.
// Entries are checked in order; weapon types are prefixes, armor slots are
// substrings.
type baseUnit struct {
	fragment string
	prefix   bool
	units    int
}

var baseUnits = []baseUnit{
	{"Weapon_Battleaxe", true, 24},
	{"Weapon_Longsword", true, 20},
	{"Weapon_Sword", true, 12},
	{"Weapon_Axe", true, 16},
	{"Weapon_Mace", true, 18},
	{"Weapon_Spear", true, 14},
	{"Weapon_Dagger", true, 20},
	{"_Head", false, 14},
	{"_Chest", false, 28},
	{"_Legs", false, 20},
	{"_Hands", false, 10},
	{"_Feet", false, 10},
}

// Resolver looks up reverse recipes in the live progression table and falls
// back to a naming-convention guess.
type Resolver struct {
	config progression.Source
}

// NewResolver creates a resolver reading recipes from config
func NewResolver(config progression.Source) *Resolver {
	return &Resolver{config: config}
}

// Resolve returns the full recipe for itemID. The second value is false when
// neither the table nor the heuristic yields one.
func (r *Resolver) Resolve(ctx context.Context, itemID string) ([]domain.MaterialRequirement, bool) {
	log := logger.FromContext(ctx)

	if recipe, ok := r.config.Current().ReverseRecipe(itemID); ok && len(recipe) > 0 {
		log.Debug(LogMsgRecipeConfigured, "item", itemID)
		return recipe, true
	}

	recipe, ok := Guess(domain.CanonicalItemID(itemID))
	if !ok {
		log.Debug(LogMsgNoRecipe, "item", itemID)
		return nil, false
	}
	log.Info(LogMsgRecipeGuessed, "item", itemID, "material", recipe[0].ItemID, "count", recipe[0].Count)
	return recipe, true
}

// Refund scales the recipe for itemID by rate. Each material yields at least
// one unit; an item without a recipe yields nothing.
func (r *Resolver) Refund(ctx context.Context, itemID string, rate float64) []domain.MaterialRequirement {
	recipe, ok := r.Resolve(ctx, itemID)
	if !ok {
		return nil
	}
	return Scale(recipe, rate)
}

// Scale applies rate to every count, truncating, with a floor of one unit
func Scale(recipe []domain.MaterialRequirement, rate float64) []domain.MaterialRequirement {
	out := make([]domain.MaterialRequirement, 0, len(recipe))
	for _, m := range recipe {
		out = append(out, domain.MaterialRequirement{
			ItemID: m.ItemID,
			Count:  max(MinRefundCount, int(float64(m.Count)*rate)),
		})
	}
	return out
}

// Guess derives a recipe from a bare item name: Weapon_<Type>_<Material>
// gives back bars of the trailing material, Armor_<Material>_<Slot> bars of
// the second token.
func Guess(name string) ([]domain.MaterialRequirement, bool) {
	parts := strings.Split(name, TokenSeparator)
	if len(parts) < MinNameTokens {
		return nil, false
	}

	var material string
	switch {
	case strings.HasPrefix(name, WeaponPrefix):
		material = parts[len(parts)-1]
	case strings.HasPrefix(name, ArmorPrefix):
		material = parts[1]
	}
	if material == "" {
		return nil, false
	}

	return []domain.MaterialRequirement{{ItemID: BarPrefix + material, Count: unitsFor(name)}}, true
}

func unitsFor(name string) int {
	for _, b := range baseUnits {
		if b.prefix && strings.HasPrefix(name, b.fragment) {
			return b.units
		}
		if !b.prefix && strings.Contains(name, b.fragment) {
			return b.units
		}
	}
	return DefaultBaseUnits
}
