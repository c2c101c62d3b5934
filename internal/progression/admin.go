package progression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// PatternList names one of the eligibility pattern lists
type PatternList string

const (
	PatternListWeapons    PatternList = "weapons"
	PatternListArmor      PatternList = "armor"
	PatternListExclusions PatternList = "exclusions"
)

// ==================== General ====================

// SetMaxLevel clamps to [MinMaxLevel, MaxMaxLevel]
func SetMaxLevel(n int) Mutation {
	return func(t *Table) error {
		t.General.MaxLevel = clampInt(n, MinMaxLevel, MaxMaxLevel)
		return nil
	}
}

// SetFailureReturnRate clamps to [0, 1]
func SetFailureReturnRate(rate float64) Mutation {
	return func(t *Table) error {
		t.General.FailureReturnRate = clampFloat(rate, MinFailureReturnRate, MaxFailureReturnRate)
		return nil
	}
}

func SetProtectionEnabled(enabled bool) Mutation {
	return func(t *Table) error {
		t.General.ProtectionEnabled = enabled
		return nil
	}
}

// SetProtectionCostMultiplier clamps to [0.5, 10]
func SetProtectionCostMultiplier(multiplier float64) Mutation {
	return func(t *Table) error {
		t.General.ProtectionCostMultiplier = clampFloat(multiplier, MinProtectionCostMultiplier, MaxProtectionCostMultiplier)
		return nil
	}
}

func SetDebug(debug bool) Mutation {
	return func(t *Table) error {
		t.General.Debug = debug
		return nil
	}
}

// SetLanguage stores a lowercase language code. Callers check it is supported.
func SetLanguage(code string) Mutation {
	return func(t *Table) error {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			return fmt.Errorf("%w: language", domain.ErrInvalidInput)
		}
		t.General.Language = code
		return nil
	}
}

func SetMessagePrefix(prefix string) Mutation {
	return func(t *Table) error {
		t.General.MessagePrefix = prefix
		return nil
	}
}

// ==================== Levels ====================

// SetLevelChance clamps to [0.01, 1]; the level is created when missing
func SetLevelChance(level int, chance float64) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		def.SuccessChance = clampFloat(chance, MinSuccessChance, MaxSuccessChance)
		return nil
	})
}

func SetLevelCost(level int, cost float64) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		def.CoinCost = max(0, cost)
		return nil
	})
}

func SetLevelWeaponBonus(level int, bonus float64) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		def.WeaponBonus = max(0, bonus)
		return nil
	})
}

func SetLevelArmorBonus(level int, bonus float64) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		def.ArmorBonus = max(0, bonus)
		return nil
	})
}

// AddLevelMaterial appends a requirement, with count raised to at least 1
func AddLevelMaterial(level int, material domain.MaterialRequirement) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		if strings.TrimSpace(material.ItemID) == "" {
			return fmt.Errorf("%w: material item id", domain.ErrInvalidInput)
		}
		material.Count = max(MinMaterialCount, material.Count)
		def.Materials = append(def.Materials, material)
		return nil
	})
}

// RemoveLevelMaterial drops the requirement at index. The last one cannot be removed.
func RemoveLevelMaterial(level, index int) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		if index < 0 || index >= len(def.Materials) {
			return fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		if len(def.Materials) <= 1 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgLastMaterial)
		}
		def.Materials = append(def.Materials[:index], def.Materials[index+1:]...)
		return nil
	})
}

// SetLevelMaterialCount sets the count at index, at least 1
func SetLevelMaterialCount(level, index, count int) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		if index < 0 || index >= len(def.Materials) {
			return fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		def.Materials[index].Count = max(MinMaterialCount, count)
		return nil
	})
}

// SetLevelMaterialItem swaps the material id at index
func SetLevelMaterialItem(level, index int, itemID string) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		if index < 0 || index >= len(def.Materials) {
			return fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		if strings.TrimSpace(itemID) == "" {
			return fmt.Errorf("%w: material item id", domain.ErrInvalidInput)
		}
		def.Materials[index].ItemID = itemID
		return nil
	})
}

// SetLevelMaterials replaces every requirement of a level. At least one
// material is required and counts are raised to at least 1.
func SetLevelMaterials(level int, materials []domain.MaterialRequirement) Mutation {
	return editLevel(level, func(def *LevelDefinition) error {
		if len(materials) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgLastMaterial)
		}
		next := cloneMaterials(materials)
		for i := range next {
			if strings.TrimSpace(next[i].ItemID) == "" {
				return fmt.Errorf("%w: material item id", domain.ErrInvalidInput)
			}
			next[i].Count = max(MinMaterialCount, next[i].Count)
		}
		def.Materials = next
		return nil
	})
}

// ReplaceLevel swaps the whole definition of a level
func ReplaceLevel(level int, def LevelDefinition) Mutation {
	return func(t *Table) error {
		if level < MinMaxLevel || level > MaxMaxLevel {
			return fmt.Errorf("%w: "+ErrMsgLevelOutOfRangeFmt, domain.ErrInvalidInput, level)
		}
		def.Materials = cloneMaterials(def.Materials)
		t.Levels[level] = def
		return nil
	}
}

// RemoveLevel deletes a level; lookups then fall back to the level below
func RemoveLevel(level int) Mutation {
	return func(t *Table) error {
		delete(t.Levels, level)
		return nil
	}
}

func editLevel(level int, edit func(def *LevelDefinition) error) Mutation {
	return func(t *Table) error {
		if level < MinMaxLevel || level > MaxMaxLevel {
			return fmt.Errorf("%w: "+ErrMsgLevelOutOfRangeFmt, domain.ErrInvalidInput, level)
		}
		def, ok := t.Levels[level]
		if !ok {
			def = NewLevelDefinition()
		}
		if err := edit(&def); err != nil {
			return err
		}
		t.Levels[level] = def
		return nil
	}
}

// ==================== Reverse Recipes ====================

// AddReverseRecipe stores a refund recipe. A blank item id gets a generated
// Custom_Item_N key. It returns the key used via the key pointer when non-nil.
func AddReverseRecipe(itemID string, materials []domain.MaterialRequirement, key *string) Mutation {
	return func(t *Table) error {
		itemID = strings.TrimSpace(itemID)
		if itemID == "" {
			itemID = nextCustomRecipeKey(t)
		}
		if len(materials) == 0 {
			return fmt.Errorf("%w: reverse recipe needs at least one material", domain.ErrInvalidInput)
		}
		recipe := cloneMaterials(materials)
		for i := range recipe {
			recipe[i].Count = max(MinMaterialCount, recipe[i].Count)
		}
		t.ReverseRecipes[itemID] = recipe
		if key != nil {
			*key = itemID
		}
		return nil
	}
}

func RemoveReverseRecipe(itemID string) Mutation {
	return func(t *Table) error {
		if _, ok := t.ReverseRecipes[itemID]; !ok {
			return fmt.Errorf("%w: "+ErrMsgRecipeNotFoundFmt, domain.ErrInvalidInput, itemID)
		}
		delete(t.ReverseRecipes, itemID)
		return nil
	}
}

// SetReverseRecipeCount sets the count of one refund material, at least 1
func SetReverseRecipeCount(itemID string, index, count int) Mutation {
	return func(t *Table) error {
		recipe, ok := t.ReverseRecipes[itemID]
		if !ok {
			return fmt.Errorf("%w: "+ErrMsgRecipeNotFoundFmt, domain.ErrInvalidInput, itemID)
		}
		if index < 0 || index >= len(recipe) {
			return fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		recipe[index].Count = max(MinMaterialCount, count)
		return nil
	}
}

func nextCustomRecipeKey(t *Table) string {
	for n := len(t.ReverseRecipes) + 1; ; n++ {
		key := CustomRecipeKeyPrefix + strconv.Itoa(n)
		if _, taken := t.ReverseRecipes[key]; !taken {
			return key
		}
	}
}

// ==================== Patterns ====================

// AddPattern appends to a list. Blank input becomes "New_*".
func AddPattern(list PatternList, pattern string) Mutation {
	return editPatterns(list, func(patterns []string) ([]string, error) {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			pattern = NewPatternFallback
		}
		return append(patterns, pattern), nil
	})
}

// ReplacePattern overwrites the pattern at index
func ReplacePattern(list PatternList, index int, pattern string) Mutation {
	return editPatterns(list, func(patterns []string) ([]string, error) {
		if index < 0 || index >= len(patterns) {
			return nil, fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			return nil, fmt.Errorf("%w: pattern", domain.ErrInvalidInput)
		}
		patterns[index] = pattern
		return patterns, nil
	})
}

func RemovePattern(list PatternList, index int) Mutation {
	return editPatterns(list, func(patterns []string) ([]string, error) {
		if index < 0 || index >= len(patterns) {
			return nil, fmt.Errorf("%w: "+ErrMsgIndexOutOfRangeFmt, domain.ErrInvalidInput, index)
		}
		return append(patterns[:index], patterns[index+1:]...), nil
	})
}

func editPatterns(list PatternList, edit func([]string) ([]string, error)) Mutation {
	return func(t *Table) error {
		var target *[]string
		switch list {
		case PatternListWeapons:
			target = &t.AllowedItems.Weapons
		case PatternListArmor:
			target = &t.AllowedItems.Armor
		case PatternListExclusions:
			target = &t.AllowedItems.Exclusions
		default:
			return fmt.Errorf("%w: "+ErrMsgUnknownPatternList, domain.ErrInvalidInput, list)
		}
		patterns, err := edit(*target)
		if err != nil {
			return err
		}
		*target = patterns
		return nil
	}
}

// ==================== Display Names ====================

// SetCustomItemName overrides the display name of an item. A blank name removes the override.
func SetCustomItemName(itemID, name string) Mutation {
	return func(t *Table) error {
		itemID = domain.CanonicalItemID(strings.TrimSpace(itemID))
		if itemID == "" {
			return fmt.Errorf("%w: item id", domain.ErrInvalidInput)
		}
		if strings.TrimSpace(name) == "" {
			delete(t.CustomItems, itemID)
			return nil
		}
		t.CustomItems[itemID] = name
		return nil
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
