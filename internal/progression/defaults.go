package progression

import (
	"math"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// DefaultTable returns the ladder shipped with a fresh install
func DefaultTable() *Table {
	t := &Table{
		General: General{
			Language:                 DefaultLanguage,
			MessagePrefix:            DefaultMessagePrefix,
			MaxLevel:                 DefaultMaxLevel,
			FailureReturnRate:        DefaultFailureReturnRate,
			ProtectionEnabled:        DefaultProtectionEnabled,
			ProtectionCostMultiplier: DefaultProtectionCostMultiplier,
		},
		AllowedItems: AllowedItems{
			Weapons: []string{DefaultWeaponPattern},
			Armor:   []string{DefaultArmorPattern},
		},
	}
	t.normalize()

	for level := 1; level <= DefaultMaxLevel; level++ {
		t.Levels[level] = DefaultLevel(level)
	}
	return t
}

// DefaultLevel generates the stock definition for a level
func DefaultLevel(level int) LevelDefinition {
	chance := math.Max(DefaultMinChance, DefaultBaseChance-float64(level-1)*DefaultChanceStep)

	return LevelDefinition{
		SuccessChance: math.Round(chance*100) / 100,
		WeaponBonus:   float64(level) * DefaultWeaponBonusStep,
		ArmorBonus:    float64(level) * DefaultArmorBonusStep,
		CoinCost:      float64(level) * DefaultCoinCostStep,
		Materials: []domain.MaterialRequirement{
			{ItemID: DefaultLevelMaterial, Count: min(level*DefaultMaterialStep, DefaultMaterialCap)},
		},
	}
}

// NewLevelDefinition is the blank level an admin edit starts from
func NewLevelDefinition() LevelDefinition {
	return LevelDefinition{
		SuccessChance: NewLevelChance,
		WeaponBonus:   NewLevelWeaponBonus,
		ArmorBonus:    NewLevelArmorBonus,
		CoinCost:      NewLevelCoinCost,
		Materials:     []domain.MaterialRequirement{},
	}
}
