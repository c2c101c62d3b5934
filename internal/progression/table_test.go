package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/domain"
)

func sparseTable() *Table {
	t := DefaultTable()
	t.Levels = map[int]LevelDefinition{
		1: {SuccessChance: 0.9, WeaponBonus: 1, ArmorBonus: 0.5, CoinCost: 10},
		3: {SuccessChance: 0.7, WeaponBonus: 3, ArmorBonus: 1.5, CoinCost: 30},
		5: {SuccessChance: 0.5, WeaponBonus: 5, ArmorBonus: 2.5, CoinCost: 50},
	}
	return t
}

func TestDefaultTable_IsValid(t *testing.T) {
	table := DefaultTable()

	require.NoError(t, table.Validate())
	assert.Equal(t, DefaultMaxLevel, table.General.MaxLevel)
	assert.Len(t, table.Levels, DefaultMaxLevel)

	for _, level := range table.SortedLevels() {
		def, ok := table.LevelConfig(level)
		require.True(t, ok)
		assert.GreaterOrEqual(t, def.SuccessChance, 0.0, "level %d", level)
		assert.LessOrEqual(t, def.SuccessChance, 1.0, "level %d", level)
		assert.GreaterOrEqual(t, def.CoinCost, 0.0)
		assert.GreaterOrEqual(t, def.WeaponBonus, 0.0)
		assert.GreaterOrEqual(t, def.ArmorBonus, 0.0)
		for _, m := range def.Materials {
			assert.Positive(t, m.Count)
		}
	}
}

func TestDefaultLevel_Ladder(t *testing.T) {
	tests := []struct {
		level     int
		chance    float64
		cost      float64
		weapon    float64
		armor     float64
		materials int
	}{
		{1, 0.95, 100, 2, 1.5, 2},
		{4, 0.65, 400, 8, 6, 8},
		{10, 0.05, 1000, 20, 15, 20},
		{12, 0.05, 1200, 24, 18, 20},
	}

	for _, tt := range tests {
		def := DefaultLevel(tt.level)
		assert.InDelta(t, tt.chance, def.SuccessChance, 1e-9, "level %d chance", tt.level)
		assert.InDelta(t, tt.cost, def.CoinCost, 1e-9)
		assert.InDelta(t, tt.weapon, def.WeaponBonus, 1e-9)
		assert.InDelta(t, tt.armor, def.ArmorBonus, 1e-9)
		require.Len(t, def.Materials, 1)
		assert.Equal(t, DefaultLevelMaterial, def.Materials[0].ItemID)
		assert.Equal(t, tt.materials, def.Materials[0].Count)
	}
}

func TestLevelConfig_FallsBackToHighestLower(t *testing.T) {
	table := sparseTable()

	def, ok := table.LevelConfig(3)
	require.True(t, ok)
	assert.Equal(t, 0.7, def.SuccessChance, "exact match")

	def, ok = table.LevelConfig(4)
	require.True(t, ok)
	assert.Equal(t, 0.7, def.SuccessChance, "level 4 reuses level 3")

	def, ok = table.LevelConfig(8)
	require.True(t, ok)
	assert.Equal(t, 0.5, def.SuccessChance, "level 8 reuses level 5")
}

func TestLevelConfig_BelowLowestLevel(t *testing.T) {
	table := sparseTable()
	delete(table.Levels, 1)

	_, ok := table.LevelConfig(2)
	assert.False(t, ok)

	_, ok = table.LevelConfig(0)
	assert.False(t, ok)
}

func TestCumulativeBonus(t *testing.T) {
	table := sparseTable()

	// 1 + 1 (level 2 -> 1) + 3 + 3 (level 4 -> 3)
	assert.InDelta(t, 8.0, table.CumulativeWeaponBonus(4), 1e-9)
	assert.InDelta(t, 4.0, table.CumulativeArmorBonus(4), 1e-9)
	assert.Zero(t, table.CumulativeWeaponBonus(0))
}

func TestTotalCost(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, 100.0, table.TotalCost(100, false))
	assert.Equal(t, 300.0, table.TotalCost(100, true), "protection doubles the base cost on top")

	table.General.ProtectionEnabled = false
	assert.Equal(t, 100.0, table.TotalCost(100, true), "disabled protection is free and ignored")
	assert.Zero(t, table.ProtectionCost(100))
}

func TestReverseRecipe_LookupOrder(t *testing.T) {
	table := DefaultTable()
	table.ReverseRecipes["Weapon_Sword_Iron"] = []domain.MaterialRequirement{{ItemID: "Bar_Iron", Count: 4}}
	table.ReverseRecipes["mod:Armor_Odd"] = []domain.MaterialRequirement{{ItemID: "Bar_Odd", Count: 2}}

	recipe, ok := table.ReverseRecipe("hytale:Weapon_Sword_Iron")
	require.True(t, ok)
	assert.Equal(t, "Bar_Iron", recipe[0].ItemID, "bare name wins")

	recipe, ok = table.ReverseRecipe("mod:Armor_Odd")
	require.True(t, ok)
	assert.Equal(t, "Bar_Odd", recipe[0].ItemID, "qualified id is the second lookup")

	_, ok = table.ReverseRecipe("Weapon_Unknown")
	assert.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	table := DefaultTable()
	table.ReverseRecipes["X"] = []domain.MaterialRequirement{{ItemID: "A", Count: 1}}

	c := table.Clone()
	c.AllowedItems.Weapons[0] = "Changed_*"
	c.ReverseRecipes["X"][0].Count = 9
	lvl := c.Levels[1]
	lvl.Materials[0].Count = 99
	c.General.MaxLevel = 3

	assert.Equal(t, DefaultWeaponPattern, table.AllowedItems.Weapons[0])
	assert.Equal(t, 1, table.ReverseRecipes["X"][0].Count)
	assert.Equal(t, 2, table.Levels[1].Materials[0].Count)
	assert.Equal(t, DefaultMaxLevel, table.General.MaxLevel)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{"chance above one", func(tb *Table) { tb.Levels[1] = LevelDefinition{SuccessChance: 1.5} }},
		{"negative cost", func(tb *Table) { tb.Levels[2] = LevelDefinition{SuccessChance: 0.5, CoinCost: -1} }},
		{"zero material count", func(tb *Table) {
			tb.Levels[3] = LevelDefinition{SuccessChance: 0.5, Materials: []domain.MaterialRequirement{{ItemID: "A", Count: 0}}}
		}},
		{"return rate above one", func(tb *Table) { tb.General.FailureReturnRate = 1.2 }},
		{"max level zero", func(tb *Table) { tb.General.MaxLevel = 0 }},
		{"max level too high", func(tb *Table) { tb.General.MaxLevel = 21 }},
		{"level key out of range", func(tb *Table) { tb.Levels[42] = DefaultLevel(1) }},
		{"blank pattern", func(tb *Table) { tb.AllowedItems.Armor = []string{""} }},
		{"empty reverse recipe", func(tb *Table) { tb.ReverseRecipes["X"] = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := DefaultTable()
			tt.mutate(table)

			err := table.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}
