package progression

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/domain"
)

func TestManager_LoadCreatesDefaults(t *testing.T) {
	// ARRANGE
	path := filepath.Join(t.TempDir(), "nested", "reforging.json")
	m := NewManager(path)

	// ACT
	err := m.Load(context.Background())

	// ASSERT
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, DefaultMaxLevel, m.Current().General.MaxLevel)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"maxReforgeLevel": 10`)
	assert.Contains(t, string(data), `"1": {`, "levels are keyed by level number as string")
}

func TestManager_LoadInvalidKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reforging.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	m := NewManager(path)

	err := m.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, DefaultTable().General, m.Current().General)
}

func TestManager_LoadPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reforging.json")
	doc := `{
  "general": {"language": "ru", "maxReforgeLevel": 5, "failureReturnRate": 0.5, "protectionEnabled": false, "protectionCostMultiplier": 1},
  "levels": {"1": {"successChance": 0.8, "coinCost": 10, "materials": [{"itemId": "Ingredient_Bar_Iron", "count": 3}]}},
  "customItems": {"Weapon_Sword_Iron": "Old Faithful"}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	m := NewManager(path)

	require.NoError(t, m.Load(context.Background()))

	table := m.Current()
	assert.Equal(t, "ru", table.General.Language)
	assert.Equal(t, 5, table.General.MaxLevel)
	assert.Len(t, table.Levels, 1, "configured levels replace the default ladder")
	assert.Equal(t, []string{DefaultWeaponPattern}, table.AllowedItems.Weapons, "missing sections keep defaults")
	assert.Equal(t, "Old Faithful", table.CustomItems["Weapon_Sword_Iron"])
	assert.NotNil(t, table.ReverseRecipes)
}

func TestManager_YAMLDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reforging.yaml")
	m := NewManager(path)
	require.NoError(t, m.Load(context.Background()))

	_, err := m.Update(context.Background(), SetMaxLevel(7))
	require.NoError(t, err)

	reloaded := NewManager(path)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, 7, reloaded.Current().General.MaxLevel)
	assert.Len(t, reloaded.Current().Levels, DefaultMaxLevel)
}

func TestManager_UnsupportedExtension(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "reforging.toml"))

	err := m.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.NotNil(t, m.Current())
}

func TestManager_ReloadPublishesNewSnapshot(t *testing.T) {
	// ARRANGE
	path := filepath.Join(t.TempDir(), "reforging.json")
	m := NewManager(path)
	require.NoError(t, m.Load(context.Background()))
	before := m.Current()

	updates, cancel := m.Subscribe()
	defer cancel()

	edited := before.Clone()
	edited.General.FailureReturnRate = 0.75
	data, err := Encode(path, edited)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// ACT
	require.NoError(t, m.Reload(context.Background()))

	// ASSERT
	select {
	case snap := <-updates:
		assert.Equal(t, 0.75, snap.General.FailureReturnRate)
		assert.Same(t, snap, m.Current())
	case <-time.After(time.Second):
		t.Fatal("no snapshot published")
	}
	assert.Equal(t, DefaultFailureReturnRate, before.General.FailureReturnRate, "old snapshot is immutable")

	var src Source = m
	assert.Equal(t, 0.75, src.Current().General.FailureReturnRate, "holders of the manager see the reload")
}

func TestManager_ReloadFailureKeepsSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reforging.json")
	m := NewManager(path)
	require.NoError(t, m.Load(context.Background()))
	before := m.Current()

	require.NoError(t, os.WriteFile(path, []byte(`{"general": {"maxReforgeLevel": 99, "language": "en"}}`), 0o644))

	err := m.Reload(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Same(t, before, m.Current())
}

func TestManager_UpdateRejectsInvalidEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reforging.json")
	m := NewManager(path)
	require.NoError(t, m.Load(context.Background()))
	before := m.Current()

	_, err := m.Update(context.Background(), RemoveLevelMaterial(1, 0))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Same(t, before, m.Current())
}

func TestManager_SubscribeKeepsLatestForSlowReader(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "reforging.json"))
	require.NoError(t, m.Load(context.Background()))
	updates, cancel := m.Subscribe()

	for _, lvl := range []int{3, 4, 5} {
		_, err := m.Update(context.Background(), SetMaxLevel(lvl))
		require.NoError(t, err)
	}

	snap := <-updates
	assert.Equal(t, 5, snap.General.MaxLevel)

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)
}
