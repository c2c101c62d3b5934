package i18n

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/osse101/Reforge_Go/internal/domain"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoad_Embedded(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, []string{LocaleEnglish, LocaleRussian}, c.Locales())
}

func TestCatalog_Match(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		code      string
		want      language.Tag
		supported bool
	}{
		{"en", language.English, true},
		{"ru", language.Russian, true},
		{"ru-RU", language.Russian, true},
		{" RU ", language.Russian, true},
		{"de", language.English, false},
		{"not a tag!", language.English, false},
		{"", language.English, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.code))
			assert.Equal(t, tt.supported, c.IsSupported(tt.code))
		})
	}
}

func TestCatalog_Translate(t *testing.T) {
	c := loadCatalog(t)

	assert.Equal(t, "This item cannot be reforged.", c.Translate("en", KeyNotReforgeable))
	assert.Equal(t, "Этот предмет нельзя перековать.", c.Translate("ru", KeyNotReforgeable))
	// Unknown languages use English
	assert.Equal(t, "This item cannot be reforged.", c.Translate("fr", KeyNotReforgeable))
}

func TestCatalog_EveryLocaleHasEveryKey(t *testing.T) {
	c := loadCatalog(t)
	keys := []string{
		KeyNoItem, KeyNotReforgeable, KeyMaxLevel, KeyLevelNotConfigured,
		KeyInsufficientFunds, KeyInsufficientMaterials, KeyAttemptInProgress, KeyUnavailable,
		KeySuccess, KeyFailure, KeyFailureReturned, KeyFailureProtected, KeyMaterialEntry,
		KeyReloadSuccess, KeyReloadFailed, KeySaved,
	}

	for _, locale := range c.Locales() {
		for _, key := range keys {
			assert.NotEqual(t, key, c.Translate(locale, key), "%s missing %s", locale, key)
		}
	}
}

func TestCatalog_Refusal(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrItemNotFound, KeyNoItem},
		{fmt.Errorf("%w: slot 3", domain.ErrNotReforgeable), KeyNotReforgeable},
		{domain.ErrMaxLevel, KeyMaxLevel},
		{domain.ErrLevelNotConfigured, KeyLevelNotConfigured},
		{domain.ErrAttemptInProgress, KeyAttemptInProgress},
		{domain.ErrInsufficientFunds, KeyInsufficientFunds},
		{domain.ErrInsufficientMaterials, KeyInsufficientMaterials},
		{fmt.Errorf("disk on fire"), KeyUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyForError(tt.err))
			assert.Equal(t, c.Translate("en", tt.want), c.Refusal("en", tt.err))
		})
	}
}

func TestCatalog_Result(t *testing.T) {
	c := loadCatalog(t)
	format := func(amount float64) string { return fmt.Sprintf("%.0f coins", amount) }

	tests := []struct {
		name   string
		result domain.AttemptResult
		want   string
	}{
		{
			name:   "weapon success",
			result: domain.AttemptResult{Outcome: domain.OutcomeSuccess, Category: domain.CategoryWeapon, TargetLevel: 4, WeaponBonus: 15, ArmorBonus: 7},
			want:   "Success! Sword Iron is now +4 (bonus +15.0).",
		},
		{
			name:   "armor success",
			result: domain.AttemptResult{Outcome: domain.OutcomeSuccess, Category: domain.CategoryArmor, TargetLevel: 2, WeaponBonus: 6, ArmorBonus: 4.5},
			want:   "Success! Sword Iron is now +2 (bonus +4.5).",
		},
		{
			name:   "failure with refund",
			result: domain.AttemptResult{Outcome: domain.OutcomeFailure, Returned: []domain.MaterialRequirement{{ItemID: "hytale:Ingredient_Bar_Iron", Count: 3}, {ItemID: "Leather", Count: 1}}},
			want:   "The reforge failed and Sword Iron was destroyed. Recovered: 3x Ingredient_Bar_Iron, 1x Leather.",
		},
		{
			name:   "failure without refund",
			result: domain.AttemptResult{Outcome: domain.OutcomeFailure},
			want:   "The reforge failed and Sword Iron was destroyed.",
		},
		{
			name:   "protected failure",
			result: domain.AttemptResult{Outcome: domain.OutcomeFailureProtected},
			want:   "The reforge failed. Protection saved Sword Iron, but its level was reset.",
		},
		{
			name:   "insufficient funds",
			result: domain.AttemptResult{Outcome: domain.OutcomeCannotAttempt, Reason: domain.ReasonInsufficientFunds, TotalCost: 450},
			want:   "You need 450 coins to reforge this item.",
		},
		{
			name:   "insufficient materials",
			result: domain.AttemptResult{Outcome: domain.OutcomeCannotAttempt, Reason: domain.ReasonInsufficientMaterials},
			want:   "You are missing materials for this reforge.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Result("en", &tt.result, "Sword Iron", format))
		})
	}
}

func TestLoadFS_Errors(t *testing.T) {
	en := &fstest.MapFile{Data: []byte("locale: en\nmessages:\n  a: b\n")}

	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"empty", fstest.MapFS{}, ErrMsgNoCatalogs},
		{"no english", fstest.MapFS{"locales/ru.yaml": {Data: []byte("locale: ru\nmessages: {}\n")}}, "base locale"},
		{"missing locale", fstest.MapFS{"locales/en.yaml": {Data: []byte("messages: {}\n")}}, "locale is required"},
		{"name mismatch", fstest.MapFS{"locales/en.yaml": en, "locales/de.yaml": {Data: []byte("locale: fr\n")}}, "must match file name"},
		{"bad yaml", fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: [\n")}}, "parse catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
