package i18n

import (
	"errors"
	"strings"

	"github.com/osse101/Reforge_Go/internal/domain"
)

// KeyForError maps an attempt error to its message key. Errors without a
// player-facing meaning map to KeyUnavailable.
func KeyForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return KeyNoItem
	case errors.Is(err, domain.ErrNotReforgeable):
		return KeyNotReforgeable
	case errors.Is(err, domain.ErrMaxLevel):
		return KeyMaxLevel
	case errors.Is(err, domain.ErrLevelNotConfigured):
		return KeyLevelNotConfigured
	case errors.Is(err, domain.ErrAttemptInProgress):
		return KeyAttemptInProgress
	case errors.Is(err, domain.ErrInsufficientFunds):
		return KeyInsufficientFunds
	case errors.Is(err, domain.ErrInsufficientMaterials):
		return KeyInsufficientMaterials
	default:
		return KeyUnavailable
	}
}

// Refusal renders the message for a refused attempt
func (c *Catalog) Refusal(code string, err error) string {
	return c.Translate(code, KeyForError(err))
}

// Result renders the message for a resolved attempt. name is the item's
// display name; format renders currency amounts.
func (c *Catalog) Result(code string, result *domain.AttemptResult, name string, format func(float64) string) string {
	switch result.Outcome {
	case domain.OutcomeSuccess:
		bonus := result.WeaponBonus
		if result.Category == domain.CategoryArmor {
			bonus = result.ArmorBonus
		}
		return c.Translate(code, KeySuccess, name, result.TargetLevel, bonus)
	case domain.OutcomeFailureProtected:
		return c.Translate(code, KeyFailureProtected, name)
	case domain.OutcomeFailure:
		if len(result.Returned) == 0 {
			return c.Translate(code, KeyFailure, name)
		}
		return c.Translate(code, KeyFailureReturned, name, c.materialList(code, result.Returned))
	}

	switch result.Reason {
	case domain.ReasonInsufficientFunds:
		return c.Translate(code, KeyInsufficientFunds, format(result.TotalCost))
	case domain.ReasonInsufficientMaterials:
		return c.Translate(code, KeyInsufficientMaterials)
	default:
		return c.Translate(code, KeyUnavailable)
	}
}

func (c *Catalog) materialList(code string, materials []domain.MaterialRequirement) string {
	parts := make([]string, 0, len(materials))
	for _, m := range materials {
		parts = append(parts, c.Translate(code, KeyMaterialEntry, m.Count, domain.CanonicalItemID(m.ItemID)))
	}
	return strings.Join(parts, MaterialListSeparator)
}
