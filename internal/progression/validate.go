package progression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Reforge_Go/internal/domain"
)

var validate = validator.New()

// Validate checks every field of the table.
// Returned errors wrap domain.ErrInvalidConfig.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: table is nil", domain.ErrInvalidConfig)
	}

	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, describeValidationError(err))
	}

	for level := range t.Levels {
		if level < MinMaxLevel || level > MaxMaxLevel {
			return fmt.Errorf("%w: "+ErrMsgLevelOutOfRangeFmt, domain.ErrInvalidConfig, level)
		}
	}
	for id, recipe := range t.ReverseRecipes {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: reverse recipe with blank item id", domain.ErrInvalidConfig)
		}
		if len(recipe) == 0 {
			return fmt.Errorf("%w: reverse recipe %s has no materials", domain.ErrInvalidConfig, id)
		}
	}
	return nil
}

func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", e.Namespace(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
