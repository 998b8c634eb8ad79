package hooks

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// SaveHooksInput is the complete new list of hooks.
type SaveHooksInput struct {
	Items []string
}

// Validate checks all fields and collects all errors.
func (i SaveHooksInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Items) > MaxHooks {
		errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("max %d hooks", MaxHooks)})
	}
	for idx, item := range i.Items {
		if utf8.RuneCountInString(item) > MaxHookChars {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("items[%d]", idx),
				Message: fmt.Sprintf("max %d characters", MaxHookChars),
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
