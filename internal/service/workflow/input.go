package workflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// ListDaysInput is an inclusive date range.
type ListDaysInput struct {
	From string
	To   string
}

// Validate checks all fields and collects all errors.
func (i ListDaysInput) Validate() error {
	var errs []domain.FieldError

	from, fromErr := domain.ParseDate(i.From)
	if fromErr != nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	to, toErr := domain.ParseDate(i.To)
	if toErr != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if fromErr == nil && toErr == nil {
		if to.Before(from) {
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		} else if int(to.Sub(from).Hours()/24) >= MaxRangeDays {
			errs = append(errs, domain.FieldError{Field: "to", Message: fmt.Sprintf("range must not exceed %d days", MaxRangeDays)})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDayInput holds a partial edit. A nil field is not changed; an empty
// Format or Rule clears the value.
type UpdateDayInput struct {
	Topic     *string
	Notes     *[]string
	FinalText *string
	Format    *domain.PostFormat
	Rule      *domain.PostRule
}

// Validate checks all fields and collects all errors.
func (i UpdateDayInput) Validate() error {
	var errs []domain.FieldError

	if i.Topic == nil && i.Notes == nil && i.FinalText == nil && i.Format == nil && i.Rule == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Topic != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Topic)) > MaxTopicChars {
		errs = append(errs, domain.FieldError{Field: "topic", Message: fmt.Sprintf("max %d characters", MaxTopicChars)})
	}

	if i.Notes != nil {
		if len(*i.Notes) > MaxNotes {
			errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d notes", MaxNotes)})
		}
		for idx, n := range *i.Notes {
			if utf8.RuneCountInString(n) > MaxNoteChars {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("notes[%d]", idx), Message: fmt.Sprintf("max %d characters", MaxNoteChars)})
			}
		}
	}

	if i.FinalText != nil && utf8.RuneCountInString(*i.FinalText) > MaxFinalTextChars {
		errs = append(errs, domain.FieldError{Field: "finalText", Message: fmt.Sprintf("max %d characters", MaxFinalTextChars)})
	}

	if i.Format != nil && *i.Format != "" && !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "unknown format"})
	}
	if i.Rule != nil && *i.Rule != "" && !i.Rule.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rule", Message: "unknown rule"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
