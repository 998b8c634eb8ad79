package matrix

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// UpdateHeaderInput holds the parameters for renaming a header.
type UpdateHeaderInput struct {
	Kind  domain.HeaderKind
	Index int
	Text  string
}

// Validate checks all fields and collects all errors.
func (i UpdateHeaderInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be row or col"})
	}
	if i.Index < 0 {
		errs = append(errs, domain.FieldError{Field: "index", Message: "must not be negative"})
	}
	if utf8.RuneCountInString(i.Text) > MaxHeaderChars {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxHeaderChars)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCellInput holds the parameters for editing one cell.
type UpdateCellInput struct {
	Row  int
	Col  int
	Text string
}

// Validate checks all fields and collects all errors.
func (i UpdateCellInput) Validate() error {
	var errs []domain.FieldError

	if i.Row < 0 {
		errs = append(errs, domain.FieldError{Field: "row", Message: "must not be negative"})
	}
	if i.Col < 0 {
		errs = append(errs, domain.FieldError{Field: "col", Message: "must not be negative"})
	}
	if utf8.RuneCountInString(i.Text) > MaxCellChars {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxCellChars)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveGridInput holds a complete grid submitted in one call.
type SaveGridInput struct {
	ColHeaders []string
	RowHeaders []string
	Cells      [][]string
}

// Validate checks limits. Shape is checked by the domain on replace.
func (i SaveGridInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case len(i.ColHeaders) == 0:
		errs = append(errs, domain.FieldError{Field: "colHeaders", Message: "at least one column required"})
	case len(i.ColHeaders) > MaxColumns:
		errs = append(errs, domain.FieldError{Field: "colHeaders", Message: fmt.Sprintf("max %d columns", MaxColumns)})
	}
	switch {
	case len(i.RowHeaders) == 0:
		errs = append(errs, domain.FieldError{Field: "rowHeaders", Message: "at least one row required"})
	case len(i.RowHeaders) > MaxRows:
		errs = append(errs, domain.FieldError{Field: "rowHeaders", Message: fmt.Sprintf("max %d rows", MaxRows)})
	}

	for idx, h := range i.ColHeaders {
		if utf8.RuneCountInString(h) > MaxHeaderChars {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("colHeaders[%d]", idx), Message: fmt.Sprintf("max %d characters", MaxHeaderChars)})
		}
	}
	for idx, h := range i.RowHeaders {
		if utf8.RuneCountInString(h) > MaxHeaderChars {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rowHeaders[%d]", idx), Message: fmt.Sprintf("max %d characters", MaxHeaderChars)})
		}
	}
	for r, row := range i.Cells {
		for c, cell := range row {
			if utf8.RuneCountInString(cell) > MaxCellChars {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("cells[%d][%d]", r, c), Message: fmt.Sprintf("max %d characters", MaxCellChars)})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
