package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// SelectFromMatrix links the day to cell (row, col) and copies its text into
// the topic in one write. The cell must exist and hold text.
func (s *Service) SelectFromMatrix(ctx context.Context, date string, row, col int) (*Result, error) {
	if row < 0 || col < 0 {
		return nil, domain.NewValidationError("matrix_ref", "must not be negative")
	}

	return s.apply(ctx, date, "linked to matrix", domain.AuditActionUpdate, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		m, err := s.matrix.GetMatrix(ctx)
		if err != nil {
			return nil, fmt.Errorf("get matrix: %w", err)
		}
		text, ok := m.Cell(row, col)
		if !ok {
			return nil, domain.NewValidationError("matrix_ref", "cell does not exist")
		}
		if strings.TrimSpace(text) == "" {
			return nil, domain.NewValidationError("matrix_ref", "cell is empty")
		}

		ref := domain.MatrixRef{Row: row, Col: col}
		changes := map[string]any{}
		if day.MatrixRef == nil || *day.MatrixRef != ref {
			var old any
			if day.MatrixRef != nil {
				old = day.MatrixRef.Key()
			}
			changes["matrix_ref"] = diff(old, ref.Key())
		}
		if day.Topic != text {
			changes["topic"] = diff(day.Topic, text)
		}

		day.Topic = text
		day.MatrixRef = &ref
		return changes, nil
	})
}

// Dereference detaches the day from its matrix cell. The topic text stays.
func (s *Service) Dereference(ctx context.Context, date string) (*Result, error) {
	return s.apply(ctx, date, "unlinked from matrix", domain.AuditActionUpdate, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		if day.MatrixRef == nil {
			return nil, nil
		}
		changes := map[string]any{"matrix_ref": diff(day.MatrixRef.Key(), nil)}
		day.MatrixRef = nil
		return changes, nil
	})
}
