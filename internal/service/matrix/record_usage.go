package matrix

import (
	"context"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// RecordUsage stores date as the last use of the referenced cell. Repeating
// the call with the same arguments leaves the ledger unchanged.
func (s *Service) RecordUsage(ctx context.Context, ref domain.MatrixRef, date string) error {
	if _, err := domain.ParseDate(date); err != nil {
		return err
	}
	if ref.Row < 0 || ref.Col < 0 {
		return domain.NewValidationError("matrix_ref", "must not be negative")
	}

	_, err := s.mutate(ctx, "record_usage", func(m *domain.Matrix) (map[string]any, error) {
		old := m.CellUsage[ref.Key()]
		m.RecordUsage(ref, date)
		return map[string]any{"cell_usage_" + ref.Key(): map[string]any{"old": old, "new": date}}, nil
	})
	return err
}
