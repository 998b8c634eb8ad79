package matrix

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// AddColumn appends an empty "Edit me" column.
func (s *Service) AddColumn(ctx context.Context) (*domain.Matrix, error) {
	return s.mutate(ctx, "add_column", func(m *domain.Matrix) (map[string]any, error) {
		if len(m.ColHeaders) >= MaxColumns {
			return nil, domain.NewValidationError("cols", fmt.Sprintf("max %d columns", MaxColumns))
		}
		old := len(m.ColHeaders)
		if err := m.AddColumn(); err != nil {
			return nil, err
		}
		return map[string]any{"cols": map[string]any{"old": old, "new": len(m.ColHeaders)}}, nil
	})
}

// AddRow appends an empty "Edit me" row.
func (s *Service) AddRow(ctx context.Context) (*domain.Matrix, error) {
	return s.mutate(ctx, "add_row", func(m *domain.Matrix) (map[string]any, error) {
		if len(m.RowHeaders) >= MaxRows {
			return nil, domain.NewValidationError("rows", fmt.Sprintf("max %d rows", MaxRows))
		}
		old := len(m.RowHeaders)
		if err := m.AddRow(); err != nil {
			return nil, err
		}
		return map[string]any{"rows": map[string]any{"old": old, "new": len(m.RowHeaders)}}, nil
	})
}

// DeleteColumn removes the column at index. The last column cannot be deleted.
func (s *Service) DeleteColumn(ctx context.Context, index int) (*domain.Matrix, error) {
	return s.mutate(ctx, "delete_column", func(m *domain.Matrix) (map[string]any, error) {
		var header string
		if index >= 0 && index < len(m.ColHeaders) {
			header = m.ColHeaders[index]
		}
		if err := m.DeleteColumn(index); err != nil {
			return nil, err
		}
		return map[string]any{"col": map[string]any{"old": header, "index": index}}, nil
	})
}

// DeleteRow removes the row at index. The last row cannot be deleted.
func (s *Service) DeleteRow(ctx context.Context, index int) (*domain.Matrix, error) {
	return s.mutate(ctx, "delete_row", func(m *domain.Matrix) (map[string]any, error) {
		var header string
		if index >= 0 && index < len(m.RowHeaders) {
			header = m.RowHeaders[index]
		}
		if err := m.DeleteRow(index); err != nil {
			return nil, err
		}
		return map[string]any{"row": map[string]any{"old": header, "index": index}}, nil
	})
}

// UpdateHeader renames a row or column header.
func (s *Service) UpdateHeader(ctx context.Context, input UpdateHeaderInput) (*domain.Matrix, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update_header", func(m *domain.Matrix) (map[string]any, error) {
		headers := m.ColHeaders
		if input.Kind == domain.HeaderKindRow {
			headers = m.RowHeaders
		}
		var old string
		if input.Index >= 0 && input.Index < len(headers) {
			old = headers[input.Index]
		}
		if err := m.UpdateHeader(input.Kind, input.Index, input.Text); err != nil {
			return nil, err
		}
		return map[string]any{
			string(input.Kind) + "_header": map[string]any{"index": input.Index, "old": old, "new": input.Text},
		}, nil
	})
}

// UpdateCell sets the text of one cell.
func (s *Service) UpdateCell(ctx context.Context, input UpdateCellInput) (*domain.Matrix, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update_cell", func(m *domain.Matrix) (map[string]any, error) {
		old, _ := m.Cell(input.Row, input.Col)
		if err := m.UpdateCell(input.Row, input.Col, input.Text); err != nil {
			return nil, err
		}
		ref := domain.MatrixRef{Row: input.Row, Col: input.Col}
		return map[string]any{"cell_" + ref.Key(): map[string]any{"old": old, "new": input.Text}}, nil
	})
}

// SaveGrid replaces all headers and cells in one step. Usage history is kept.
func (s *Service) SaveGrid(ctx context.Context, input SaveGridInput) (*domain.Matrix, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "save_grid", func(m *domain.Matrix) (map[string]any, error) {
		oldRows, oldCols := len(m.RowHeaders), len(m.ColHeaders)
		if err := m.ReplaceGrid(input.ColHeaders, input.RowHeaders, input.Cells); err != nil {
			return nil, err
		}
		return map[string]any{
			"rows": map[string]any{"old": oldRows, "new": len(m.RowHeaders)},
			"cols": map[string]any{"old": oldCols, "new": len(m.ColHeaders)},
		}, nil
	})
}

// mutate runs a read-modify-write of the user's matrix with the row locked.
// fn returns the audit changes of the edit.
func (s *Service) mutate(ctx context.Context, op string, fn func(m *domain.Matrix) (map[string]any, error)) (*domain.Matrix, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var result *domain.Matrix
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.loadForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		changes, err := fn(m)
		if err != nil {
			return err
		}

		m.UpdatedAt = s.now()
		if saveErr := s.matrices.Save(txCtx, m); saveErr != nil {
			return fmt.Errorf("save matrix: %w", saveErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMatrix,
			EntityKey:  userID.String(),
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		result = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "matrix updated",
		slog.String("user_id", userID.String()),
		slog.String("op", op),
	)

	return result, nil
}
