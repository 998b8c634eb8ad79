package matrix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// GetMatrix returns the user's matrix. The default template is stored on
// first access.
func (s *Service) GetMatrix(ctx context.Context) (*domain.Matrix, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.matrices.Get(ctx, userID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get matrix: %w", err)
	}

	m = domain.DefaultMatrix(userID)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m.UpdatedAt = s.now()
		if saveErr := s.matrices.Save(txCtx, m); saveErr != nil {
			return fmt.Errorf("save matrix: %w", saveErr)
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMatrix,
			EntityKey:  userID.String(),
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"cols": map[string]any{"new": len(m.ColHeaders)},
				"rows": map[string]any{"new": len(m.RowHeaders)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "matrix created",
		slog.String("user_id", userID.String()),
	)

	return m, nil
}

// loadForUpdate locks the user's matrix row. A user without a stored
// matrix gets the default template, saved by the caller.
func (s *Service) loadForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Matrix, error) {
	m, err := s.matrices.GetForUpdate(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultMatrix(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get matrix: %w", err)
	}
	return m, nil
}
