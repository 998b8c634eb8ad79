package hooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// SaveHooks replaces the whole list.
func (s *Service) SaveHooks(ctx context.Context, input SaveHooksInput) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items := slices.Clone(input.Items)
	if items == nil {
		items = []string{}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var oldCount int
		old, getErr := s.hooks.Get(txCtx, userID)
		switch {
		case getErr == nil:
			oldCount = len(old.Items)
		case !errors.Is(getErr, domain.ErrNotFound):
			return fmt.Errorf("get hooks: %w", getErr)
		}

		if saveErr := s.hooks.Save(txCtx, &domain.Hooks{
			UserID:    userID,
			Items:     items,
			UpdatedAt: s.now(),
		}); saveErr != nil {
			return fmt.Errorf("save hooks: %w", saveErr)
		}

		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeHooks,
			EntityKey:  userID.String(),
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"count": map[string]any{"old": oldCount, "new": len(items)},
			},
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "hooks saved",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(items)),
	)

	return items, nil
}
