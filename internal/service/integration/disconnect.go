package integration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// Disconnect removes the stored credential. Calling it without a
// connection is not an error.
func (s *Service) Disconnect(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if delErr := s.creds.Delete(txCtx, userID, domain.ProviderLinkedIn); delErr != nil {
			return fmt.Errorf("delete credential: %w", delErr)
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeIntegration,
			EntityKey:  domain.ProviderLinkedIn,
			Action:     domain.AuditActionDelete,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "linkedin disconnected",
		slog.String("user_id", userID.String()),
	)
	return nil
}
