package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// mutation edits a copy of the day and returns the audit changes. No
// changes means nothing is written.
type mutation func(ctx context.Context, day *domain.DayRecord) (map[string]any, error)

// apply runs a read-modify-write on the day for date. The mutation sees the
// topic already synced from the matrix. Posted days are returned unchanged;
// a no-op on a linked day still persists and returns the synced topic.
func (s *Service) apply(ctx context.Context, date, op string, action domain.AuditAction, fn mutation) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	day, exists, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var m *domain.Matrix
	next := day.Clone()
	if linked(day) {
		m = s.loadMatrix(ctx)
		if text, ok := cellTopic(day, m); ok {
			next.Topic = text
		}
	}

	var changes map[string]any
	if err := next.CheckMutable(); err == nil {
		changes, err = fn(ctx, next)
		if err != nil {
			return nil, err
		}
	}
	if len(changes) == 0 {
		s.log.DebugContext(ctx, "day unchanged",
			slog.String("user_id", userID.String()),
			slog.String("date", date),
			slog.String("op", op),
		)
		if exists {
			return &Result{Day: s.syncTopic(ctx, day, m)}, nil
		}
		return &Result{Day: day}, nil
	}

	now := s.now()
	if !exists {
		next.CreatedAt = now
		action = domain.AuditActionCreate
	}
	next.UpdatedAt = now

	saved, err := s.days.Upsert(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("save day: %w", err)
	}

	s.logAudit(ctx, userID, date, action, changes)

	s.log.InfoContext(ctx, "day "+op,
		slog.String("user_id", userID.String()),
		slog.String("date", date),
		slog.String("status", saved.Status.String()),
	)

	return &Result{Day: saved, Changed: true}, nil
}

// logAudit records the change. The day write is already committed, so a
// failed audit write is only logged.
func (s *Service) logAudit(ctx context.Context, userID uuid.UUID, date string, action domain.AuditAction, changes map[string]any) {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeDay,
		EntityKey:  date,
		Action:     action,
		Changes:    changes,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log.WarnContext(ctx, "audit log failed",
			slog.String("user_id", userID.String()),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
	}
}

// diff is the audit entry for one changed field.
func diff(from, to any) map[string]any {
	return map[string]any{"old": from, "new": to}
}
