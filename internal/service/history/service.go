// Package history reads the audit trail of a user's planning changes.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type auditReader interface {
	GetByEntity(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityKey string, limit int) ([]domain.AuditRecord, error)
	GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

// Service exposes day history and the activity feed.
type Service struct {
	audit auditReader
	log   *slog.Logger
}

func NewService(log *slog.Logger, audit auditReader) *Service {
	return &Service{
		audit: audit,
		log:   log.With("service", "history"),
	}
}

// DayHistory returns the recorded changes of one day, newest first.
func (s *Service) DayHistory(ctx context.Context, date string, limit int) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	records, err := s.audit.GetByEntity(ctx, userID, domain.EntityTypeDay, date, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Activity returns a page of every change the user made, newest first.
func (s *Service) Activity(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}

	records, err := s.audit.GetByUser(ctx, userID, clampLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
