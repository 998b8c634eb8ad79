package hooks

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

type hooksRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Hooks, error)
	Save(ctx context.Context, h *domain.Hooks) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxHooks     = 200
	MaxHookChars = 2000
)

// Service stores the user's list of reusable post openers.
type Service struct {
	hooks hooksRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Hooks service.
func NewService(
	log *slog.Logger,
	hooks hooksRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		hooks: hooks,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "hooks"),
		now:   time.Now,
	}
}
