package matrix

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

type matrixRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Matrix, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Matrix, error)
	Save(ctx context.Context, m *domain.Matrix) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxRows        = 100
	MaxColumns     = 50
	MaxHeaderChars = 100
	MaxCellChars   = 1000
)

// Service owns the per-user content matrix.
type Service struct {
	matrices matrixRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Matrix service.
func NewService(
	log *slog.Logger,
	matrices matrixRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		matrices: matrices,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "matrix"),
		now:      time.Now,
	}
}
