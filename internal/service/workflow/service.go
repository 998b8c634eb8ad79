// Package workflow drives a calendar day through the posting stages and
// keeps its topic linked to the content matrix until it is posted.
package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/stats"
)

type dayRepo interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, error)
	GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error)
	Upsert(ctx context.Context, day *domain.DayRecord) (*domain.DayRecord, error)
}

// matrixReader resolves the current text of referenced cells.
type matrixReader interface {
	GetMatrix(ctx context.Context) (*domain.Matrix, error)
}

// usageRecorder writes the cell usage ledger when a day is posted.
type usageRecorder interface {
	RecordUsage(ctx context.Context, ref domain.MatrixRef, date string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// publisher delivers finished text to the external network.
type publisher interface {
	Publish(ctx context.Context, accessToken, memberID, text string) (string, error)
}

type credentialStore interface {
	Get(ctx context.Context, userID uuid.UUID, provider string) (*domain.Credential, error)
}

const (
	MaxTopicChars     = 500
	MaxNotes          = 50
	MaxNoteChars      = 5000
	MaxFinalTextChars = 3000
	MaxRangeDays      = 366
)

// Service implements the day workflow.
type Service struct {
	days      dayRepo
	matrix    matrixReader
	usage     usageRecorder
	audit     auditLogger
	publisher publisher
	creds     credentialStore
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Workflow service.
func NewService(
	log *slog.Logger,
	days dayRepo,
	matrix matrixReader,
	usage usageRecorder,
	audit auditLogger,
	publisher publisher,
	creds credentialStore,
) *Service {
	return &Service{
		days:      days,
		matrix:    matrix,
		usage:     usage,
		audit:     audit,
		publisher: publisher,
		creds:     creds,
		log:       log.With("service", "workflow"),
		now:       time.Now,
	}
}

// Result is the outcome of a mutating operation. Changed is false when the
// call was a no-op, e.g. on a posted day.
type Result struct {
	Day     *domain.DayRecord
	Changed bool
}

// MonthView is one calendar month of stored days with derived figures.
type MonthView struct {
	Year            int
	Month           time.Month
	Days            []*domain.DayRecord
	Stats           stats.RuleStats
	StatusBreakdown map[domain.Status]int
}

// ShareResult identifies the post created on the external network.
type ShareResult struct {
	Day    *domain.DayRecord
	PostID string
}
