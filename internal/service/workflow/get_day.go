package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/stats"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// GetDay returns the record for date. A date that was never edited yields
// a fresh, unsaved record in the first stage.
func (s *Service) GetDay(ctx context.Context, date string) (*domain.DayRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	day, _, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if !linked(day) {
		return day, nil
	}

	return s.syncTopic(ctx, day, s.loadMatrix(ctx)), nil
}

// ListDays returns the stored records with from <= date <= to, in date order.
func (s *Service) ListDays(ctx context.Context, from, to string) ([]*domain.DayRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input := ListDaysInput{From: from, To: to}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.listRange(ctx, userID, from, to)
}

// ListMonth returns the stored records of one month with rule and stage counts.
func (s *Service) ListMonth(ctx context.Context, year int, month time.Month) (*MonthView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if year < 1 || year > 9999 {
		return nil, domain.NewValidationError("year", "must be between 1 and 9999")
	}
	if month < time.January || month > time.December {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	days, err := s.listRange(ctx, userID, first.Format(domain.DateLayout), last.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}

	return &MonthView{
		Year:            year,
		Month:           month,
		Days:            days,
		Stats:           stats.ComputeRuleStats(days),
		StatusBreakdown: stats.StatusBreakdown(days),
	}, nil
}

func (s *Service) listRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error) {
	days, err := s.days.GetRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	var m *domain.Matrix
	for i, day := range days {
		if !linked(day) {
			continue
		}
		if m == nil {
			if m = s.loadMatrix(ctx); m == nil {
				break
			}
		}
		days[i] = s.syncTopic(ctx, day, m)
	}

	return days, nil
}

// load returns the stored record, or a new unsaved one when none exists.
func (s *Service) load(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, bool, error) {
	day, err := s.days.Get(ctx, userID, date)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewDayRecord(userID, date), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get day: %w", err)
	}
	return day, true, nil
}

// loadMatrix reads the matrix for topic sync. A failed read disables sync
// for the request instead of failing it.
func (s *Service) loadMatrix(ctx context.Context) *domain.Matrix {
	m, err := s.matrix.GetMatrix(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "matrix unavailable, topic sync skipped",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return m
}

// syncTopic copies the referenced cell text into the topic and persists it.
// A failed write is logged and the synced copy is still returned.
func (s *Service) syncTopic(ctx context.Context, day *domain.DayRecord, m *domain.Matrix) *domain.DayRecord {
	text, ok := cellTopic(day, m)
	if !ok {
		return day
	}

	synced := day.Clone()
	synced.Topic = text
	synced.UpdatedAt = s.now()

	saved, err := s.days.Upsert(ctx, synced)
	if err != nil {
		s.log.WarnContext(ctx, "topic sync write failed",
			slog.String("user_id", day.UserID.String()),
			slog.String("date", day.Date),
			slog.String("error", err.Error()),
		)
		return synced
	}

	s.log.DebugContext(ctx, "topic synced from matrix",
		slog.String("user_id", day.UserID.String()),
		slog.String("date", day.Date),
		slog.String("cell", day.MatrixRef.Key()),
	)
	return saved
}

// linked reports whether the day follows a matrix cell.
func linked(day *domain.DayRecord) bool {
	return day.MatrixRef != nil && !day.IsLocked()
}

// cellTopic returns the referenced cell text when it differs from the
// day's topic. A reference to a removed cell is stale and ignored.
func cellTopic(day *domain.DayRecord, m *domain.Matrix) (string, bool) {
	if m == nil || !linked(day) {
		return "", false
	}
	text, ok := m.Cell(day.MatrixRef.Row, day.MatrixRef.Col)
	if !ok || text == day.Topic {
		return "", false
	}
	return text, true
}
