package workflow

import (
	"context"
	"fmt"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// Advance moves the day one stage forward once the current stage is
// complete. An incomplete stage returns a *domain.StageIncompleteError and
// writes nothing.
func (s *Service) Advance(ctx context.Context, date string) (*Result, error) {
	return s.apply(ctx, date, "advanced", domain.AuditActionUpdate, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		if err := day.StageComplete(); err != nil {
			return nil, err
		}
		next, ok := day.Status.Next()
		if !ok {
			return nil, nil
		}
		return s.moveTo(ctx, day, next)
	})
}

// Retreat moves the day one stage back. It has no data precondition.
func (s *Service) Retreat(ctx context.Context, date string) (*Result, error) {
	return s.apply(ctx, date, "retreated", domain.AuditActionUpdate, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		prev, ok := day.Status.Prev()
		if !ok {
			return nil, nil
		}
		return s.moveTo(ctx, day, prev)
	})
}

// Publish posts the day from any earlier stage. When the day follows a
// matrix cell the cell usage is recorded before the status is written;
// both writes are idempotent, so a failed call can be retried as is.
func (s *Service) Publish(ctx context.Context, date string) (*Result, error) {
	return s.apply(ctx, date, "published", domain.AuditActionPublish, func(ctx context.Context, day *domain.DayRecord) (map[string]any, error) {
		return s.moveTo(ctx, day, domain.StatusPost)
	})
}

// moveTo sets the status. Entering the posted stage records matrix usage first.
func (s *Service) moveTo(ctx context.Context, day *domain.DayRecord, status domain.Status) (map[string]any, error) {
	changes := map[string]any{"status": diff(day.Status, status)}

	if status.IsTerminal() && day.MatrixRef != nil {
		if err := s.usage.RecordUsage(ctx, *day.MatrixRef, day.Date); err != nil {
			return nil, fmt.Errorf("record matrix usage: %w", err)
		}
		changes["cell_usage"] = map[string]any{"new": day.MatrixRef.Key()}
	}

	day.Status = status
	return changes, nil
}
