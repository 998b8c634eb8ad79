package resolver

import (
	"context"
	"time"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/history"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
)

func (r *QueryResolver) Day(ctx context.Context, date string) (*domain.DayRecord, error) {
	return r.days.GetDay(ctx, date)
}

func (r *QueryResolver) Days(ctx context.Context, from, to string) ([]*domain.DayRecord, error) {
	return r.days.ListDays(ctx, from, to)
}

func (r *QueryResolver) Month(ctx context.Context, year, month int) (*workflow.MonthView, error) {
	return r.days.ListMonth(ctx, year, time.Month(month))
}

// Matrix returns the user's matrix, or the starting template if none was saved.
func (r *QueryResolver) Matrix(ctx context.Context) (*domain.Matrix, error) {
	return r.matrix.GetMatrix(ctx)
}

func (r *QueryResolver) Hooks(ctx context.Context) ([]string, error) {
	return r.hooks.GetHooks(ctx)
}

// DayHistory returns the newest changes of one day. A nil limit uses the
// service default.
func (r *QueryResolver) DayHistory(ctx context.Context, date string, limit *int) ([]domain.AuditRecord, error) {
	n := history.DefaultLimit
	if limit != nil {
		n = *limit
	}
	return r.history.DayHistory(ctx, date, n)
}
