// Package resolver holds the GraphQL resolvers. They translate GraphQL
// arguments into service inputs and return domain values; rendering them
// as GraphQL objects is the parent package's job.
package resolver

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
)

type dayService interface {
	GetDay(ctx context.Context, date string) (*domain.DayRecord, error)
	ListDays(ctx context.Context, from, to string) ([]*domain.DayRecord, error)
	ListMonth(ctx context.Context, year int, month time.Month) (*workflow.MonthView, error)
	UpdateDay(ctx context.Context, date string, input workflow.UpdateDayInput) (*workflow.Result, error)
	Advance(ctx context.Context, date string) (*workflow.Result, error)
	Retreat(ctx context.Context, date string) (*workflow.Result, error)
	Publish(ctx context.Context, date string) (*workflow.Result, error)
	SelectFromMatrix(ctx context.Context, date string, row, col int) (*workflow.Result, error)
	Dereference(ctx context.Context, date string) (*workflow.Result, error)
}

type matrixService interface {
	GetMatrix(ctx context.Context) (*domain.Matrix, error)
}

type hooksService interface {
	GetHooks(ctx context.Context) ([]string, error)
}

type historyService interface {
	DayHistory(ctx context.Context, date string, limit int) ([]domain.AuditRecord, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	days    dayService
	matrix  matrixService
	hooks   hooksService
	history historyService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	days dayService,
	matrix matrixService,
	hooks hooksService,
	history historyService,
) *Resolver {
	return &Resolver{
		days:    days,
		matrix:  matrix,
		hooks:   hooks,
		history: history,
		log:     log.With("component", "graphql"),
	}
}

// QueryResolver resolves the fields of the Query root.
type QueryResolver struct{ *Resolver }

// MutationResolver resolves the fields of the Mutation root.
type MutationResolver struct{ *Resolver }

// DayResolver resolves the computed fields of Day.
type DayResolver struct{ *Resolver }

func (r *Resolver) Query() *QueryResolver       { return &QueryResolver{r} }
func (r *Resolver) Mutation() *MutationResolver { return &MutationResolver{r} }
func (r *Resolver) Day() *DayResolver           { return &DayResolver{r} }
