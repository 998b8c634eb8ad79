package resolver

import (
	"context"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
)

// UpdateDayInput is the GraphQL UpdateDayInput. A nil field was not sent.
// Format and Rule point to "" when the client sent an explicit null.
type UpdateDayInput struct {
	Topic     *string
	Notes     *[]string
	FinalText *string
	Format    *string
	Rule      *string
}

func (r *MutationResolver) UpdateDay(ctx context.Context, date string, input UpdateDayInput) (*workflow.Result, error) {
	in := workflow.UpdateDayInput{
		Topic:     input.Topic,
		Notes:     input.Notes,
		FinalText: input.FinalText,
	}
	if input.Format != nil {
		f := domain.PostFormat(*input.Format)
		in.Format = &f
	}
	if input.Rule != nil {
		rule := domain.PostRule(*input.Rule)
		in.Rule = &rule
	}
	return r.days.UpdateDay(ctx, date, in)
}

func (r *MutationResolver) AdvanceDay(ctx context.Context, date string) (*workflow.Result, error) {
	return r.days.Advance(ctx, date)
}

func (r *MutationResolver) RetreatDay(ctx context.Context, date string) (*workflow.Result, error) {
	return r.days.Retreat(ctx, date)
}

func (r *MutationResolver) PublishDay(ctx context.Context, date string) (*workflow.Result, error) {
	return r.days.Publish(ctx, date)
}

func (r *MutationResolver) SelectFromMatrix(ctx context.Context, date string, row, col int) (*workflow.Result, error) {
	return r.days.SelectFromMatrix(ctx, date, row, col)
}

func (r *MutationResolver) DereferenceDay(ctx context.Context, date string) (*workflow.Result, error) {
	return r.days.Dereference(ctx, date)
}
