// Package dataloader provides per-request DataLoaders for the GraphQL
// transport. Loaders read repositories directly; every key is a user ID, so
// a loader only ever returns the caller's own data.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type matrixRepo interface {
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Matrix, error)
}

// Repos holds the repositories the loaders read from.
type Repos struct {
	Matrix matrixRepo
}

// Loaders is the set of loaders for one request.
type Loaders struct {
	// MatrixByUserID resolves to nil for a user who never saved a matrix.
	MatrixByUserID *dataloader.Loader[uuid.UUID, *domain.Matrix]
}

// NewLoaders must be called per request: loaders cache what they load.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		MatrixByUserID: newLoader(newMatrixBatchFn(repos.Matrix)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func newMatrixBatchFn(repo matrixRepo) dataloader.BatchFunc[uuid.UUID, *domain.Matrix] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Matrix] {
		matrices, err := repo.GetByUserIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Matrix], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Matrix]{Error: err}
			}
			return results
		}

		byUser := make(map[uuid.UUID]*domain.Matrix, len(matrices))
		for _, m := range matrices {
			byUser[m.UserID] = m
		}

		results := make([]*dataloader.Result[*domain.Matrix], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Matrix]{Data: byUser[key]}
		}
		return results
	}
}

type contextKey struct{}

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the request's Loaders, or nil outside the middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(contextKey{}).(*Loaders)
	return l
}
