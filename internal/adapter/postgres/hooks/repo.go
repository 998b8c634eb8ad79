// Package hooks implements the hooks repository using PostgreSQL.
package hooks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const (
	selectHooks = `SELECT user_id, items, updated_at FROM hooks WHERE user_id = $1`

	upsertHooks = `INSERT INTO hooks (user_id, items, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at`
)

// Repo provides hooks persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new hooks repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the user's hooks or domain.ErrNotFound when none were saved.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Hooks, error) {
	var (
		h     domain.Hooks
		items []byte
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, selectHooks, userID).
		Scan(&h.UserID, &items, &h.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "hooks", userID.String())
	}

	if err := json.Unmarshal(items, &h.Items); err != nil {
		return nil, fmt.Errorf("hooks %s unmarshal items: %w", userID, err)
	}
	if h.Items == nil {
		h.Items = []string{}
	}
	return &h, nil
}

// Save replaces the user's whole list.
func (r *Repo) Save(ctx context.Context, h *domain.Hooks) error {
	list := h.Items
	if list == nil {
		list = []string{}
	}
	items, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("hooks marshal items: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertHooks, h.UserID, items, h.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "hooks", h.UserID.String())
	}
	return nil
}
