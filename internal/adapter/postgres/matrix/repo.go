// Package matrix implements the content matrix repository using PostgreSQL.
// Headers, cells and the usage ledger are stored as JSONB documents.
package matrix

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const (
	selectMatrix = `SELECT user_id, col_headers, row_headers, cells, cell_usage, updated_at
FROM matrices WHERE user_id = $1`

	selectMatrices = `SELECT user_id, col_headers, row_headers, cells, cell_usage, updated_at
FROM matrices WHERE user_id = ANY($1)`

	// selectMatrixForUpdate must run inside a transaction.
	selectMatrixForUpdate = selectMatrix + ` FOR UPDATE`

	upsertMatrix = `INSERT INTO matrices (user_id, col_headers, row_headers, cells, cell_usage, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
	col_headers = EXCLUDED.col_headers,
	row_headers = EXCLUDED.row_headers,
	cells       = EXCLUDED.cells,
	cell_usage  = EXCLUDED.cell_usage,
	updated_at  = EXCLUDED.updated_at`
)

// Repo provides matrix persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new matrix repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the user's matrix or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Matrix, error) {
	return r.get(ctx, selectMatrix, userID)
}

// GetForUpdate is Get with the row locked until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Matrix, error) {
	return r.get(ctx, selectMatrixForUpdate, userID)
}

// GetByUserIDs returns the stored matrices of the given users in no particular
// order. Users without a matrix are simply absent from the result.
func (r *Repo) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Matrix, error) {
	if len(userIDs) == 0 {
		return []*domain.Matrix{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, selectMatrices, userIDs)
	if err != nil {
		return nil, fmt.Errorf("query matrices: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.Matrix, 0, len(userIDs))
	for rows.Next() {
		m, err := scanMatrix(rows)
		if err != nil {
			return nil, fmt.Errorf("scan matrix: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matrices: %w", err)
	}
	return out, nil
}

// Save inserts or replaces the user's matrix.
func (r *Repo) Save(ctx context.Context, m *domain.Matrix) error {
	cols, err := json.Marshal(m.ColHeaders)
	if err != nil {
		return fmt.Errorf("matrix marshal col_headers: %w", err)
	}
	rows, err := json.Marshal(m.RowHeaders)
	if err != nil {
		return fmt.Errorf("matrix marshal row_headers: %w", err)
	}
	cells, err := json.Marshal(m.Cells)
	if err != nil {
		return fmt.Errorf("matrix marshal cells: %w", err)
	}
	usage := m.CellUsage
	if usage == nil {
		usage = map[string]string{}
	}
	usageJSON, err := json.Marshal(usage)
	if err != nil {
		return fmt.Errorf("matrix marshal cell_usage: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertMatrix,
		m.UserID, cols, rows, cells, usageJSON, m.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "matrix", m.UserID.String())
	}
	return nil
}

func (r *Repo) get(ctx context.Context, query string, userID uuid.UUID) (*domain.Matrix, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, userID)
	m, err := scanMatrix(row)
	if err != nil {
		return nil, postgres.MapError(err, "matrix", userID.String())
	}
	return m, nil
}

func scanMatrix(row pgx.Row) (*domain.Matrix, error) {
	var (
		m                        domain.Matrix
		cols, rows, cells, usage []byte
	)
	if err := row.Scan(&m.UserID, &cols, &rows, &cells, &usage, &m.UpdatedAt); err != nil {
		return nil, err
	}

	for name, doc := range map[string]struct {
		raw  []byte
		dest any
	}{
		"col_headers": {cols, &m.ColHeaders},
		"row_headers": {rows, &m.RowHeaders},
		"cells":       {cells, &m.Cells},
		"cell_usage":  {usage, &m.CellUsage},
	} {
		if err := json.Unmarshal(doc.raw, doc.dest); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", name, err)
		}
	}
	if m.CellUsage == nil {
		m.CellUsage = map[string]string{}
	}

	return &m, nil
}
