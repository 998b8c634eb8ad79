// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const insertAuditRecord = `INSERT INTO audit_log (id, user_id, entity_type, entity_key, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

var auditColumns = []string{"id", "user_id", "entity_type", "entity_key", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. A zero ID is replaced with a new one.
// Satisfies the auditLogger interface of every service.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertAuditRecord,
		record.ID, record.UserID, string(record.EntityType), record.EntityKey,
		string(record.Action), changesJSON, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history of one entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, userID uuid.UUID, entityType domain.EntityType, entityKey string, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, postgres.Builder().
		Select(auditColumns...).
		From("audit_log").
		Where(squirrel.Eq{"user_id": userID, "entity_type": string(entityType), "entity_key": entityKey}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// GetByUser returns a page of the user's audit log, newest first.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	return r.list(ctx, postgres.Builder().
		Select(auditColumns...).
		From("audit_log").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder) ([]domain.AuditRecord, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_log query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit_log: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanAuditRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_log: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanAuditRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec                domain.AuditRecord
		entityType, action string
		changes            []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityKey, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}

	return rec, nil
}
