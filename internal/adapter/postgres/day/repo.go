// Package day implements the day record repository using PostgreSQL.
package day

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

const tableName = "day_records"

var columns = []string{
	"user_id",
	"to_char(date, 'YYYY-MM-DD')",
	"status",
	"topic",
	"notes",
	"final_text",
	"format",
	"rule",
	"matrix_row",
	"matrix_col",
	"created_at",
	"updated_at",
}

const upsertSuffix = `ON CONFLICT (user_id, date) DO UPDATE SET
	status     = EXCLUDED.status,
	topic      = EXCLUDED.topic,
	notes      = EXCLUDED.notes,
	final_text = EXCLUDED.final_text,
	format     = EXCLUDED.format,
	rule       = EXCLUDED.rule,
	matrix_row = EXCLUDED.matrix_row,
	matrix_col = EXCLUDED.matrix_col,
	updated_at = EXCLUDED.updated_at
RETURNING user_id, to_char(date, 'YYYY-MM-DD'), status, topic, notes, final_text,
	format, rule, matrix_row, matrix_col, created_at, updated_at`

// Repo provides day record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new day record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the record for (userID, date) or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID, "date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get day_record query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	day, err := scanDay(row)
	if err != nil {
		return nil, postgres.MapError(err, "day_record", key(userID, date))
	}
	return day, nil
}

// GetRange returns the user's records with from <= date <= to, ordered by date.
// Dates with no stored record are absent from the result.
func (r *Repo) GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build day_record range query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query day_records %s..%s: %w", from, to, err)
	}
	defer rows.Close()

	days := make([]*domain.DayRecord, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day_record: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day_records: %w", err)
	}

	return days, nil
}

// Upsert inserts the record or replaces every mutable column of the stored one.
// created_at is kept from the first insert.
func (r *Repo) Upsert(ctx context.Context, day *domain.DayRecord) (*domain.DayRecord, error) {
	notes := day.Notes
	if notes == nil {
		notes = []string{}
	}
	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("day_record marshal notes: %w", err)
	}

	var format, rule *string
	if day.Format != nil {
		s := string(*day.Format)
		format = &s
	}
	if day.Rule != nil {
		s := string(*day.Rule)
		rule = &s
	}

	var matrixRow, matrixCol *int32
	if day.MatrixRef != nil {
		mr, mc := int32(day.MatrixRef.Row), int32(day.MatrixRef.Col)
		matrixRow, matrixCol = &mr, &mc
	}

	query, args, err := postgres.Builder().
		Insert(tableName).
		Columns("user_id", "date", "status", "topic", "notes", "final_text",
			"format", "rule", "matrix_row", "matrix_col", "created_at", "updated_at").
		Values(day.UserID, day.Date, string(day.Status), day.Topic, notesJSON, day.FinalText,
			format, rule, matrixRow, matrixCol, day.CreatedAt, day.UpdatedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build day_record upsert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	saved, err := scanDay(row)
	if err != nil {
		return nil, postgres.MapError(err, "day_record", key(day.UserID, day.Date))
	}
	return saved, nil
}

func key(userID uuid.UUID, date string) string {
	return userID.String() + "/" + date
}

func scanDay(row pgx.Row) (*domain.DayRecord, error) {
	var (
		day                  domain.DayRecord
		status               string
		notesJSON            []byte
		format, rule         *string
		matrixRow, matrixCol *int32
	)

	err := row.Scan(
		&day.UserID, &day.Date, &status, &day.Topic, &notesJSON, &day.FinalText,
		&format, &rule, &matrixRow, &matrixCol, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	day.Status = domain.Status(status)

	day.Notes = []string{}
	if len(notesJSON) > 0 {
		if err := json.Unmarshal(notesJSON, &day.Notes); err != nil {
			return nil, fmt.Errorf("unmarshal notes: %w", err)
		}
		if day.Notes == nil {
			day.Notes = []string{}
		}
	}

	if format != nil {
		f := domain.PostFormat(*format)
		day.Format = &f
	}
	if rule != nil {
		pr := domain.PostRule(*rule)
		day.Rule = &pr
	}
	if matrixRow != nil && matrixCol != nil {
		day.MatrixRef = &domain.MatrixRef{Row: int(*matrixRow), Col: int(*matrixCol)}
	}

	return &day, nil
}
