package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// SeedDay inserts a day record for a fresh user and returns it.
// Tables carry no users foreign key, so a random user id is enough.
func SeedDay(t *testing.T, pool *pgxpool.Pool, date string, status domain.Status) domain.DayRecord {
	t.Helper()
	return SeedDayForUser(t, pool, uuid.New(), date, status)
}

// SeedDayForUser inserts a day record with a topic and a single note.
func SeedDayForUser(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date string, status domain.Status) domain.DayRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	day := domain.DayRecord{
		UserID:    userID,
		Date:      date,
		Status:    status,
		Topic:     "Seeded topic " + date,
		Notes:     []string{"seeded note"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	notes, err := json.Marshal(day.Notes)
	if err != nil {
		t.Fatalf("testhelper: SeedDay marshal notes: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO day_records (user_id, date, status, topic, notes, final_text, created_at, updated_at)
		 VALUES ($1, $2::date, $3, $4, $5, '', $6, $7)`,
		day.UserID, date, string(day.Status), day.Topic, notes, day.CreatedAt, day.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDay insert: %v", err)
	}

	return day
}

// SeedMatrix stores the default matrix for a fresh user with one filled cell.
func SeedMatrix(t *testing.T, pool *pgxpool.Pool) *domain.Matrix {
	t.Helper()
	ctx := context.Background()

	m := domain.DefaultMatrix(uuid.New())
	m.Cells[0][0] = "Seeded idea"
	m.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	cols, _ := json.Marshal(m.ColHeaders)
	rows, _ := json.Marshal(m.RowHeaders)
	cells, _ := json.Marshal(m.Cells)

	_, err := pool.Exec(ctx,
		`INSERT INTO matrices (user_id, col_headers, row_headers, cells, cell_usage, updated_at)
		 VALUES ($1, $2, $3, $4, '{}'::jsonb, $5)`,
		m.UserID, cols, rows, cells, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatrix insert: %v", err)
	}

	return m
}
