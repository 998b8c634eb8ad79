// Package daycache keeps a Redis copy of day records and serves it when
// PostgreSQL is unavailable.
package daycache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcal-backend/internal/domain"
)

var errMiss = errors.New("cache miss")

type dayRepo interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, error)
	GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error)
	Upsert(ctx context.Context, day *domain.DayRecord) (*domain.DayRecord, error)
}

type kv interface {
	HSet(ctx context.Context, key string, fields map[string][]byte, ttl time.Duration) error
	HGet(ctx context.Context, key, field string) ([]byte, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Store decorates a day repository. Writes go to the primary first and are
// then copied to the cache. Reads fall back to the cache only on storage
// failures; domain errors such as ErrNotFound pass through.
type Store struct {
	primary dayRepo
	cache   kv
	ttl     time.Duration
	log     *slog.Logger
}

// New creates a caching Store.
func New(primary dayRepo, cache kv, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		primary: primary,
		cache:   cache,
		ttl:     ttl,
		log:     logger.With("adapter", "daycache"),
	}
}

// Get reads one record.
func (s *Store) Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, error) {
	day, err := s.primary.Get(ctx, userID, date)
	if err == nil {
		s.put(ctx, userID, day)
		return day, nil
	}
	if !isStorageFailure(err) {
		return nil, err
	}

	raw, cacheErr := s.cache.HGet(ctx, userKey(userID), date)
	if errors.Is(cacheErr, errMiss) {
		return nil, err
	}
	if cacheErr != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.String("error", cacheErr.Error()))
		return nil, err
	}

	cached, decodeErr := decode(raw)
	if decodeErr != nil {
		s.log.WarnContext(ctx, "cache entry corrupt", slog.String("date", date), slog.String("error", decodeErr.Error()))
		return nil, err
	}

	s.log.WarnContext(ctx, "serving day from cache",
		slog.String("user_id", userID.String()),
		slog.String("date", date),
		slog.String("primary_error", err.Error()),
	)
	return cached, nil
}

// GetRange reads records with from <= date <= to.
func (s *Store) GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error) {
	days, err := s.primary.GetRange(ctx, userID, from, to)
	if err == nil {
		s.put(ctx, userID, days...)
		return days, nil
	}
	if !isStorageFailure(err) {
		return nil, err
	}

	all, cacheErr := s.cache.HGetAll(ctx, userKey(userID))
	if cacheErr != nil {
		s.log.WarnContext(ctx, "cache read failed", slog.String("error", cacheErr.Error()))
		return nil, err
	}
	if len(all) == 0 {
		return nil, err
	}

	out := make([]*domain.DayRecord, 0)
	for date, raw := range all {
		if date < from || date > to {
			continue
		}
		day, decodeErr := decode([]byte(raw))
		if decodeErr != nil {
			s.log.WarnContext(ctx, "cache entry corrupt", slog.String("date", date), slog.String("error", decodeErr.Error()))
			continue
		}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	s.log.WarnContext(ctx, "serving day range from cache",
		slog.String("user_id", userID.String()),
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("count", len(out)),
		slog.String("primary_error", err.Error()),
	)
	return out, nil
}

// Upsert writes to the primary and then refreshes the cached copy.
// A failed primary write is returned as is; nothing is cached.
func (s *Store) Upsert(ctx context.Context, day *domain.DayRecord) (*domain.DayRecord, error) {
	saved, err := s.primary.Upsert(ctx, day)
	if err != nil {
		return nil, err
	}
	s.put(ctx, day.UserID, saved)
	return saved, nil
}

func (s *Store) put(ctx context.Context, userID uuid.UUID, days ...*domain.DayRecord) {
	if len(days) == 0 {
		return
	}

	fields := make(map[string][]byte, len(days))
	for _, d := range days {
		raw, err := encode(d)
		if err != nil {
			s.log.WarnContext(ctx, "cache encode failed", slog.String("date", d.Date), slog.String("error", err.Error()))
			continue
		}
		fields[d.Date] = raw
	}

	if err := s.cache.HSet(ctx, userKey(userID), fields, s.ttl); err != nil {
		s.log.WarnContext(ctx, "cache write failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func userKey(userID uuid.UUID) string {
	return "postcal:days:" + userID.String()
}

// isStorageFailure reports whether err is an infrastructure failure rather
// than a domain answer from the primary store.
func isStorageFailure(err error) bool {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Wire format
// ---------------------------------------------------------------------------

type cachedDay struct {
	UserID    uuid.UUID          `json:"userId"`
	Date      string             `json:"date"`
	Status    domain.Status      `json:"status"`
	Topic     string             `json:"topic"`
	Notes     []string           `json:"notes"`
	FinalText string             `json:"finalText"`
	Format    *domain.PostFormat `json:"format,omitempty"`
	Rule      *domain.PostRule   `json:"rule,omitempty"`
	MatrixRef *cachedRef         `json:"matrixRef,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type cachedRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func encode(d *domain.DayRecord) ([]byte, error) {
	c := cachedDay{
		UserID:    d.UserID,
		Date:      d.Date,
		Status:    d.Status,
		Topic:     d.Topic,
		Notes:     d.Notes,
		FinalText: d.FinalText,
		Format:    d.Format,
		Rule:      d.Rule,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.MatrixRef != nil {
		c.MatrixRef = &cachedRef{Row: d.MatrixRef.Row, Col: d.MatrixRef.Col}
	}
	return json.Marshal(c)
}

func decode(raw []byte) (*domain.DayRecord, error) {
	var c cachedDay
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode cached day: %w", err)
	}
	if !c.Status.IsValid() {
		return nil, fmt.Errorf("decode cached day: invalid status %q", c.Status)
	}

	d := &domain.DayRecord{
		UserID:    c.UserID,
		Date:      c.Date,
		Status:    c.Status,
		Topic:     c.Topic,
		Notes:     c.Notes,
		FinalText: c.FinalText,
		Format:    c.Format,
		Rule:      c.Rule,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if d.Notes == nil {
		d.Notes = []string{}
	}
	if c.MatrixRef != nil {
		d.MatrixRef = &domain.MatrixRef{Row: c.MatrixRef.Row, Col: c.MatrixRef.Col}
	}
	return d, nil
}
