// Package credential implements the publishing credential repository using
// PostgreSQL. Access tokens are encrypted before they reach the database.
package credential

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

const (
	selectCredential = `SELECT user_id, provider, access_token, member_id, expires_at, connected_at, updated_at
FROM credentials WHERE user_id = $1 AND provider = $2`

	upsertCredential = `INSERT INTO credentials (user_id, provider, access_token, member_id, expires_at, connected_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id, provider) DO UPDATE SET
	access_token = EXCLUDED.access_token,
	member_id    = EXCLUDED.member_id,
	expires_at   = EXCLUDED.expires_at,
	updated_at   = EXCLUDED.updated_at`

	deleteCredential = `DELETE FROM credentials WHERE user_id = $1 AND provider = $2`

	deleteExpired = `DELETE FROM credentials WHERE expires_at IS NOT NULL AND expires_at < $1`
)

// Repo provides encrypted credential persistence backed by PostgreSQL.
type Repo struct {
	db     postgres.Querier
	cipher *Cipher
}

// New creates a new credential repository.
func New(db postgres.Querier, cipher *Cipher) *Repo {
	return &Repo{db: db, cipher: cipher}
}

// Get returns the decrypted credential or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, provider string) (*domain.Credential, error) {
	var (
		c         domain.Credential
		encrypted string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, selectCredential, userID, provider).Scan(
		&c.UserID, &c.Provider, &encrypted, &c.MemberID, &c.ExpiresAt, &c.ConnectedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "credential", userID.String())
	}

	c.AccessToken, err = r.cipher.Decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("credential %s decrypt: %w", userID, err)
	}
	return &c, nil
}

// Save stores the credential, replacing a previous grant for the same provider.
// connected_at keeps the time of the first connection.
func (r *Repo) Save(ctx context.Context, c *domain.Credential) error {
	encrypted, err := r.cipher.Encrypt(c.AccessToken)
	if err != nil {
		return fmt.Errorf("credential %s encrypt: %w", c.UserID, err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertCredential,
		c.UserID, c.Provider, encrypted, c.MemberID, c.ExpiresAt, c.ConnectedAt, c.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "credential", c.UserID.String())
	}
	return nil
}

// Delete removes the credential. Deleting a missing credential is not an error.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, provider string) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteCredential, userID, provider)
	if err != nil {
		return postgres.MapError(err, "credential", userID.String())
	}
	return nil
}

// DeleteExpired removes every credential that expired before now and
// returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpired, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired credentials: %w", err)
	}
	return tag.RowsAffected(), nil
}
