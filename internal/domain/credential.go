package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProviderLinkedIn is the only publishing network supported today.
const ProviderLinkedIn = "linkedin"

// Credential is a stored OAuth grant for a publishing network.
// AccessToken is plaintext in memory and encrypted at rest.
type Credential struct {
	UserID      uuid.UUID
	Provider    string
	AccessToken string
	MemberID    string
	ExpiresAt   *time.Time
	ConnectedAt time.Time
	UpdatedAt   time.Time
}

// IsExpired reports whether the grant has an expiry in the past.
func (c *Credential) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}
