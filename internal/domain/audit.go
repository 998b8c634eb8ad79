package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hooks is the user's ordered list of reusable opening lines.
type Hooks struct {
	UserID    uuid.UUID
	Items     []string
	UpdatedAt time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityKey  string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
