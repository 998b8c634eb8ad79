// Package ctxutil carries per-request values through a calendar request:
// the authenticated owner of the calendar and the request id used to
// correlate log lines.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	ownerKey     struct{}
	requestIDKey struct{}
)

// WithUserID marks id as the calendar owner for the rest of the request.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, id)
}

// UserIDFromCtx returns the calendar owner. A missing value and uuid.Nil
// both report false, so handlers can treat them as unauthenticated.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	if id, ok := ctx.Value(ownerKey{}).(uuid.UUID); ok && id != uuid.Nil {
		return id, true
	}
	return uuid.Nil, false
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
