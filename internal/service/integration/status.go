package integration

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// Status reports whether the user has a usable LinkedIn credential.
// An expired credential counts as not connected.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st := &Status{Configured: s.configured}

	cred, err := s.creds.Get(ctx, userID, domain.ProviderLinkedIn)
	if errors.Is(err, domain.ErrNotFound) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}

	connectedAt := cred.ConnectedAt
	st.ConnectedAt = &connectedAt
	st.ExpiresAt = cred.ExpiresAt
	st.MemberID = cred.MemberID
	st.Connected = !cred.IsExpired(s.now())
	return st, nil
}
