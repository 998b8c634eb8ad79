package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// GetHooks returns the user's hooks in saved order. A user who never saved
// any gets an empty list.
func (s *Service) GetHooks(ctx context.Context) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	h, err := s.hooks.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hooks: %w", err)
	}
	if h.Items == nil {
		return []string{}, nil
	}
	return h.Items, nil
}
