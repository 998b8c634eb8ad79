package integration

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

var errNotConfigured = fmt.Errorf("%w: linkedin integration is not configured", domain.ErrNotConnected)

// AuthorizeURL returns the LinkedIn consent URL with a fresh state value.
func (s *Service) AuthorizeURL(ctx context.Context) (*Authorization, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.configured {
		return nil, errNotConfigured
	}

	state := uuid.NewString()
	return &Authorization{
		URL:   s.oauth.AuthorizationURL(state),
		State: state,
	}, nil
}

// Connect exchanges the authorization code and stores the resulting
// credential, replacing any previous one.
func (s *Service) Connect(ctx context.Context, code string) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "required")
	}
	if !s.configured {
		return nil, errNotConfigured
	}

	grant, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	memberID, err := s.oauth.MemberID(ctx, grant.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("resolve member: %w", err)
	}

	now := s.now()
	cred := &domain.Credential{
		UserID:      userID,
		Provider:    domain.ProviderLinkedIn,
		AccessToken: grant.AccessToken,
		MemberID:    memberID,
		ConnectedAt: now,
		UpdatedAt:   now,
	}
	if grant.ExpiresIn > 0 {
		expiresAt := now.Add(grant.ExpiresIn)
		cred.ExpiresAt = &expiresAt
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if saveErr := s.creds.Save(txCtx, cred); saveErr != nil {
			return fmt.Errorf("save credential: %w", saveErr)
		}

		changes := map[string]any{"member_id": map[string]any{"new": memberID}}
		if cred.ExpiresAt != nil {
			changes["expires_at"] = map[string]any{"new": cred.ExpiresAt.UTC().Format(time.RFC3339)}
		}
		if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeIntegration,
			EntityKey:  domain.ProviderLinkedIn,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		}); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "linkedin connected",
		slog.String("user_id", userID.String()),
		slog.String("member_id", memberID),
	)

	connectedAt := cred.ConnectedAt
	return &Status{
		Configured:  true,
		Connected:   true,
		MemberID:    memberID,
		ConnectedAt: &connectedAt,
		ExpiresAt:   cred.ExpiresAt,
	}, nil
}
