package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/pkg/ctxutil"
)

// Share pushes the final text of a posted day to LinkedIn. The day record
// is never modified, whether the network accepts the post or not.
func (s *Service) Share(ctx context.Context, date string) (*ShareResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	day, _, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if !day.IsLocked() {
		return nil, &domain.StageIncompleteError{Status: day.Status, Field: "status"}
	}
	if strings.TrimSpace(day.FinalText) == "" {
		return nil, &domain.StageIncompleteError{Status: day.Status, Field: "finalText"}
	}

	cred, err := s.creds.Get(ctx, userID, domain.ProviderLinkedIn)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotConnected
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	if cred.IsExpired(s.now()) {
		return nil, fmt.Errorf("%w: linkedin token expired", domain.ErrNotConnected)
	}

	postID, err := s.publisher.Publish(ctx, cred.AccessToken, cred.MemberID, day.FinalText)
	if err != nil {
		s.log.WarnContext(ctx, "share failed",
			slog.String("user_id", userID.String()),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logAudit(ctx, userID, date, domain.AuditActionShare, map[string]any{
		"provider": domain.ProviderLinkedIn,
		"post_id":  postID,
	})

	s.log.InfoContext(ctx, "day shared",
		slog.String("user_id", userID.String()),
		slog.String("date", date),
		slog.String("post_id", postID),
	)

	return &ShareResult{Day: day, PostID: postID}, nil
}
