package integration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/postcal-backend/internal/adapter/provider/linkedin"
	"github.com/heartmarshall/postcal-backend/internal/domain"
)

// credentialRepo defines the credential storage needed by the integration service.
type credentialRepo interface {
	Get(ctx context.Context, userID uuid.UUID, provider string) (*domain.Credential, error)
	Save(ctx context.Context, c *domain.Credential) error
	Delete(ctx context.Context, userID uuid.UUID, provider string) error
}

// oauthClient defines the LinkedIn OAuth calls needed to connect an account.
type oauthClient interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*linkedin.TokenGrant, error)
	MemberID(ctx context.Context, accessToken string) (string, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service connects and disconnects the user's LinkedIn account.
type Service struct {
	creds      credentialRepo
	oauth      oauthClient
	audit      auditLogger
	tx         txManager
	configured bool
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Integration service. When configured is false
// the OAuth client is never called and connect attempts are rejected.
func NewService(
	log *slog.Logger,
	creds credentialRepo,
	oauth oauthClient,
	audit auditLogger,
	tx txManager,
	configured bool,
) *Service {
	return &Service{
		creds:      creds,
		oauth:      oauth,
		audit:      audit,
		tx:         tx,
		configured: configured,
		log:        log.With("service", "integration"),
		now:        time.Now,
	}
}

// Status describes the user's LinkedIn connection.
type Status struct {
	Configured  bool
	Connected   bool
	MemberID    string
	ConnectedAt *time.Time
	ExpiresAt   *time.Time
}

// Authorization is the consent URL and the state value the client must
// compare against the callback.
type Authorization struct {
	URL   string
	State string
}
