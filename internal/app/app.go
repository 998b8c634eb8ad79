// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/postcal-backend/internal/adapter/cache/daycache"
	"github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/postcal-backend/internal/adapter/postgres/audit"
	credentialrepo "github.com/heartmarshall/postcal-backend/internal/adapter/postgres/credential"
	dayrepo "github.com/heartmarshall/postcal-backend/internal/adapter/postgres/day"
	hooksrepo "github.com/heartmarshall/postcal-backend/internal/adapter/postgres/hooks"
	matrixrepo "github.com/heartmarshall/postcal-backend/internal/adapter/postgres/matrix"
	"github.com/heartmarshall/postcal-backend/internal/adapter/provider/linkedin"
	"github.com/heartmarshall/postcal-backend/internal/auth"
	"github.com/heartmarshall/postcal-backend/internal/config"
	"github.com/heartmarshall/postcal-backend/internal/domain"
	"github.com/heartmarshall/postcal-backend/internal/service/history"
	"github.com/heartmarshall/postcal-backend/internal/service/hooks"
	"github.com/heartmarshall/postcal-backend/internal/service/integration"
	"github.com/heartmarshall/postcal-backend/internal/service/matrix"
	"github.com/heartmarshall/postcal-backend/internal/service/workflow"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/postcal-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/postcal-backend/internal/transport/middleware"
	"github.com/heartmarshall/postcal-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when the cache is enabled), builds the services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
		slog.Bool("linkedin_enabled", cfg.LinkedIn.Enabled()),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// ----- Repositories -----

	cipher, err := credentialrepo.NewCipher(cfg.Credentials.EncryptionSecret)
	if err != nil {
		return fmt.Errorf("credential cipher: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	audits := auditrepo.New(pool)
	creds := credentialrepo.New(pool, cipher)
	matrices := matrixrepo.New(pool)
	hookLists := hooksrepo.New(pool)

	days := dayrepo.New(pool)
	var (
		dayStore    dayStorage = days
		cachePinger pinger
	)
	if cfg.Cache.Enabled {
		kv, err := daycache.NewRedisKV(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("connect cache: %w", err)
		}
		defer kv.Close()
		dayStore = daycache.New(days, kv, cfg.Cache.TTL, logger)
		cachePinger = kv
	}

	// ----- Services -----

	linkedinClient := linkedin.NewClient(cfg.LinkedIn, logger)

	matrixSvc := matrix.NewService(logger, matrices, audits, txm)
	hooksSvc := hooks.NewService(logger, hookLists, audits, txm)
	integrationSvc := integration.NewService(logger, creds, linkedinClient, audits, txm, cfg.LinkedIn.Enabled())
	workflowSvc := workflow.NewService(logger, dayStore, matrixSvc, matrixSvc, audits, linkedinClient, creds)
	historySvc := history.NewService(logger, audits)

	// ----- Transport -----

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	gqlResolver := resolver.NewResolver(logger, workflowSvc, matrixSvc, hooksSvc, historySvc)
	gqlHandler := dataloader.Middleware(&dataloader.Repos{Matrix: matrices})(graphql.NewHandler(gqlResolver, logger))

	limiter := middleware.NewRateLimiter(rateLimitCleanupInterval)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
		Days:        rest.NewDayHandler(workflowSvc, logger),
		Matrix:      rest.NewMatrixHandler(matrixSvc, logger),
		Hooks:       rest.NewHooksHandler(hooksSvc, logger),
		Integration: rest.NewIntegrationHandler(integrationSvc, logger),
		History:     rest.NewHistoryHandler(historySvc, logger),
		GraphQL:     gqlHandler,
	}, limiter.Limit(cfg.RateLimit.SharesPerMinute))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		middleware.Auth(tokens),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// dayStorage is the PostgreSQL day repository or its Redis-backed decorator.
type dayStorage interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*domain.DayRecord, error)
	GetRange(ctx context.Context, userID uuid.UUID, from, to string) ([]*domain.DayRecord, error)
	Upsert(ctx context.Context, day *domain.DayRecord) (*domain.DayRecord, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// serve runs srv until ctx is done and then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}
