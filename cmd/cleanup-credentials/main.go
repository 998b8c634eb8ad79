// Command cleanup-credentials deletes stored LinkedIn grants whose access
// token has expired. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/postcal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/postcal-backend/internal/adapter/postgres/credential"
	"github.com/heartmarshall/postcal-backend/internal/app"
	"github.com/heartmarshall/postcal-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	cipher, err := credential.NewCipher(cfg.Credentials.EncryptionSecret)
	if err != nil {
		logger.Error("credential cipher", slog.String("error", err.Error()))
		os.Exit(1)
	}

	now := time.Now()
	deleted, err := credential.New(pool, cipher).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("cleanup credentials failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expired credentials deleted",
		slog.Int64("deleted", deleted),
		slog.Time("before", now),
	)
}
