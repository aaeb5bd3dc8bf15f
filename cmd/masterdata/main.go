package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/accounting"
	"github.com/AlenaMolokova/masterdata/internal/config"
	"github.com/AlenaMolokova/masterdata/internal/logger"
	"github.com/AlenaMolokova/masterdata/internal/metrics"
	"github.com/AlenaMolokova/masterdata/internal/router"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/usecase"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func applyMigrations(databaseURI, migrationsPath string, log *zap.Logger) error {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Info("database migrations applied")
	return nil
}

func revocationStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.RevocationStore, func(), error) {
	if cfg.RedisURL == "" {
		log.Info("session revocation kept in memory")
		return session.NewMemoryStore(), func() {}, nil
	}
	client, err := session.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("session revocation stored in redis")
	return session.NewRedisStore(client), func() { client.Close() }, nil
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if err := applyMigrations(cfg.DatabaseURI, cfg.MigrationsPath, log); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	db, err := storage.Open(ctx, cfg.DatabaseURI)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := storage.NewStorage(db)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	revocations, closeStore, err := revocationStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var accountingClient usecase.AccountingClient
	if cfg.AccountingEnabled() {
		accountingClient = accounting.NewClient(cfg.AccountingAPIURL, cfg.AccountingAPIKey,
			cfg.AccountingTimeout, cfg.AccountingRateLimit, log.Named("accounting"))
	} else {
		log.Warn("ACCOUNTING_API_URL not set, accounting routes are disabled")
	}

	r := router.SetupRoutes(store, router.Options{
		Sessions:     session.NewManager(cfg.SessionSecret, cfg.SessionTTL, revocations),
		Accounting:   accountingClient,
		Metrics:      metrics.New(),
		SecureCookie: cfg.SecureCookie,
		Log:          log,
	})

	srv := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting masterdata server", zap.String("address", cfg.RunAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zlog); err != nil {
		zlog.Fatal("masterdata stopped", zap.Error(err))
	}
}
