package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/benx421/easydinar/internal/auth"
	"github.com/benx421/easydinar/internal/config"
	"github.com/benx421/easydinar/internal/db"
	"github.com/benx421/easydinar/internal/exchange"
	"github.com/benx421/easydinar/internal/handlers"
	"github.com/benx421/easydinar/internal/mail"
	"github.com/benx421/easydinar/internal/otp"
	"github.com/benx421/easydinar/internal/repository"
	"github.com/benx421/easydinar/internal/repository/memory"
	"github.com/benx421/easydinar/internal/service"
	"github.com/benx421/easydinar/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting easydinar api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"storage", cfg.Database.Driver,
		"revocation_backend", cfg.Auth.RevocationBackend,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to flush traces", "error", err)
		}
	}()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	revocations, closeRevocations, err := openRevocationStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRevocations()

	verifier := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	codec := auth.NewJWTCodec([]byte(cfg.Auth.JWTSecret), time.Now)

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		return err
	}

	sessions := service.NewSessionService(
		store.Users(),
		verifier,
		codec,
		revocations,
		mailer,
		logger,
		service.SessionOptions{
			PasswordResetURL: cfg.Auth.PasswordResetURL,
			SessionTTL:       cfg.Auth.SessionTTL,
			ResetTokenTTL:    cfg.Auth.ResetTokenTTL,
			MailTimeout:      cfg.App.MailTimeout,
		},
	)

	directory := service.NewDirectoryService(store.Locations(), logger)
	if err := seedDirectory(ctx, directory, cfg.Directory.SeedFile); err != nil {
		return err
	}

	otpClient := &http.Client{Timeout: cfg.TwoFactor.Timeout}
	rateClient := &http.Client{Timeout: cfg.Exchange.Timeout}
	handler := handlers.NewHandler(handlers.Services{
		Ledger:       service.NewLedgerService(store, logger, cfg.App.AccountNumberAttempts),
		Transactions: service.NewTransactionService(store, logger),
		Sessions:     sessions,
		TwoFactor:    service.NewTwoFactorService(store.Users(), otp.NewTwilioVerify(cfg.TwoFactor, otpClient), logger, cfg.TwoFactor.Timeout),
		Users:        service.NewUserService(store.Users(), verifier, logger),
		Exchange:     service.NewExchangeService(exchange.NewRateAPI(cfg.Exchange, rateClient), logger, cfg.Exchange.Timeout),
		Directory:    directory,
		Health:       store,
	}, logger)

	router, err := handlers.NewRouter(handler, sessions, store.Idempotency(), logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func newMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail.Host == "" {
		logger.Warn("no smtp relay configured, password reset emails are dropped")
		return service.NewLogMailer(logger), nil
	}
	mailer, err := mail.NewSMTPMailer(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("configure mailer: %w", err)
	}
	return mailer, nil
}

func seedDirectory(ctx context.Context, directory *service.DirectoryService, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open branch directory seed: %w", err)
	}
	defer f.Close()

	if _, err := directory.ImportGeoJSON(ctx, f); err != nil {
		return fmt.Errorf("import branch directory: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.Store, func(), error) {
	if cfg.Database.Driver == "memory" {
		logger.Warn("using in-memory storage, data is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			_ = database.Close()
			return nil, nil, err
		}
	}

	closeDB := func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	return repository.NewPostgresStore(database), closeDB, nil
}

func openRevocationStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (auth.RevocationStore, func(), error) {
	if cfg.Auth.RevocationBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}

		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}
		return auth.NewRedisRevocationStore(client, cfg.Redis.KeyPrefix, time.Now), closeClient, nil
	}

	revocations := auth.NewMemoryRevocationStore(time.Now)
	go revocations.Run(ctx, cfg.Auth.RevocationSweepInterval, logger)
	return revocations, func() {}, nil
}
