package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/internal/config"
	"github.com/nextshift/shiftboard/pkg/api"
	"github.com/nextshift/shiftboard/pkg/clients/mailclient"
	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/postgres"
	"github.com/nextshift/shiftboard/pkg/utils/logging"
)

func main() {
	env := flag.String("env", "prod", "Environment suffix for config and log files")
	flag.Parse()

	if err := run(*env); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(env string) error {
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	store, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	if err := store.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("Database ready")

	var notifier engine.Notifier
	if cfg.GmailUserID != "" {
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		mail, err := mailclient.NewClient(ctx, oauthCfg, env, cfg.GmailUserID, cfg.GmailSender)
		if err != nil {
			return fmt.Errorf("failed to create mail client: %w", err)
		}
		notifier = mail
		logger.Info("Mail notifications enabled", zap.String("user_id", cfg.GmailUserID))
	} else {
		logger.Info("Mail notifications disabled, no gmailUserID configured")
	}

	handler := api.NewHandler(store, logger, notifier, cfg.ExportDir)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
