package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/RahatGithub/QBoard/internal/catalog"
	"github.com/RahatGithub/QBoard/internal/config"
	"github.com/RahatGithub/QBoard/internal/dashboard"
	"github.com/RahatGithub/QBoard/internal/employees"
	"github.com/RahatGithub/QBoard/internal/httpapi"
	"github.com/RahatGithub/QBoard/internal/obs"
	"github.com/RahatGithub/QBoard/internal/orders"
	"github.com/RahatGithub/QBoard/internal/seeder"
	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/internal/users"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("QBoard API Server\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	cfg := config.Load()

	log, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	db, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	orderSvc := orders.NewService(db, log)
	userSvc := users.NewService(db, log)

	app := httpapi.NewApp(
		catalog.NewService(db, log),
		orderSvc,
		userSvc,
		employees.NewService(db, log),
		dashboard.NewService(db),
		seeder.New(db, orderSvc, userSvc, log),
		log,
	)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: app.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("qboard listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("db", cfg.DBPath),
			zap.String("driver", storage.DriverName),
			zap.String("version", version),
		)
		errChan <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
