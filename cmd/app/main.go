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

	"purchasing/cmd"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger, zl, err := logging.New(logging.Options{
		Level:   configs.LogLevel,
		Format:  configs.LogFormat,
		Service: "purchasing",
	})
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := postgres.BuildDSN(configs.ConnectionSettings())
	if err != nil {
		return err
	}
	db, err := postgres.Open(ctx, dsn, logger)
	if err != nil {
		return err
	}
	if configs.DBAutoMigrate {
		err = postgres.AutoMigrate(db)
	} else {
		err = postgres.Migrate(db)
	}
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Warn("closing broker", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := app.CreateRouter()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
