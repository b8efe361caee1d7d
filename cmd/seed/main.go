package main

import (
	"context"
	"fmt"
	"os"

	"purchasing/cmd"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/userrepo"
	"purchasing/internal/pkg/logging"
)

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
	logger, zl, err := logging.New(logging.Options{Level: configs.LogLevel, Format: logging.FormatConsole, Service: "purchasing-seed"})
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
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

	created, err := cmd.SeedUsers(ctx, userrepo.NewGormUserRepository(db), cmd.DemoUsers, logger)
	if err != nil {
		return err
	}
	logger.Info("seed finished", "created", len(created))
	return nil
}
