package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/user"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// SeedUser is a demo account created by cmd/seed.
type SeedUser struct {
	Username string
	Password string
}

// DemoUsers are two accounts for checking that records stay private to their owner.
var DemoUsers = []SeedUser{
	{Username: "usuario1", Password: "senha123"},
	{Username: "usuario2", Password: "senha123"},
}

// SeedUsers creates the users that do not exist yet and returns their names.
// Existing users keep their password.
func SeedUsers(ctx context.Context, users ports.UserRepository, seeds []SeedUser, logger *slog.Logger) ([]string, error) {
	created := make([]string, 0, len(seeds))
	for _, s := range seeds {
		_, err := users.GetByUsername(ctx, s.Username)
		if err == nil {
			logger.InfoContext(ctx, "user already exists", "username", s.Username)
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return created, fmt.Errorf("look up %s: %w", s.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		u, err := user.NewUser(kernel.NewUUID(), s.Username, string(hash))
		if err != nil {
			return created, err
		}
		if err = users.Add(ctx, u); err != nil {
			return created, fmt.Errorf("create %s: %w", s.Username, err)
		}

		logger.InfoContext(ctx, "user created", "username", s.Username)
		created = append(created, s.Username)
	}
	return created, nil
}
