package ports

import (
	"context"

	"purchasing/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, u *user.User) error

	// GetByUsername returns errs.ObjectNotFoundError for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
