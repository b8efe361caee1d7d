// Package user models the accounts that own orders and catalog entries.
package user

import (
	"errors"
	"strings"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// User is an account. The password is kept only as a bcrypt hash.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string

	guard guard.ConstructorGuard
}

func NewUser(id kernel.UUID, username, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)

	var nameErr, hashErr error
	if username == "" {
		nameErr = errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(id.Validate(), nameErr, hashErr); err != nil {
		return nil, err
	}
	return &User{id: id, username: username, passwordHash: passwordHash, guard: guard.NewConstructorGuard()}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Username() string { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
