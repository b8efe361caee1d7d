package user_test

import (
	"testing"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/user"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), " usuario1 ", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, u.Validate())
	assert.Equal(t, "usuario1", u.Username())

	_, err = user.NewUser(kernel.NewUUID(), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}
