package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/apperror"
)

func TestNew(t *testing.T) {
	u := New("alice", "s3cret")

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "s3cret", u.Password)
	assert.Equal(t, RoleMember, u.Role)
	assert.Empty(t, u.PasswordHash)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		u := New("alice", "s3cret")
		assert.NoError(t, u.Validate(ctx))
	})

	t.Run("valid with stored hash only", func(t *testing.T) {
		u := New("alice", "s3cret")
		require.NoError(t, u.HashPassword())
		assert.NoError(t, u.Validate(ctx))
	})

	t.Run("missing username and password", func(t *testing.T) {
		u := New("", "")
		err := u.Validate(ctx)
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Fields, "username")
		assert.Contains(t, appErr.Fields, "password")
	})

	t.Run("unknown role", func(t *testing.T) {
		u := New("alice", "s3cret")
		u.Role = "owner"
		err := u.Validate(ctx)
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "role")
	})

	t.Run("negative age", func(t *testing.T) {
		u := New("alice", "s3cret")
		u.Age = -1
		err := u.Validate(ctx)
		require.Error(t, err)

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "age")
	})
}

func TestHashPassword(t *testing.T) {
	u := New("alice", "s3cret")
	require.NoError(t, u.HashPassword())

	assert.Empty(t, u.Password)
	assert.NotEmpty(t, u.PasswordHash)
	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("wrong"))

	// Without a pending password the stored hash stays as is.
	hash := u.PasswordHash
	require.NoError(t, u.HashPassword())
	assert.Equal(t, hash, u.PasswordHash)
}

func TestAddLocations(t *testing.T) {
	u := New("alice", "s3cret")
	u.Locations = []string{"Moscow"}

	u.AddLocations([]string{"Kazan", "Moscow", "", "Kazan", "Tver"})

	assert.Equal(t, []string{"Moscow", "Kazan", "Tver"}, u.Locations)
}
