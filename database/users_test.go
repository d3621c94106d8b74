package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	t.Run("New username is stored", func(t *testing.T) {
		id, err := repo.CreateUser("alice", "hash-a")
		require.NoError(t, err)
		assert.Positive(t, id)

		user, err := repo.GetUserByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "hash-a", user.PasswordHash)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("Duplicate username is rejected and first row kept", func(t *testing.T) {
		_, err := repo.CreateUser("alice", "hash-b")
		assert.ErrorIs(t, err, ErrDuplicateUsername)

		user, err := repo.GetUserByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, "hash-a", user.PasswordHash)

		users, err := repo.ListUsers()
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Usernames are case sensitive", func(t *testing.T) {
		_, err := repo.CreateUser("Alice", "hash-c")
		assert.NoError(t, err)
	})
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	user, err := repo.GetUserByUsername("nobody")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	users, err := repo.ListUsers()
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := repo.CreateUser(name, "secret-hash")
		require.NoError(t, err)
	}

	users, err = repo.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
	assert.Equal(t, "bob", users[2].Username)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash, "listing must not load hashes")
	}
}
