package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "digital-weather-test-*")
	require.NoError(t, err)

	store, err := Open(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)

	err = store.EnsureSchema()
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()

	store, cleanup := setupTestStore(t)
	return NewRepository(store), cleanup
}
