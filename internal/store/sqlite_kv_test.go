package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Golem-Base/dPaste/internal/logger"
)

func newTestSQLiteStore(t *testing.T) KVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLiteKVStore(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestSQLiteKVStore_GetMissing(t *testing.T) {
	s := newTestSQLiteStore(t)

	_, ok, err := s.Get("transactions")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKVStore_SetOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Set("k", "v1"))
	require.NoError(t, s.Set("k", "v2"))

	got, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}
