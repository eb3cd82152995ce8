// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVStore_GetMissing(t *testing.T) {
	s := NewFileKVStore(filepath.Join(t.TempDir(), "kv.json"))

	_, ok, err := s.Get("transactions")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKVStore_SetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	s := NewFileKVStore(path)

	require.NoError(t, s.Set("transactions", `{"0xw":{}}`))

	got, ok, err := s.Get("transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"0xw":{}}`, got)
}

func TestFileKVStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")

	require.NoError(t, NewFileKVStore(path).Set("k", "v1"))
	require.NoError(t, NewFileKVStore(path).Set("k", "v2"))

	got, ok, err := NewFileKVStore(path).Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestFileKVStore_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kv.json")
	s := NewFileKVStore(path)

	require.NoError(t, s.Set("k", "v"))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileKVStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, _, err := NewFileKVStore(path).Get("k")
	assert.Error(t, err)
}
