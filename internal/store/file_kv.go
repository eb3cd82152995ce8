// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Golem Base

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKVStore is a [KVStore] persisted as one JSON object in a single
// file. The whole map is re-read on every Get and re-written wholesale on
// every Set, so a restart (or another process writing between calls) is
// always picked up.
type fileKVStore struct {
	path string

	mu sync.Mutex
}

// NewFileKVStore returns a file-backed [KVStore] at path. The file is
// created lazily on the first Set.
func NewFileKVStore(path string) KVStore {
	return &fileKVStore{path: path}
}

func (s *fileKVStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

func (s *fileKVStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.persist(items)
}

func (s *fileKVStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read local storage file: %w", err)
	}

	items := make(map[string]string)
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode local storage file: %w", err)
	}
	return items, nil
}

func (s *fileKVStore) persist(items map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}

	return nil
}
