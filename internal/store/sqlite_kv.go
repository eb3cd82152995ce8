package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Golem-Base/dPaste/internal/logger"
	"github.com/Golem-Base/dPaste/migrations"
)

// sqliteKVStore is a [KVStore] backed by a local SQLite database. Useful
// when several tools share one ledger and the single-file JSON store's
// whole-file rewrites get too coarse.
type sqliteKVStore struct {
	db *sql.DB
}

// NewSQLiteKVStore opens (creating if needed) the SQLite database at
// dbPath and ensures the kv table exists.
func NewSQLiteKVStore(ctx context.Context, dbPath string, log *logger.Logger) (KVStore, error) {
	if err := createLocalDBFileIfNotExists(dbPath); err != nil {
		log.Err(err).Str("func", "NewSQLiteKVStore").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKVStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKVStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteKVStore").Msg("connected to database successfully")

	return &sqliteKVStore{db: conn}, nil
}

func (s *sqliteKVStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select kv: %w", err)
	}
	return value, true, nil
}

func (s *sqliteKVStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
