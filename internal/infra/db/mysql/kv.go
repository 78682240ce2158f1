package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
)

// KVStore persists opaque values in a single app_state table, one row per
// key. Every write replaces the whole value, mirroring the read-all /
// write-all contract of the store port.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(ctx context.Context, db *sql.DB) (*KVStore, error) {
	const ddl = `
CREATE TABLE IF NOT EXISTS app_state (
  k VARCHAR(191) NOT NULL PRIMARY KEY,
  v LONGTEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM app_state WHERE k=? LIMIT 1;`
	var v []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO app_state (k, v) VALUES (?,?)
ON DUPLICATE KEY UPDATE v=VALUES(v);`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM app_state WHERE k=?;`
	_, err := s.db.ExecContext(ctx, q, key)
	return err
}
