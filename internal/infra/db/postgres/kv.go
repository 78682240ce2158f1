package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
)

// KVStore is the Postgres twin of the MySQL app_state store.
type KVStore struct {
	db *sql.DB
}

func NewKVStore(ctx context.Context, db *sql.DB) (*KVStore, error) {
	const ddl = `
CREATE TABLE IF NOT EXISTS app_state (
  k TEXT NOT NULL PRIMARY KEY,
  v TEXT NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT v FROM app_state WHERE k=$1 LIMIT 1;`
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
INSERT INTO app_state (k, v) VALUES ($1,$2)
ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, updated_at = now();`
	_, err := s.db.ExecContext(ctx, q, key, value)
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM app_state WHERE k=$1;`
	_, err := s.db.ExecContext(ctx, q, key)
	return err
}
