package history

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	domain "github.com/bryanwahyu/authentiscan/internal/domain/history"
	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
)

// StorageKey is the single key holding the serialized history array.
const StorageKey = "scan_history"

// Store persists the whole history as one JSON array under StorageKey.
// Self-healing: a value that fails to deserialize is purged and treated as
// empty history, never surfaced as an error.
type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

func (s *Store) Load(ctx context.Context) ([]domain.Item, error) {
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("failed to load scan history, clearing: %v", err)
		if derr := s.kv.Delete(ctx, StorageKey); derr != nil {
			log.Printf("failed to purge corrupt scan history: %v", derr)
		}
		return nil, nil
	}
	return items, nil
}

func (s *Store) SaveAll(ctx context.Context, items []domain.Item) error {
	// Empty history removes the key rather than persisting an empty array.
	if len(items) == 0 {
		return s.kv.Delete(ctx, StorageKey)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, StorageKey, data)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, StorageKey)
}
