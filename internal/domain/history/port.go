package history

import "context"

// Store port for history persistence. The store is a dumb layer: it persists
// whatever full sequence it is given and enforces no bound of its own.
type Store interface {
	// Load returns the persisted sequence, newest first. A corrupt persisted
	// value yields an empty sequence and purges the stored record; Load never
	// surfaces a deserialization error.
	Load(ctx context.Context) ([]Item, error)
	// SaveAll replaces the persisted sequence. An empty sequence removes the
	// stored record entirely.
	SaveAll(ctx context.Context, items []Item) error
	// Clear removes the stored record. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
