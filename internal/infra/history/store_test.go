package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/authentiscan/internal/domain/history"
	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
	"github.com/bryanwahyu/authentiscan/internal/infra/kv"
)

func sampleItem(id string) domain.Item {
	return domain.Item{
		Result: verification.Result{
			IsGenuine:       true,
			ConfidenceScore: 90,
			ImageAnalysis:   verification.AnalysisDetail{Title: "t", Description: "d", IsPositive: true},
			BarcodeAnalysis: verification.AnalysisDetail{Title: "t", Description: "d", IsPositive: true},
			TextAnalysis:    verification.AnalysisDetail{Title: "t", Description: "d", IsPositive: true},
		},
		ID:        domain.ItemID(id),
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Type:      verification.InputImage,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(mem)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	saved := []domain.Item{sampleItem("b"), sampleItem("a")}
	require.NoError(t, store.SaveAll(ctx, saved))
	assert.True(t, mem.Has(StorageKey))

	items, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ItemID("b"), items[0].ID)
	assert.Equal(t, saved[0].Result, items[0].Result)
}

func TestStoreSaveEmptyRemovesKey(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(mem)

	require.NoError(t, store.SaveAll(ctx, []domain.Item{sampleItem("a")}))
	require.NoError(t, store.SaveAll(ctx, nil))
	assert.False(t, mem.Has(StorageKey))
}

func TestStoreCorruptValuePurged(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(mem)

	require.NoError(t, mem.Set(ctx, StorageKey, []byte("{{{ corrupt")))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, mem.Has(StorageKey), "corrupt value should be purged")
}

func TestStoreClearIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := NewStore(mem)

	require.NoError(t, store.SaveAll(ctx, []domain.Item{sampleItem("a")}))
	require.NoError(t, store.Clear(ctx))
	assert.False(t, mem.Has(StorageKey))
	assert.NoError(t, store.Clear(ctx))
}
