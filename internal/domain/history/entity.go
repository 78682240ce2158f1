package history

import (
	"time"

	"github.com/bryanwahyu/authentiscan/internal/domain/verification"
)

// MaxItems bounds the persisted history. Inserting item 51 evicts the oldest.
const MaxItems = 50

// ItemID identifier type
type ItemID string

// Item is a persisted verification result plus capture metadata. Created
// exactly once when a verification completes successfully, immutable after.
type Item struct {
	verification.Result

	ID           ItemID                 `json:"id"`
	CreatedAt    time.Time              `json:"createdAt"`
	Type         verification.InputKind `json:"type"`
	ImagePreview string                 `json:"imagePreview,omitempty"`
}

// Prepend inserts item at the front of items, newest first, keeping at most
// MaxItems entries.
func Prepend(items []Item, it Item) []Item {
	keep := items
	if len(keep) > MaxItems-1 {
		keep = keep[:MaxItems-1]
	}
	out := make([]Item, 0, len(keep)+1)
	out = append(out, it)
	out = append(out, keep...)
	return out
}
