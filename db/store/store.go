package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by implementations when a point lookup
// misses. Callers that treat a miss as a normal negative result
// should check for it with errors.Is.
var ErrNotFound = errors.New("item not found")

// Store is the flat-record item store backing every repository:
// point lookups by primary key, equality-filtered scans, puts,
// partial updates and deletes. Implementations do not provide
// cross-record transactions; multi-record mutations are sequences
// of independent writes.
type Store interface {
	// Get loads the item with the given key into out, which must
	// be a non-nil pointer to a struct. Returns ErrNotFound on a
	// miss.
	Get(ctx context.Context, table string, key map[string]interface{}, out interface{}) error

	// Scan loads every item matching all equality filters into
	// out, which must be a non-nil pointer to a slice. An empty
	// filter map scans the whole table.
	Scan(ctx context.Context, table string, filter map[string]interface{}, out interface{}) error

	// Put writes the full item, replacing any existing item with
	// the same key.
	Put(ctx context.Context, table string, item interface{}) error

	// Update sets the given attributes on the item with the given
	// key. A nil attribute value writes an explicit null.
	Update(ctx context.Context, table string, key map[string]interface{}, set map[string]interface{}) error

	// Delete removes the item with the given key. Deleting an
	// absent item is not an error.
	Delete(ctx context.Context, table string, key map[string]interface{}) error
}
