// Package storage wraps a cockroachdb/pebble LSM store as the ordered
// byte-keyed engine backing every table and secondary index. Pebble
// preserves key byte order on disk, which is exactly what an
// order-preserving codec needs for range scans: unlike a hash index, a
// range of encoded keys maps directly to a range of storage keys.
package storage

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// Engine is a thin, ordered key-value wrapper over pebble.DB. Keys are
// opaque byte strings — typically ope-encoded composite records — and
// pebble's own LSM ordering does the rest.
type Engine struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a pebble store rooted at dir.
func Open(dir string) (*Engine, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dir, err)
	}
	return &Engine{db: db}, nil
}

// Put writes key to value, overwriting any existing value.
func (e *Engine) Put(key, value []byte) error {
	if err := e.db.Set(key, value, pebble.NoSync); err != nil {
		return fmt.Errorf("storage: put: %w", err)
	}
	return nil
}

// Get returns a copy of the value stored under key; the caller owns the
// returned slice.
func (e *Engine) Get(key []byte) ([]byte, error) {
	data, closer, err := e.db.Get(key)
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: get: %w", err)
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (e *Engine) Delete(key []byte) error {
	if err := e.db.Delete(key, pebble.NoSync); err != nil {
		return fmt.Errorf("storage: delete: %w", err)
	}
	return nil
}

// NewIter returns a pebble iterator bounded to [lower, upper), the same
// half-open convention used by ope-encoded scan boundary keys (an
// inclusive low boundary built with PutRangeBoundaryStart, an exclusive
// high boundary built with PutRangeBoundaryEnd).
func (e *Engine) NewIter(lower, upper []byte) (*pebble.Iterator, error) {
	iter, err := e.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: new iterator: %w", err)
	}
	return iter, nil
}

// Close releases the underlying pebble store.
func (e *Engine) Close() error {
	if err := e.db.Close(); err != nil {
		return fmt.Errorf("storage: close: %w", err)
	}
	return nil
}

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = fmt.Errorf("storage: key not found")

var (
	surrogateMu   sync.Mutex
	lastSurrogate ksuid.KSUID
)

// NewSurrogateID returns a fresh time-sortable ksuid, used as the
// uniqueness tail appended to composite index keys (pkg/index) so that
// rows sharing the same indexed field values still produce distinct,
// insertion-ordered keys. Within one process each ID is strictly greater
// than the previous one, even when both fall in the same second.
func NewSurrogateID() ksuid.KSUID {
	surrogateMu.Lock()
	defer surrogateMu.Unlock()
	id := ksuid.New()
	if ksuid.Compare(id, lastSurrogate) <= 0 {
		id = lastSurrogate.Next()
	}
	lastSurrogate = id
	return id
}
