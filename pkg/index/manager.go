// Package index implements a secondary index on top of pkg/store's
// composite-key encoding: an in-memory write buffer ordered by the
// OPE-encoded index key, periodically flushed into the shared ordered
// storage engine under an index-scoped key prefix.
package index

import (
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/bptree"
	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/storage"
	"github.com/ssargent/freyja-ope/pkg/store"
)

// bufferOrder is the branching factor for each index's in-memory write
// buffer. Indexes are expected to stay small relative to the base table
// between flushes, so a modest fixed order is sufficient.
const bufferOrder = 32

// Definition names a secondary index: the (possibly reordered, possibly
// differently-directioned) subset of a table's fields that make up the
// index's own composite key.
type Definition struct {
	Name   string
	Schema store.Schema
}

// Manager maintains one secondary index: an in-memory ordered write
// buffer backed by pkg/bptree, and the flushed, durable copy in
// pkg/storage. Index keys are the field tuple's OPE encoding followed by
// a ksuid tail (disambiguating rows with identical indexed fields) and
// the primary key, so distinct rows never collide even when their
// indexed fields tie (spec.md §8 S2's worked tuple-ordering scenario,
// applied to index maintenance rather than direct key comparison).
type Manager struct {
	def    Definition
	engine *storage.Engine
	prefix []byte
	buffer *bptree.BPlusTree[string, []byte]
}

// NewManager returns a Manager for def backed by engine.
func NewManager(engine *storage.Engine, def Definition) *Manager {
	return &Manager{
		def:    def,
		engine: engine,
		prefix: indexPrefix(def.Name),
		buffer: bptree.NewBPlusTree[string, []byte](bufferOrder),
	}
}

func indexPrefix(name string) []byte {
	p := make([]byte, 0, len(name)+3)
	p = append(p, 'i', 'x', byte(len(name)))
	p = append(p, name...)
	return p
}

// Insert adds one entry to the write buffer: fields must supply exactly
// one value per index column, in column order.
func (m *Manager) Insert(fields []ope.Value, primaryKey []byte) error {
	if len(fields) != len(m.def.Schema) {
		return fmt.Errorf("index %s: insert: got %d fields, schema has %d columns", m.def.Name, len(fields), len(m.def.Schema))
	}
	composite := m.def.Schema.EncodeKey(fields)
	tail := storage.NewSurrogateID().Bytes()

	fullKey := make([]byte, 0, len(composite)+len(tail)+len(primaryKey))
	fullKey = append(fullKey, composite...)
	fullKey = append(fullKey, tail...)
	fullKey = append(fullKey, primaryKey...)

	m.buffer.Insert(string(fullKey), primaryKey)
	return nil
}

// Flush writes every buffered entry into the underlying storage engine
// under this index's key prefix, then resets the write buffer.
func (m *Manager) Flush() error {
	var flushErr error
	m.buffer.All(func(key string, primaryKey []byte) bool {
		fullKey := make([]byte, 0, len(m.prefix)+len(key))
		fullKey = append(fullKey, m.prefix...)
		fullKey = append(fullKey, key...)
		if err := m.engine.Put(fullKey, primaryKey); err != nil {
			flushErr = err
			return false
		}
		return true
	})
	if flushErr != nil {
		return fmt.Errorf("index %s: flush: %w", m.def.Name, flushErr)
	}
	m.buffer = bptree.NewBPlusTree[string, []byte](bufferOrder)
	return nil
}

// Scan returns the primary keys of every flushed entry whose index key
// falls within [low, high], both built from a (possibly partial) prefix
// of index columns; entries matching high are included. Entries still sitting in the unflushed write buffer
// are not visited; callers that need read-your-writes semantics must
// Flush before Scan.
func (m *Manager) Scan(low, high []ope.Value) ([][]byte, error) {
	lowKey := append(append([]byte{}, m.prefix...), m.def.Schema.EncodeScanBound(low, false)...)
	highKey := append(append([]byte{}, m.prefix...), m.def.Schema.EncodeScanBound(high, true)...)

	iter, err := m.engine.NewIter(lowKey, store.NextPrefix(highKey))
	if err != nil {
		return nil, fmt.Errorf("index %s: scan: %w", m.def.Name, err)
	}
	defer iter.Close()

	var primaryKeys [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		pk := make([]byte, len(iter.Value()))
		copy(pk, iter.Value())
		primaryKeys = append(primaryKeys, pk)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("index %s: scan: %w", m.def.Name, err)
	}
	return primaryKeys, nil
}
