package store

import (
	"bytes"
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/storage"
)

// Row pairs a decoded composite key with its opaque payload, as returned
// by Scan.
type Row struct {
	Key     []ope.Value
	Payload []byte
}

// TupleStore encodes typed rows into composite keys under a single table
// prefix in a shared pkg/storage.Engine. Every table in a given engine
// gets its own byte prefix so multiple tuple stores can share one pebble
// directory without key collisions.
type TupleStore struct {
	engine *storage.Engine
	schema Schema
	prefix []byte
}

// NewTupleStore returns a TupleStore over the given table name and
// schema, backed by engine. table must be non-empty; it is encoded as a
// length-prefixed literal so no table name can collide with a prefix of
// another.
func NewTupleStore(engine *storage.Engine, table string, schema Schema) *TupleStore {
	prefix := make([]byte, 0, len(table)+2)
	prefix = append(prefix, byte(len(table)>>8), byte(len(table)))
	prefix = append(prefix, table...)
	return &TupleStore{engine: engine, schema: schema, prefix: prefix}
}

// Schema returns the store's column definitions.
func (t *TupleStore) Schema() Schema { return t.schema }

func (t *TupleStore) key(values []ope.Value) []byte {
	encoded := t.schema.EncodeKey(values)
	key := make([]byte, 0, len(t.prefix)+len(encoded))
	key = append(key, t.prefix...)
	key = append(key, encoded...)
	return key
}

func (t *TupleStore) scanBound(values []ope.Value, end bool) []byte {
	encoded := t.schema.EncodeScanBound(values, end)
	key := make([]byte, 0, len(t.prefix)+len(encoded))
	key = append(key, t.prefix...)
	key = append(key, encoded...)
	return key
}

// Put stores payload under the composite key formed from values, which
// must supply exactly one value per schema column.
func (t *TupleStore) Put(values []ope.Value, payload []byte) error {
	if len(values) != len(t.schema) {
		return fmt.Errorf("store: Put: got %d values, schema has %d columns", len(values), len(t.schema))
	}
	return t.engine.Put(t.key(values), payload)
}

// Get returns the payload stored under the composite key formed from
// values.
func (t *TupleStore) Get(values []ope.Value) ([]byte, error) {
	if len(values) != len(t.schema) {
		return nil, fmt.Errorf("store: Get: got %d values, schema has %d columns", len(values), len(t.schema))
	}
	return t.engine.Get(t.key(values))
}

// Delete removes the row stored under the composite key formed from
// values.
func (t *TupleStore) Delete(values []ope.Value) error {
	if len(values) != len(t.schema) {
		return fmt.Errorf("store: Delete: got %d values, schema has %d columns", len(values), len(t.schema))
	}
	return t.engine.Delete(t.key(values))
}

// Scan returns every row whose composite key falls within [low, high],
// both built from a (possibly partial) prefix of schema columns via
// Schema.EncodeScanBound; rows matching high are included. Rows are returned in the schema's declared
// sort order because that is the byte order pkg/storage iterates in.
func (t *TupleStore) Scan(low, high []ope.Value) ([]Row, error) {
	lowKey := t.scanBound(low, false)
	highKey := t.scanBound(high, true)

	iter, err := t.engine.NewIter(lowKey, NextPrefix(highKey))
	if err != nil {
		return nil, fmt.Errorf("store: scan: %w", err)
	}
	defer iter.Close()

	var rows []Row
	for iter.First(); iter.Valid(); iter.Next() {
		key := iter.Key()[len(t.prefix):]
		values := t.schema.DecodeKey(key)
		payload := make([]byte, len(iter.Value()))
		copy(payload, iter.Value())
		rows = append(rows, Row{Key: values, Payload: payload})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: scan: %w", err)
	}
	return rows, nil
}

// NextPrefix returns the smallest byte string strictly greater than every
// string having key as a prefix, making a scan's upper bound inclusive
// of the exact high boundary key (pebble's UpperBound is exclusive, and
// the range boundary end byte 0xFF is itself part of the boundary key).
// Exported for pkg/index, which builds the same kind of prefix-bounded
// scan over its own key layout.
func NextPrefix(key []byte) []byte {
	out := make([]byte, len(key))
	copy(out, key)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 0xFF {
			out[i]++
			return out[:i+1]
		}
	}
	return bytes.Repeat([]byte{0xFF}, len(key)+1)
}
