package api

import (
	"sync"

	"github.com/ssargent/freyja-ope/pkg/store"
)

// Catalog is a process-local registry of table schemas, keyed by table
// name. store.TupleStore is a stateless wrapper over pkg/storage, so the
// catalog only needs to remember schemas, not store instances, letting
// every handler build the TupleStore it needs on demand.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]store.Schema
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[string]store.Schema)}
}

// Register records schema for table if no schema is registered yet, and
// returns the schema now in effect for table (the one just registered, or
// the one already there).
func (c *Catalog) Register(table string, schema store.Schema) store.Schema {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.tables[table]; ok {
		return existing
	}
	c.tables[table] = schema
	return schema
}

// Lookup returns the schema registered for table, if any.
func (c *Catalog) Lookup(table string) (store.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.tables[table]
	return s, ok
}
