package query

import (
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/store"
)

// Engine answers predicate queries against a single table by building
// scan boundary keys and delegating the range scan to pkg/store.
type Engine struct {
	table *store.TupleStore
}

// NewEngine returns an Engine over table.
func NewEngine(table *store.TupleStore) *Engine {
	return &Engine{table: table}
}

// Query builds scan bounds from predicates and returns every matching
// row from the underlying table, in the table's declared sort order.
func (e *Engine) Query(predicates []Predicate) ([]store.Row, error) {
	low, high, err := BuildBounds(e.table.Schema(), predicates)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rows, err := e.table.Scan(low, high)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}
