// Package query turns column predicates into the scan boundary keys that
// pkg/store's Scan expects, keeping those boundary keys distinct from the
// stored field values they bound.
package query

import (
	"fmt"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/store"
)

// Op names a predicate's comparison operator.
type Op int

const (
	Eq Op = iota
	Lt
	Lte
	Gt
	Gte
	Between
	IsNull
)

func (o Op) String() string {
	switch o {
	case Eq:
		return "eq"
	case Lt:
		return "lt"
	case Lte:
		return "lte"
	case Gt:
		return "gt"
	case Gte:
		return "gte"
	case Between:
		return "between"
	case IsNull:
		return "is_null"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Predicate constrains one named column. Value holds the bound for every
// operator except Between and IsNull; Between also uses High as the
// upper bound, and IsNull ignores both.
type Predicate struct {
	Column string
	Op     Op
	Value  ope.Value
	High   ope.Value
}

// BuildBounds turns predicates into a (low, high) pair of partial value
// lists suitable for store.Schema.EncodeScanBound / TupleStore.Scan.
//
// Only a leading run of Eq (or IsNull point-equality) predicates, one per
// schema column in column order, followed by at most one ranging
// predicate (Lt/Lte/Gt/Gte/Between) on the next column, can be expressed
// as scan bounds, exactly like a multi-column index range scan. Columns
// after the ranging predicate are left unconstrained (open) in both
// bounds; a predicate on a column past that point is rejected rather
// than silently ignored.
//
// Lt/Lte and Gt/Gte are not distinguished at the boundary-key level: the
// codec's scan-boundary alphabet has no notion of "value, excluded" short
// of encoding a successor/predecessor value, so Lt and Lte both bound the
// high end at Value and Gt/Gte both bound the low end at Value. Callers
// that need strict exclusivity must filter the boundary row themselves.
func BuildBounds(schema store.Schema, predicates []Predicate) (low, high []ope.Value, err error) {
	byColumn := make(map[string]Predicate, len(predicates))
	for _, p := range predicates {
		if _, exists := byColumn[p.Column]; exists {
			return nil, nil, fmt.Errorf("query: duplicate predicate on column %q", p.Column)
		}
		byColumn[p.Column] = p
	}

	for i, col := range schema {
		p, ok := byColumn[col.Name]
		if !ok {
			if len(byColumn) > 0 {
				return nil, nil, fmt.Errorf("query: predicates reference columns not in schema, or out of leading order: %d leftover", len(byColumn))
			}
			return low, high, nil
		}
		delete(byColumn, col.Name)
		v := p.Value
		v.Type = col.Type

		switch p.Op {
		case Eq:
			low = append(low, v)
			high = append(high, v)
			continue
		case IsNull:
			null := ope.Value{Type: col.Type, Null: true}
			low = append(low, null)
			high = append(high, null)
			continue
		case Lt, Lte:
			high = append(high, v)
			return low, high, checkNoRemainingPredicates(byColumn, schema[i+1:])
		case Gt, Gte:
			low = append(low, v)
			return low, high, checkNoRemainingPredicates(byColumn, schema[i+1:])
		case Between:
			hv := p.High
			hv.Type = col.Type
			low = append(low, v)
			high = append(high, hv)
			return low, high, checkNoRemainingPredicates(byColumn, schema[i+1:])
		default:
			return nil, nil, fmt.Errorf("query: unsupported operator %s on column %q", p.Op, p.Column)
		}
	}

	if len(byColumn) > 0 {
		return nil, nil, fmt.Errorf("query: predicates reference columns not in schema: %d leftover", len(byColumn))
	}
	return low, high, nil
}

func checkNoRemainingPredicates(byColumn map[string]Predicate, laterColumns store.Schema) error {
	if len(byColumn) == 0 {
		return nil
	}
	for _, col := range laterColumns {
		if _, ok := byColumn[col.Name]; ok {
			return fmt.Errorf("query: predicate on column %q follows a non-equality predicate on an earlier column; only a leading run of equality predicates can be combined with one range predicate", col.Name)
		}
	}
	return fmt.Errorf("query: predicates reference columns not in schema: %d leftover", len(byColumn))
}
