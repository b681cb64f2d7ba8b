// Package store implements a tuple store on top of pkg/storage: typed rows
// are encoded into a single composite key via pkg/ope so that the
// underlying ordered engine's natural byte order is the schema's declared
// sort order, with an opaque payload carried alongside each key.
package store

import "github.com/ssargent/freyja-ope/pkg/ope"

// Column names one field of a Schema: its logical type and the sort
// direction its encoding should use within the composite key.
type Column struct {
	Name string
	Type ope.Type
	Dir  ope.Direction
}

// Schema is an ordered list of columns forming a composite key. Column
// order is significant: it is the order fields are compared, exactly like
// a multi-column index.
type Schema []Column

// EncodeKey builds the composite key for a complete row: one
// null-indicator-prefixed field per column, in schema order.
func (s Schema) EncodeKey(values []ope.Value) []byte {
	r := ope.NewRecord(estimateKeySize(s))
	for i, col := range s {
		v := values[i]
		v.Type = col.Type
		r.PutField(v, col.Dir)
	}
	r.MarkEnd()
	return r.Bytes()
}

// EncodeScanBound builds a scan boundary key: columns with a corresponding
// entry in values are written as exact point conditions; any trailing
// columns the caller left unconstrained are written as an open range
// boundary (start for a low bound, end for a high bound). len(values) may
// be less than len(s).
func (s Schema) EncodeScanBound(values []ope.Value, end bool) []byte {
	r := ope.NewRecord(estimateKeySize(s))
	for i, col := range s {
		if i < len(values) {
			v := values[i]
			v.Type = col.Type
			if v.Null {
				r.PutNullPointCondition(col.Dir)
				continue
			}
			r.PutField(v, col.Dir)
			continue
		}
		if end {
			r.PutRangeBoundaryEnd()
		} else {
			r.PutRangeBoundaryStart()
		}
	}
	r.MarkEnd()
	return r.Bytes()
}

// DecodeKey reads a full composite key back into typed values, in schema
// order. The key must have been produced by EncodeKey with this schema;
// scan boundary keys are not decodable (a boundary byte is not a valid
// field indicator for a constrained column).
func (s Schema) DecodeKey(key []byte) []ope.Value {
	r := ope.WrapRecord(key)
	values := make([]ope.Value, len(s))
	for i, col := range s {
		v := r.GetField(col.Type, col.Dir)
		// GetField's Str for STRING/BINARY/OBJECT aliases the Record's
		// scratch buffer and is only valid until the next Get call; values
		// must outlive this loop, so copy it out now.
		if v.Str != nil {
			v.Str = append([]byte(nil), v.Str...)
		}
		values[i] = v
	}
	return values
}

func estimateKeySize(s Schema) int {
	size := 0
	for _, col := range s {
		switch col.Type {
		case ope.TypeString, ope.TypeBinary, ope.TypeObject:
			size += 32
		default:
			size += col.Type.FixedWidth() + 1
		}
	}
	if size == 0 {
		size = 16
	}
	return size
}
