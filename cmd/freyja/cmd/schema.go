package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/store"
)

// parseSchema parses a comma-separated "name:type:dir" list, e.g.
// "age:int:asc,name:string:asc", into a store.Schema. dir defaults to asc
// when omitted.
func parseSchema(s string) (store.Schema, error) {
	parts := strings.Split(s, ",")
	schema := make(store.Schema, 0, len(parts))
	for _, part := range parts {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 2 || fields[0] == "" {
			return nil, fmt.Errorf("invalid column %q, want name:type[:dir]", part)
		}
		t, err := parseType(fields[1])
		if err != nil {
			return nil, err
		}
		dir := ope.Asc
		if len(fields) > 2 {
			dir = parseDirection(fields[2])
		}
		schema = append(schema, store.Column{Name: fields[0], Type: t, Dir: dir})
	}
	return schema, nil
}

func parseType(s string) (ope.Type, error) {
	switch strings.ToUpper(s) {
	case "INT":
		return ope.TypeInt, nil
	case "LONG":
		return ope.TypeLong, nil
	case "DOUBLE":
		return ope.TypeDouble, nil
	case "STRING":
		return ope.TypeString, nil
	case "BOOL":
		return ope.TypeBool, nil
	case "DATE":
		return ope.TypeDate, nil
	case "TIMESTAMP":
		return ope.TypeTimestamp, nil
	case "BINARY":
		return ope.TypeBinary, nil
	case "OBJECT":
		return ope.TypeObject, nil
	default:
		return 0, fmt.Errorf("unknown type %q", s)
	}
}

func parseDirection(s string) ope.Direction {
	if strings.EqualFold(s, "desc") {
		return ope.Desc
	}
	return ope.Asc
}

// parseValues parses a comma-separated literal list against schema, one
// value per column; csv may supply fewer values than schema has columns,
// which callers use to build a partial scan bound.
func parseValues(csv string, schema store.Schema) ([]ope.Value, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	if len(parts) > len(schema) {
		return nil, fmt.Errorf("got %d values, schema only has %d columns", len(parts), len(schema))
	}
	values := make([]ope.Value, len(parts))
	for i, raw := range parts {
		v, err := parseScalarValue(strings.TrimSpace(raw), schema[i].Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", schema[i].Name, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseScalarValue(raw string, t ope.Type) (ope.Value, error) {
	if raw == "" || strings.EqualFold(raw, "null") {
		return ope.Value{Type: t, Null: true}, nil
	}
	switch t {
	case ope.TypeInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, I32: int32(n)}, nil
	case ope.TypeLong, ope.TypeDate, ope.TypeTimestamp:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, I64: n}, nil
	case ope.TypeDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, F64: f}, nil
	case ope.TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, B: b}, nil
	case ope.TypeString:
		return ope.Value{Type: t, Str: []byte(raw)}, nil
	case ope.TypeBinary, ope.TypeObject:
		b, err := hex.DecodeString(raw)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, Str: b}, nil
	default:
		return ope.Value{}, fmt.Errorf("unsupported type %s", t)
	}
}

// formatValue renders a decoded value for terminal output.
func formatValue(v ope.Value) string {
	if v.Null {
		return "NULL"
	}
	switch v.Type {
	case ope.TypeInt:
		return strconv.FormatInt(int64(v.I32), 10)
	case ope.TypeLong, ope.TypeDate, ope.TypeTimestamp:
		return strconv.FormatInt(v.I64, 10)
	case ope.TypeDouble:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case ope.TypeBool:
		return strconv.FormatBool(v.B)
	case ope.TypeString:
		return string(v.Str)
	case ope.TypeBinary, ope.TypeObject:
		return hex.EncodeToString(v.Str)
	default:
		return ""
	}
}
