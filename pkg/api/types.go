package api

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/query"
	"github.com/ssargent/freyja-ope/pkg/store"
)

// APIResponse is the envelope every handler writes, success or error.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Port   int
	APIKey string
}

// ValueDTO is the JSON wire form of one ope.Value. Which of the typed
// fields is populated depends on Type; Null overrides all of them.
type ValueDTO struct {
	Type string   `json:"type"`
	I32  *int32   `json:"i32,omitempty"`
	I64  *int64   `json:"i64,omitempty"`
	F64  *float64 `json:"f64,omitempty"`
	Bool *bool    `json:"bool,omitempty"`
	Str  *string  `json:"str,omitempty"`
	Hex  *string  `json:"hex,omitempty"`
	Null bool     `json:"null,omitempty"`
}

// ColumnDTO is the JSON wire form of a store.Column.
type ColumnDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Dir  string `json:"dir,omitempty"`
}

func parseType(s string) (ope.Type, error) {
	switch strings.ToUpper(s) {
	case "NULL":
		return ope.TypeNull, nil
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
		return 0, fmt.Errorf("api: unknown type %q", s)
	}
}

func parseDirection(s string) ope.Direction {
	if strings.EqualFold(s, "desc") {
		return ope.Desc
	}
	return ope.Asc
}

// toValue converts the DTO into an ope.Value of the given type, decoding
// hex for binary/object payloads and plain text for everything else.
func (v ValueDTO) toValue(t ope.Type) (ope.Value, error) {
	if v.Null {
		return ope.Value{Type: t, Null: true}, nil
	}
	val := ope.Value{Type: t}
	switch t {
	case ope.TypeInt:
		if v.I32 == nil {
			return val, fmt.Errorf("api: INT value requires i32")
		}
		val.I32 = *v.I32
	case ope.TypeLong, ope.TypeDate:
		if v.I64 == nil {
			return val, fmt.Errorf("api: LONG/DATE value requires i64")
		}
		val.I64 = *v.I64
	case ope.TypeTimestamp:
		if v.I64 == nil {
			return val, fmt.Errorf("api: TIMESTAMP value requires i64")
		}
		val.I64 = *v.I64
	case ope.TypeDouble:
		if v.F64 == nil {
			return val, fmt.Errorf("api: DOUBLE value requires f64")
		}
		val.F64 = *v.F64
	case ope.TypeBool:
		if v.Bool == nil {
			return val, fmt.Errorf("api: BOOL value requires bool")
		}
		val.B = *v.Bool
	case ope.TypeString:
		if v.Str == nil {
			return val, fmt.Errorf("api: STRING value requires str")
		}
		val.Str = []byte(*v.Str)
	case ope.TypeBinary, ope.TypeObject:
		if v.Hex == nil {
			return val, fmt.Errorf("api: BINARY/OBJECT value requires hex")
		}
		raw, err := hex.DecodeString(*v.Hex)
		if err != nil {
			return val, fmt.Errorf("api: decoding binary payload: %w", err)
		}
		val.Str = raw
	default:
		return val, fmt.Errorf("api: unsupported type %s", t)
	}
	return val, nil
}

func valueToDTO(v ope.Value) ValueDTO {
	dto := ValueDTO{Type: v.Type.String(), Null: v.Null}
	if v.Null {
		return dto
	}
	switch v.Type {
	case ope.TypeInt:
		dto.I32 = &v.I32
	case ope.TypeLong, ope.TypeDate, ope.TypeTimestamp:
		dto.I64 = &v.I64
	case ope.TypeDouble:
		dto.F64 = &v.F64
	case ope.TypeBool:
		dto.Bool = &v.B
	case ope.TypeString:
		s := string(v.Str)
		dto.Str = &s
	case ope.TypeBinary, ope.TypeObject:
		s := hex.EncodeToString(v.Str)
		dto.Hex = &s
	}
	return dto
}

func (c ColumnDTO) toColumn() (store.Column, error) {
	t, err := parseType(c.Type)
	if err != nil {
		return store.Column{}, err
	}
	if c.Name == "" {
		return store.Column{}, fmt.Errorf("api: column name is required")
	}
	return store.Column{Name: c.Name, Type: t, Dir: parseDirection(c.Dir)}, nil
}

func toSchema(cols []ColumnDTO) (store.Schema, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("api: schema must have at least one column")
	}
	schema := make(store.Schema, 0, len(cols))
	for _, c := range cols {
		col, err := c.toColumn()
		if err != nil {
			return nil, err
		}
		schema = append(schema, col)
	}
	return schema, nil
}

// EncodeRequest is the body of POST /api/v1/encode.
type EncodeRequest struct {
	Type  string   `json:"type"`
	Dir   string   `json:"dir,omitempty"`
	Value ValueDTO `json:"value"`
}

// DecodeRequest is the body of POST /api/v1/decode.
type DecodeRequest struct {
	Type string `json:"type"`
	Dir  string `json:"dir,omitempty"`
	Hex  string `json:"hex"`
}

// PutRowRequest is the body of PUT /api/v1/tables/{table}/rows. Schema is
// only required the first time a table name is seen by this server; later
// requests may omit it and reuse the table's registered schema.
type PutRowRequest struct {
	Schema  []ColumnDTO `json:"schema,omitempty"`
	Values  []ValueDTO  `json:"values"`
	Payload string      `json:"payload,omitempty"`
}

// RowDTO is the JSON wire form of a store.Row.
type RowDTO struct {
	Key     []ValueDTO `json:"key"`
	Payload string     `json:"payload,omitempty"`
}

func rowToDTO(row store.Row) RowDTO {
	dto := RowDTO{Key: make([]ValueDTO, len(row.Key))}
	for i, v := range row.Key {
		dto.Key[i] = valueToDTO(v)
	}
	if len(row.Payload) > 0 {
		dto.Payload = hex.EncodeToString(row.Payload)
	}
	return dto
}

// hexDecode decodes s as hex, treating an empty string as an empty (not
// nil-error) payload so an omitted field never fails validation.
func hexDecode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}

// predicateOps maps the query-string operator suffix to a query.Op.
var predicateOps = map[string]query.Op{
	"eq":      query.Eq,
	"lt":      query.Lt,
	"lte":     query.Lte,
	"gt":      query.Gt,
	"gte":     query.Gte,
	"isnull":  query.IsNull,
	"between": query.Between,
}
