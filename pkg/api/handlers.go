package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/query"
	"github.com/ssargent/freyja-ope/pkg/storage"
	"github.com/ssargent/freyja-ope/pkg/store"
)

// Server holds the API's dependencies: the ordered storage engine shared
// by every table, a process-local schema catalog, and metrics.
type Server struct {
	engine  *storage.Engine
	catalog *Catalog
	config  ServerConfig
	metrics *Metrics
}

// NewServer returns a Server backed by engine.
func NewServer(engine *storage.Engine, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		engine:  engine,
		catalog: NewCatalog(),
		config:  config,
		metrics: metrics,
	}
}

// handleHealth godoc
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode godoc
//
//	@Summary		Encode a scalar
//	@Description	Encode one typed scalar value into its order-preserving byte encoding
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EncodeRequest	true	"Value to encode"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Router			/encode [post]
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}

	t, err := parseType(req.Type)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir := parseDirection(req.Dir)
	val, err := req.Value.toValue(t)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hexStr, err := encodeScalar(t, dir, val)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccess(w, map[string]string{"hex": hexStr})
}

// handleDecode godoc
//
//	@Summary		Decode a scalar
//	@Description	Decode hex bytes produced by /encode back into a typed value
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DecodeRequest	true	"Bytes to decode"
//	@Success		200		{object}	ValueDTO
//	@Failure		400		{object}	map[string]string
//	@Router			/decode [post]
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}

	t, err := parseType(req.Type)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	dir := parseDirection(req.Dir)

	raw, err := hexDecode(req.Hex)
	if err != nil {
		sendError(w, fmt.Sprintf("invalid hex: %v", err), http.StatusBadRequest)
		return
	}

	val, err := decodeScalar(t, dir, raw)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendSuccess(w, valueToDTO(val))
}

// handlePutRow godoc
//
//	@Summary		Insert a row
//	@Description	Insert a typed tuple row into a table, registering its schema on first use
//	@Tags			rows
//	@Accept			json
//	@Produce		json
//	@Param			table	path		string			true	"Table name"
//	@Param			request	body		PutRowRequest	true	"Row to insert"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/tables/{table}/rows [put]
func (s *Server) handlePutRow(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table := chi.URLParam(r, "table")
	if table == "" {
		sendError(w, "table name is required", http.StatusBadRequest)
		return
	}

	var req PutRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}

	schema, err := s.resolveSchema(table, req.Schema)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Values) != len(schema) {
		sendError(w, fmt.Sprintf("got %d values, table %q has %d columns", len(req.Values), table, len(schema)), http.StatusBadRequest)
		return
	}

	values := make([]ope.Value, len(req.Values))
	for i, dto := range req.Values {
		v, err := dto.toValue(schema[i].Type)
		if err != nil {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		values[i] = v
	}

	payload, err := hexDecode(req.Payload)
	if err != nil {
		sendError(w, fmt.Sprintf("invalid payload encoding: %v", err), http.StatusBadRequest)
		return
	}

	ts := store.NewTupleStore(s.engine, table, schema)
	if err := ts.Put(values, payload); err != nil {
		s.metrics.RecordEngineOperation("put", false, time.Since(start))
		sendError(w, fmt.Sprintf("failed to put row: %v", err), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordEngineOperation("put", true, time.Since(start))
	sendSuccess(w, map[string]string{"message": "row stored successfully"})
}

// handleGetRows godoc
//
//	@Summary		Range query
//	@Description	Scan a table between bounds built from column predicates of the form column.op=value
//	@Tags			rows
//	@Produce		json
//	@Param			table	path		string	true	"Table name"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/tables/{table}/rows [get]
func (s *Server) handleGetRows(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	table := chi.URLParam(r, "table")
	if table == "" {
		sendError(w, "table name is required", http.StatusBadRequest)
		return
	}

	schema, ok := s.catalog.Lookup(table)
	if !ok {
		sendError(w, fmt.Sprintf("table %q is not registered; PUT a row with a schema first", table), http.StatusNotFound)
		return
	}

	predicates, err := parsePredicates(r.URL.Query(), schema)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ts := store.NewTupleStore(s.engine, table, schema)
	qe := query.NewEngine(ts)
	rows, err := qe.Query(predicates)
	if err != nil {
		s.metrics.RecordEngineOperation("query", false, time.Since(start))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.RecordEngineOperation("query", true, time.Since(start))
	dtos := make([]RowDTO, len(rows))
	for i, row := range rows {
		dtos[i] = rowToDTO(row)
	}
	sendSuccess(w, map[string]interface{}{"rows": dtos})
}

func (s *Server) resolveSchema(table string, cols []ColumnDTO) (store.Schema, error) {
	if existing, ok := s.catalog.Lookup(table); ok {
		return existing, nil
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q is not registered; the first PUT to a table must include its schema", table)
	}
	schema, err := toSchema(cols)
	if err != nil {
		return nil, err
	}
	return s.catalog.Register(table, schema), nil
}

// parsePredicates turns "<column>.<op>=<value>" query parameters into
// query.Predicate values typed against schema.
func parsePredicates(q map[string][]string, schema store.Schema) ([]query.Predicate, error) {
	colType := make(map[string]ope.Type, len(schema))
	for _, c := range schema {
		colType[c.Name] = c.Type
	}

	var predicates []query.Predicate
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		column, opName, found := strings.Cut(key, ".")
		if !found {
			continue
		}
		op, ok := predicateOps[strings.ToLower(opName)]
		if !ok {
			return nil, fmt.Errorf("api: unknown predicate operator %q", opName)
		}
		t, ok := colType[column]
		if !ok {
			return nil, fmt.Errorf("api: unknown column %q in predicate", column)
		}

		p := query.Predicate{Column: column, Op: op}
		switch op {
		case query.IsNull:
			// no value needed
		case query.Between:
			parts := strings.SplitN(values[0], ",", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("api: between predicate on %q needs \"low,high\"", column)
			}
			low, err := parseValueFromString(parts[0], t)
			if err != nil {
				return nil, err
			}
			high, err := parseValueFromString(parts[1], t)
			if err != nil {
				return nil, err
			}
			p.Value, p.High = low, high
		default:
			v, err := parseValueFromString(values[0], t)
			if err != nil {
				return nil, err
			}
			p.Value = v
		}
		predicates = append(predicates, p)
	}
	return predicates, nil
}

func parseValueFromString(raw string, t ope.Type) (ope.Value, error) {
	switch t {
	case ope.TypeInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return ope.Value{}, fmt.Errorf("api: invalid int %q: %w", raw, err)
		}
		return ope.Value{Type: t, I32: int32(n)}, nil
	case ope.TypeLong, ope.TypeDate, ope.TypeTimestamp:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return ope.Value{}, fmt.Errorf("api: invalid integer %q: %w", raw, err)
		}
		return ope.Value{Type: t, I64: n}, nil
	case ope.TypeDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ope.Value{}, fmt.Errorf("api: invalid double %q: %w", raw, err)
		}
		return ope.Value{Type: t, F64: f}, nil
	case ope.TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return ope.Value{}, fmt.Errorf("api: invalid bool %q: %w", raw, err)
		}
		return ope.Value{Type: t, B: b}, nil
	case ope.TypeString:
		return ope.Value{Type: t, Str: []byte(raw)}, nil
	case ope.TypeBinary, ope.TypeObject:
		raw, err := hexDecode(raw)
		if err != nil {
			return ope.Value{}, err
		}
		return ope.Value{Type: t, Str: raw}, nil
	default:
		return ope.Value{}, fmt.Errorf("api: unsupported predicate type %s", t)
	}
}
