package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/freyja-ope/pkg/ope"
	"github.com/ssargent/freyja-ope/pkg/storage"
)

func newTestStore(t *testing.T, schema Schema) *TupleStore {
	t.Helper()
	dir, err := os.MkdirTemp("", "ope_store_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	engine, err := storage.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })

	return NewTupleStore(engine, "users", schema)
}

func userSchema() Schema {
	return Schema{
		{Name: "age", Type: ope.TypeInt, Dir: ope.Asc},
		{Name: "name", Type: ope.TypeString, Dir: ope.Asc},
	}
}

func TestTupleStore_PutGetDelete(t *testing.T) {
	s := newTestStore(t, userSchema())

	key := []ope.Value{{Type: ope.TypeInt, I32: 30}, {Type: ope.TypeString, Str: []byte("alice")}}
	require.NoError(t, s.Put(key, []byte(`{"email":"alice@example.com"}`)))

	got, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"alice@example.com"}`, string(got))

	require.NoError(t, s.Delete(key))
	_, err = s.Get(key)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTupleStore_PutWrongColumnCountErrors(t *testing.T) {
	s := newTestStore(t, userSchema())
	err := s.Put([]ope.Value{{Type: ope.TypeInt, I32: 30}}, []byte("x"))
	assert.Error(t, err)
}

func TestTupleStore_ScanOrdersBySchemaDirection(t *testing.T) {
	s := newTestStore(t, userSchema())

	rows := []struct {
		age  int32
		name string
	}{
		{30, "alice"},
		{25, "bob"},
		{40, "carol"},
		{25, "dave"},
	}
	for _, r := range rows {
		key := []ope.Value{{Type: ope.TypeInt, I32: r.age}, {Type: ope.TypeString, Str: []byte(r.name)}}
		require.NoError(t, s.Put(key, []byte(r.name)))
	}

	got, err := s.Scan(nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 4)

	wantOrder := []string{"bob", "dave", "alice", "carol"} // age asc, then name asc
	var gotOrder []string
	for _, row := range got {
		gotOrder = append(gotOrder, string(row.Key[1].Str))
	}
	assert.Equal(t, wantOrder, gotOrder)
}

func TestTupleStore_ScanWithPartialBoundFiltersByPrefix(t *testing.T) {
	s := newTestStore(t, userSchema())

	for _, r := range []struct {
		age  int32
		name string
	}{
		{25, "bob"},
		{25, "dave"},
		{30, "alice"},
	} {
		key := []ope.Value{{Type: ope.TypeInt, I32: r.age}, {Type: ope.TypeString, Str: []byte(r.name)}}
		require.NoError(t, s.Put(key, []byte(r.name)))
	}

	bound := []ope.Value{{Type: ope.TypeInt, I32: 25}}
	got, err := s.Scan(bound, bound)
	require.NoError(t, err)

	var names []string
	for _, row := range got {
		names = append(names, string(row.Key[1].Str))
	}
	assert.ElementsMatch(t, []string{"bob", "dave"}, names)
}

func TestTupleStore_ScanEmptyStoreReturnsNoRows(t *testing.T) {
	s := newTestStore(t, userSchema())
	got, err := s.Scan(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSchema_EncodeDecodeKeyRoundTrip(t *testing.T) {
	schema := userSchema()
	values := []ope.Value{{Type: ope.TypeInt, I32: -5}, {Type: ope.TypeString, Str: []byte("zed")}}

	key := schema.EncodeKey(values)
	decoded := schema.DecodeKey(key)

	require.Len(t, decoded, 2)
	assert.Equal(t, int32(-5), decoded[0].I32)
	assert.Equal(t, "zed", string(decoded[1].Str))
}
