package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir, err := os.MkdirTemp("", "ope_storage_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	e, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func TestEngine_PutGetDelete(t *testing.T) {
	e := newTestEngine(t)

	require.NoError(t, e.Put([]byte("k1"), []byte("v1")))

	got, err := e.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, e.Delete([]byte("k1")))
	_, err = e.Get([]byte("k1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_GetMissingKey(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Get([]byte("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEngine_DeleteMissingKeyIsNotError(t *testing.T) {
	e := newTestEngine(t)
	assert.NoError(t, e.Delete([]byte("missing")))
}

func TestEngine_NewIterRespectsBounds(t *testing.T) {
	e := newTestEngine(t)

	keys := []string{"a", "b", "c", "d", "e"}
	for _, k := range keys {
		require.NoError(t, e.Put([]byte(k), []byte("val-"+k)))
	}

	iter, err := e.NewIter([]byte("b"), []byte("d"))
	require.NoError(t, err)
	defer iter.Close()

	var got []string
	for iter.First(); iter.Valid(); iter.Next() {
		got = append(got, string(iter.Key()))
	}
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestEngine_NewIterFullRangeOrdersKeys(t *testing.T) {
	e := newTestEngine(t)

	keys := []string{"z", "a", "m"}
	for _, k := range keys {
		require.NoError(t, e.Put([]byte(k), []byte(k)))
	}

	iter, err := e.NewIter(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var got []string
	for iter.First(); iter.Valid(); iter.Next() {
		got = append(got, string(iter.Key()))
	}
	assert.Equal(t, []string{"a", "m", "z"}, got)
}

func TestNewSurrogateID_IsTimeSortable(t *testing.T) {
	first := NewSurrogateID()
	second := NewSurrogateID()
	assert.True(t, first.Time().Unix() <= second.Time().Unix())
	assert.NotEqual(t, first.String(), second.String())
}
