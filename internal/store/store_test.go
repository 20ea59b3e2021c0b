package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"pixel-weather/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSQLite(t *testing.T) *SQLite {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func backends(t *testing.T) map[string]KV {
	return map[string]KV{
		"memory": NewMemory(),
		"sqlite": newSQLite(t),
	}
}

func TestKV_Contract(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))
			got, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":2}`)))
			got, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(got))

			require.NoError(t, kv.Delete(ctx, "k"))
			_, err = kv.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			assert.NoError(t, kv.Delete(ctx, "never-set"))
		})
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := NewSQLite(path, discardLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, CitiesKey, []byte(`["Paris"]`)))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path, discardLogger())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, CitiesKey)
	require.NoError(t, err)
	assert.Equal(t, `["Paris"]`, string(got))
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	value := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	kv, err := New(ctx, config.StoreConfig{Driver: "memory"}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)

	kv, err = New(ctx, config.StoreConfig{Driver: "SQLite", Path: filepath.Join(t.TempDir(), "new.db")}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, kv)
	require.NoError(t, kv.Close())

	_, err = New(ctx, config.StoreConfig{Driver: "etcd"}, discardLogger())
	assert.Error(t, err)
}
