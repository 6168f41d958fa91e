package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBackends_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	for _, backend := range Backends {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			s, err := Open(backend, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			_, ok, err := s.Get(DefaultKey)
			require.NoError(t, err)
			require.False(t, ok, "missing key must report ok=false")

			require.NoError(t, s.Set(DefaultKey, []byte(`{"version":1}`)))
			require.NoError(t, s.Set(DefaultKey, []byte(`{"version":2}`)))

			got, ok, err := s.Get(DefaultKey)
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `{"version":2}`, string(got))
		})
	}
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("emotions", []byte("[]")))
	require.NoError(t, s.Close())
	require.Equal(t, filepath.Join(dir, sqliteFileName), s.Path())

	s2, err := Open(BackendSQLite, dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })
	got, ok, err := s2.Get("emotions")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", string(got))
}

func TestFileKV_WritesOneFilePerKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kv := &FileKV{Dir: dir}
	require.NoError(t, kv.Set("emotions", []byte("[1]")))

	b, err := os.ReadFile(filepath.Join(dir, "emotions.json"))
	require.NoError(t, err)
	require.Equal(t, "[1]", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "tmp files must not be left behind")

	require.Error(t, kv.Set("../escape", nil))
	_, _, err = kv.Get("")
	require.Error(t, err)
}

func TestMemKV_InjectedErrors(t *testing.T) {
	t.Parallel()

	kv := NewMemKV()
	boom := errors.New("disk full")
	kv.SetErr = boom
	require.ErrorIs(t, kv.Set("k", []byte("v")), boom)

	kv.SetErr = nil
	require.NoError(t, kv.Set("k", []byte("v")))
	kv.GetErr = boom
	_, _, err := kv.Get("k")
	require.ErrorIs(t, err, boom)
}

func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	_, err := Open("postgres", t.TempDir())
	require.ErrorContains(t, err, "unknown backend")

	_, err = Open(BackendFile, "")
	require.ErrorContains(t, err, "missing data dir")

	s, err := Open("", t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.Equal(t, BackendSQLite, s.Backend)

	m, err := Open(BackendMemory, "")
	require.NoError(t, err)
	require.Empty(t, m.Path())
}
