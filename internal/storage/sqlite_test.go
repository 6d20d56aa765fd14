package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "state.db")
	s, err := NewSQLiteStore(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "authState", []byte(`{"isAuthenticated":true}`)))

	got, err := s.Load(ctx, "authState")
	require.NoError(t, err)
	require.JSONEq(t, `{"isAuthenticated":true}`, string(got))
}

func TestSQLiteStore_LoadAbsentKey(t *testing.T) {
	s := newSQLiteStore(t)

	got, err := s.Load(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "booksState", []byte("v1")))
	require.NoError(t, s.Save(ctx, "booksState", []byte("v2")))

	got, err := s.Load(ctx, "booksState")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Save(ctx, "authState", []byte("x")))
	require.NoError(t, s.Delete(ctx, "authState"))

	got, err := s.Load(ctx, "authState")
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again is not an error
	require.NoError(t, s.Delete(ctx, "authState"))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "state.db")

	s, err := NewSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "rentalsState_1", []byte("rentals")))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, "rentalsState_1")
	require.NoError(t, err)
	require.Equal(t, []byte("rentals"), got)
}
