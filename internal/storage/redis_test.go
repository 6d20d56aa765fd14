package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newRedisStore(t)

	require.NoError(t, s.Save(ctx, "wishlistState_2", []byte(`{"wishlist":[1,2]}`)))

	got, err := s.Load(ctx, "wishlistState_2")
	require.NoError(t, err)
	require.JSONEq(t, `{"wishlist":[1,2]}`, string(got))
}

func TestRedisStore_LoadAbsentKey(t *testing.T) {
	s := newRedisStore(t)

	got, err := s.Load(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisStore_DeleteAbsentKey(t *testing.T) {
	s := newRedisStore(t)
	require.NoError(t, s.Delete(context.Background(), "missing"))
}

func TestRedisStore_ErrorsWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "")
	defer s.Close()
	mr.Close()

	ctx := context.Background()
	require.Error(t, s.Save(ctx, "k", []byte("v")))
	_, err := s.Load(ctx, "k")
	require.Error(t, err)
}
