package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/ridenow/user-service/internal/core/domain"
)

func newTestCache(t *testing.T) (*UserCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClient(Config{Addr: mr.Addr(), Timeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	return NewUserCache(client, 0), mr
}

func TestUserCache_RoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	user := &domain.UserRecord{ID: "u1", Name: "Alice", Role: "rider"}

	require.NoError(t, cache.Set(ctx, "user:u1", user, time.Minute))

	got, found, err := cache.Get(ctx, "user:u1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, user, got)

	raw, err := mr.Get("user:u1")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1","name":"Alice","role":"rider"}`, raw)
}

func TestUserCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, found, err := cache.Get(context.Background(), "user:nobody")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, got)
}

func TestUserCache_DefaultTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	user := &domain.UserRecord{ID: "u1", Name: "Alice", Role: "rider"}

	require.NoError(t, cache.Set(context.Background(), "user:u1", user, 0))
	require.Equal(t, DefaultTTL, mr.TTL("user:u1"))
}

func TestUserCache_ExpiredBehavesAsNeverWritten(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	user := &domain.UserRecord{ID: "u1", Name: "Alice", Role: "rider"}

	require.NoError(t, cache.Set(ctx, "user:u1", user, 10*time.Second))
	mr.FastForward(11 * time.Second)

	got, found, err := cache.Get(ctx, "user:u1")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, got)
}

func TestUserCache_BackendFailureIsNotAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	_, found, err := cache.Get(context.Background(), "user:u1")
	require.False(t, found)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrBackendUnavailable))

	err = cache.Set(context.Background(), "user:u1", &domain.UserRecord{ID: "u1"}, time.Minute)
	require.True(t, errors.Is(err, domain.ErrBackendUnavailable))
}

func TestUserCache_ServerGone(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "user:u1")
	require.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestUserCache_CorruptPayload(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("user:u1", "not-json"))

	_, found, err := cache.Get(context.Background(), "user:u1")
	require.False(t, found)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrBackendUnavailable))
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Config{Addr: addr, Timeout: 100 * time.Millisecond})
	require.Error(t, err)
}

func TestConnect_OK(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NoError(t, client.Close())
}
