package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*miniredis.Miniredis, *RedisStorage) {
	t.Helper()
	srv := miniredis.RunT(t)

	store, err := NewRedis(srv.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return srv, store
}

func TestNewRedis_BadAddress(t *testing.T) {
	_, err := NewRedis("127.0.0.1:0", "", 0)
	assert.Error(t, err)
}

func TestGet_MissingKeyIsNotAnError(t *testing.T) {
	_, store := newTestStorage(t)

	// The limiter treats nil as absence; an error here would count every
	// first request as a storage failure.
	val, err := store.Get("absent")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestSetGetRoundTrip(t *testing.T) {
	_, store := newTestStorage(t)

	require.NoError(t, store.Set("hits:10.0.0.1", []byte("3"), time.Minute))

	val, err := store.Get("hits:10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)
}

func TestSet_ExpirationIsHonored(t *testing.T) {
	srv, store := newTestStorage(t)

	require.NoError(t, store.Set("hits:10.0.0.1", []byte("3"), 50*time.Millisecond))
	srv.FastForward(time.Minute)

	val, err := store.Get("hits:10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestDelete(t *testing.T) {
	_, store := newTestStorage(t)

	require.NoError(t, store.Set("hits:10.0.0.1", []byte("3"), time.Minute))
	require.NoError(t, store.Delete("hits:10.0.0.1"))

	val, err := store.Get("hits:10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestReset(t *testing.T) {
	_, store := newTestStorage(t)

	require.NoError(t, store.Set("hits:10.0.0.1", []byte("3"), time.Minute))
	require.NoError(t, store.Set("hits:10.0.0.2", []byte("7"), time.Minute))
	require.NoError(t, store.Reset())

	val, err := store.Get("hits:10.0.0.1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestPing(t *testing.T) {
	srv, store := newTestStorage(t)

	assert.NoError(t, store.Ping(context.Background()))

	srv.Close()
	assert.Error(t, store.Ping(context.Background()))
}
