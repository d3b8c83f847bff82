package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *IdempotencyStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewIdempotencyStore(client)
}

func TestCheckAndSetClaimsAbsentKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	exists, cached, err := store.CheckAndSet(ctx, "pago-prestamo:TXN-1", []byte("processing"), time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, cached)
}

func TestCheckAndSetReturnsExistingValue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "k", []byte("processing"), time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, "k", []byte(`{"codRespuesta":"0"}`), time.Minute))

	exists, cached, err := store.CheckAndSet(ctx, "k", []byte("processing"), time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, `{"codRespuesta":"0"}`, string(cached))
}

func TestCheckAndSetSecondClaimSeesMarker(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, err := store.CheckAndSet(ctx, "k", []byte("processing"), time.Minute)
	require.NoError(t, err)

	exists, cached, err := store.CheckAndSet(ctx, "k", []byte("processing"), time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "processing", string(cached))
}
