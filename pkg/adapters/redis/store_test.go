package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/wilayah/pkg/adapters/redis"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ports.RunSelectionStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }
	store := redis.NewFromClient(client, redis.WithTTL(time.Second), redis.WithClock(clock))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-ttl", domain.Selection{Province: domain.Some(32)}))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, sessions, "session-ttl")

	// Expire the key in redis and move the index clock past the deadline.
	mr.FastForward(2 * time.Second)
	now = now.Add(2 * time.Second)

	_, err = store.Load(ctx, "session-ttl")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", domain.Selection{Province: domain.Some(1), Regency: domain.Some(10)}))
	assert.True(t, mr.Exists("app:abc"))
	assert.Equal(t, "app:", store.Prefix())

	raw, err := mr.Get("app:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"province":1,"regency":10,"district":null}`, raw)
}

func TestRedisStore_NoTTL(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "forever", domain.Selection{}))
	assert.Equal(t, time.Duration(0), mr.TTL(redis.DefaultPrefix+"forever"))
	require.NoError(t, store.Ping(ctx))
}
