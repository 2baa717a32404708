package session

import (
	"campo-cidade/app/server/constants"
	"context"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb), mr
}

func testStoreRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()
	id := uuid.New()

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	state, err := Initial().LogIn(Identity{ID: 5, Name: "Ana", Email: "ana@campo.br"})
	require.NoError(t, err)
	state, err = state.BeginEdit(9)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, id, state))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	testStoreRoundTrip(t, store)
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestRedisStore_Expires(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.Save(ctx, id, Initial()))
	assert.Equal(t, constants.CacheExpireSession, mr.TTL(fmt.Sprintf(constants.CacheKeySession, id)))

	mr.FastForward(constants.CacheExpireSession + time.Second)
	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_DropsCorruptEntry(t *testing.T) {
	store, mr := newRedisStore(t)
	id := uuid.New()
	key := fmt.Sprintf(constants.CacheKeySession, id)
	require.NoError(t, mr.Set(key, "{not json"))

	_, err := store.Load(context.Background(), id)
	assert.Error(t, err)
	assert.False(t, mr.Exists(key))
}

func TestMemoryStore_Expires(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }
	id := uuid.New()

	require.NoError(t, store.Save(context.Background(), id, Initial()))

	now = now.Add(constants.CacheExpireSession + time.Second)
	_, err := store.Load(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
