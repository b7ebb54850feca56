package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-session-server/token/refresh"
	"github.com/jrsteele09/go-session-server/token/refresh/redisstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to REDIS_ADDR (default localhost:6379) and skips the test
// when no server answers.
func newTestStore(t *testing.T) *redisstore.Store {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})

	store := redisstore.New(client, redisstore.WithPrefix("session-server:test:"+uuid.NewString()+":"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		t.Skipf("Redis not available at %s: %v", addr, err)
	}
	return store
}

func TestSetGetDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte(`{"id":1}`), time.Minute))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, `{"id":1}`, string(value))

	require.NoError(t, store.Delete(ctx, "key"))
	_, err = store.Get(ctx, "key")
	require.ErrorIs(t, err, refresh.ErrKeyNotFound)

	// deleting again is fine
	require.NoError(t, store.Delete(ctx, "key"))
}

func TestGetExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "short", []byte("v"), 50*time.Millisecond))
	require.Eventually(t, func() bool {
		_, err := store.Get(ctx, "short")
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)

	_, err := store.Get(ctx, "short")
	require.ErrorIs(t, err, refresh.ErrKeyNotFound)
}

func TestEmptyKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.Error(t, store.Set(ctx, "", []byte("v"), time.Minute))
	_, err := store.Get(ctx, "")
	require.ErrorIs(t, err, refresh.ErrKeyNotFound)
	require.NoError(t, store.Delete(ctx, ""))
}

func TestUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	store := redisstore.New(client)

	_, err := store.Get(context.Background(), "key")
	require.Error(t, err)
	require.NotErrorIs(t, err, refresh.ErrKeyNotFound)
}
