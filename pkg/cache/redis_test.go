package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPrefixKey(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"footprint:", "artifact:abc", "footprint:cache:artifact:abc"},
		{"", "layout:x", "cache:layout:x"},
	}
	for _, tt := range tests {
		c := NewRedisCacheFromClient(nil, tt.prefix)
		if got := c.prefixKey(tt.key); got != tt.want {
			t.Errorf("prefixKey(%q) with prefix %q = %q, want %q", tt.key, tt.prefix, got, tt.want)
		}
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	// Reserve a port and release it, so nothing is listening there.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skip("cannot open a local port")
	}
	addr := l.Addr().String()
	l.Close()

	_, err = NewRedisCache(context.Background(), addr,
		WithRedisTimeouts(200*time.Millisecond, 200*time.Millisecond, 200*time.Millisecond))
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("NewRedisCache = %v, want ErrConnectionFailed", err)
	}
}

func TestRedisSetRejectsEmptyKey(t *testing.T) {
	c := NewRedisCacheFromClient(nil, "")
	if err := c.Set(context.Background(), "", nil, 0); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Set(\"\") = %v, want ErrInvalidKey", err)
	}
}

func TestWrapRedisError(t *testing.T) {
	if wrapRedisError(nil) != nil {
		t.Error("nil should stay nil")
	}
	if err := wrapRedisError(context.DeadlineExceeded); !IsRetryable(err) || !errors.Is(err, ErrTimeout) {
		t.Errorf("deadline: %v", err)
	}
	if err := wrapRedisError(context.Canceled); IsRetryable(err) {
		t.Error("cancellation should not be retried")
	}
	plain := errors.New("WRONGTYPE")
	if err := wrapRedisError(plain); err != plain {
		t.Errorf("plain error changed: %v", err)
	}
}

func TestRedisConfigOptions(t *testing.T) {
	cfg := DefaultRedisConfig()
	for _, opt := range []RedisOption{
		WithRedisPassword("secret"),
		WithRedisDB(2),
		WithRedisKeyPrefix("ci:"),
	} {
		opt(&cfg)
	}
	if cfg.Password != "secret" || cfg.DB != 2 || cfg.KeyPrefix != "ci:" {
		t.Errorf("options not applied: %+v", cfg)
	}
	if cfg.Addr != "localhost:6379" {
		t.Errorf("default addr = %s", cfg.Addr)
	}
}

func newMiniRedisCache(t *testing.T, prefix string) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: srv.Addr()}), prefix)
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestRedisCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, srv := newMiniRedisCache(t, "footprint:")

	_, hit, err := c.Get(ctx, "artifact:energy.svg")
	require.NoError(t, err, "a missing key is a miss, not an error")
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "artifact:energy.svg", []byte("<svg/>"), 0))
	assert.True(t, srv.Exists("footprint:cache:artifact:energy.svg"))

	data, hit, err := c.Get(ctx, "artifact:energy.svg")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("<svg/>"), data)

	require.NoError(t, c.Delete(ctx, "artifact:energy.svg"))
	_, hit, err = c.Get(ctx, "artifact:energy.svg")
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, c.Delete(ctx, "artifact:energy.svg"), "deleting a missing key")
}

func TestRedisCacheTTL(t *testing.T) {
	ctx := context.Background()
	c, srv := newMiniRedisCache(t, "footprint:")

	require.NoError(t, c.Set(ctx, "layout:diet", []byte("{}"), time.Minute))
	require.NoError(t, c.Set(ctx, "layout:water", []byte("{}"), 0))
	assert.Equal(t, time.Minute, srv.TTL("footprint:cache:layout:diet"))
	assert.Zero(t, srv.TTL("footprint:cache:layout:water"), "no ttl means no expiry")

	srv.FastForward(2 * time.Minute)

	_, hit, err := c.Get(ctx, "layout:diet")
	require.NoError(t, err)
	assert.False(t, hit, "expired entry returned")
	_, hit, err = c.Get(ctx, "layout:water")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestRedisCacheClear(t *testing.T) {
	ctx := context.Background()
	c, srv := newMiniRedisCache(t, "footprint:")

	const n = 250
	for i := 0; i < n; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("artifact:%03d", i), []byte("x"), 0))
	}
	require.NoError(t, srv.Set("footprint:settings", "keep"))
	require.NoError(t, srv.Set("other:cache:artifact:000", "keep"))
	require.Len(t, srv.Keys(), n+2)

	require.NoError(t, c.Clear(ctx))

	assert.ElementsMatch(t, []string{"footprint:settings", "other:cache:artifact:000"}, srv.Keys())
	require.NoError(t, c.Clear(ctx), "clearing an empty cache")
}

func TestRedisCacheServerError(t *testing.T) {
	ctx := context.Background()
	c, srv := newMiniRedisCache(t, "footprint:")

	srv.SetError("ERR injected failure")
	_, _, err := c.Get(ctx, "artifact:x")
	assert.Error(t, err)
	assert.False(t, IsRetryable(err), "server errors are not retried")

	srv.SetError("")
	_, _, err = c.Get(ctx, "artifact:x")
	assert.NoError(t, err)
}
