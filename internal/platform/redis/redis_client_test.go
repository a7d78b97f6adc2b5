package redis

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investiguide_backend/internal/platform/config"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), config.RedisConfig{})

	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClient_Connects(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	rdb, err := NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	require.NotNil(t, rdb)
	defer func() { _ = rdb.Close() }()

	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	rdb, err := NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port})

	assert.Error(t, err)
	assert.Nil(t, rdb)
}
