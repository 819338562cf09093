package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/coc-sheet-api/internal/redis"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect(redis.Topology{Addrs: []string{mr.Addr()}}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "character:ping", "pong", 0).Err())
	got, err := mr.Get("character:ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}

func TestConnectTopology(t *testing.T) {
	_, err := redis.Connect(redis.Topology{}, nil)
	assert.Error(t, err)

	cluster, err := redis.Connect(redis.Topology{Addrs: []string{"a:7000", "b:7000"}}, nil)
	require.NoError(t, err)
	_ = cluster.Close()

	failover, err := redis.Connect(redis.Topology{Addrs: []string{"s:26379"}, MasterName: "main"}, nil)
	require.NoError(t, err)
	_ = failover.Close()

	_, err = redis.NewFailoverClient("main", nil, nil)
	assert.Error(t, err)
	_, err = redis.NewClient("", nil)
	assert.Error(t, err)
}
