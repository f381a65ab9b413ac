package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgRedis "coffee-assistant/pkg/redis"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := pkgRedis.New(context.Background(), pkgRedis.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	assert.Equal(t, "v", client.Get(context.Background(), "k").Val())
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := pkgRedis.New(context.Background(), pkgRedis.Config{Addr: addr})
	assert.Error(t, err)
}
