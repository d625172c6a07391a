package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mptransport/db"
)

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisDB(mr.Addr(), "", 0)

	require.NoError(t, r.Connect(context.Background()))
	assert.Equal(t, db.Redis, r.Type())
	require.NotNil(t, r.Locker)
	require.NoError(t, r.Client.Set(context.Background(), "k", "v", 0).Err())
	assert.NoError(t, r.Disconnect(context.Background()))
}

func TestConnectFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	r := NewRedisDB(addr, "", 0)
	assert.Error(t, r.Connect(context.Background()))
	assert.Nil(t, r.Client)
	assert.NoError(t, r.Disconnect(context.Background()))
}
