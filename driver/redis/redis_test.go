package redis

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/hnhuaxi/scoped"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientShared(t *testing.T) {
	db, mock := redismock.NewClientMock()

	conn, err := Client(db)
	require.NoError(t, err)
	require.NotNil(t, conn)

	// options on a later call are dropped while the first client lives
	again, err := Client(&redis.Options{Addr: "127.0.0.1:6379"})
	require.NoError(t, err)
	assert.Same(t, conn, again)

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, conn.Ping(context.Background()).Err())
	require.NoError(t, mock.ExpectationsWereMet())

	scoped.Forget[Conn]()
}

func TestClientMissingArgs(t *testing.T) {
	scoped.Forget[Conn]()

	_, err := Client()
	require.Error(t, err)
	assert.True(t, errors.Is(err, scoped.ErrConstruction))

	_, ok := scoped.Live[Conn]()
	assert.False(t, ok)
}
