package nats

import (
	"testing"
	"time"

	"github.com/hnhuaxi/scoped"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectFailureLeavesSlotEmpty(t *testing.T) {
	_, err := Connect("nats://127.0.0.1:1",
		nats.Timeout(100*time.Millisecond),
		nats.RetryOnFailedConnect(false),
	)
	require.Error(t, err)

	_, ok := scoped.Live[Conn]()
	assert.False(t, ok)

	// the failure is not cached, the retry dials again
	_, err = Connect("nats://127.0.0.1:1", nats.Timeout(100*time.Millisecond))
	require.Error(t, err)
}
