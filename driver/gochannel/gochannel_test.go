package gochannel

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/hnhuaxi/scoped"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShared(t *testing.T) {
	ps, err := New(gochannel.Config{})
	require.NoError(t, err)

	again, err := New(gochannel.Config{OutputChannelBuffer: 16})
	require.NoError(t, err)
	assert.Same(t, ps, again)

	msgs, err := ps.Subscribe(context.Background(), "audit")
	require.NoError(t, err)

	sent := message.NewMessage(watermill.NewUUID(), []byte("payload"))
	require.NoError(t, ps.Publish("audit", sent))

	select {
	case got := <-msgs:
		assert.Equal(t, sent.UUID, got.UUID)
		assert.Equal(t, []byte("payload"), []byte(got.Payload))
		got.Ack()
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	require.NoError(t, scoped.Shutdown())

	_, ok := scoped.Live[PubSub]()
	assert.False(t, ok)
}
