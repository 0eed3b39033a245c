package nsq

import (
	"testing"

	"github.com/hnhuaxi/scoped"
	"github.com/nsqio/go-nsq"
	"github.com/tj/assert"
)

func TestConnectShared(t *testing.T) {
	p, err := Connect("127.0.0.1:4150", nil)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	again, err := Connect("127.0.0.1:4151", nsq.NewConfig())
	assert.NoError(t, err)
	assert.True(t, p == again)

	p.Stop()
	scoped.Forget[Producer]()
}

func TestConnectMissingAddr(t *testing.T) {
	scoped.Forget[Producer]()

	_, err := Connect("", nil)
	assert.Error(t, err)

	_, ok := scoped.Live[Producer]()
	assert.False(t, ok)
}
