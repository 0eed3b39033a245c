package gochannel

import (
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/hnhuaxi/scoped"
)

// PubSub is the process-wide shared in-process pub/sub. It implements
// io.Closer, so scoped.Shutdown tears it down with everything else.
type PubSub struct {
	*gochannel.GoChannel
}

func init() {
	scoped.Define[PubSub](func(args ...any) (*PubSub, error) {
		var config gochannel.Config

		for _, arg := range args {
			if v, ok := arg.(gochannel.Config); ok {
				config = v
			}
		}

		return &PubSub{GoChannel: gochannel.NewGoChannel(config, scoped.Logger)}, nil
	})
}

// New returns the shared pub/sub, creating it on first use.
func New(config gochannel.Config) (*PubSub, error) {
	return scoped.Instance[PubSub](config)
}
