package nsq

import (
	"github.com/hnhuaxi/scoped"
	"github.com/nsqio/go-nsq"
	"github.com/pkg/errors"
)

// Producer is the process-wide shared nsqd producer. go-nsq dials lazily on
// first publish, so construction itself never touches the network.
type Producer struct {
	*nsq.Producer
}

func init() {
	scoped.Define[Producer](func(args ...any) (*Producer, error) {
		var (
			addr   string
			config = nsq.NewConfig()
		)

		for _, arg := range args {
			switch v := arg.(type) {
			case string:
				addr = v
			case *nsq.Config:
				if v != nil {
					config = v
				}
			}
		}

		if addr == "" {
			return nil, errors.Wrap(scoped.ErrConstruction, "nsq: missing nsqd address")
		}

		p, err := nsq.NewProducer(addr, config)
		if err != nil {
			return nil, err
		}
		return &Producer{Producer: p}, nil
	})
}

// Connect returns the shared producer for addr. config may be nil.
func Connect(addr string, config *nsq.Config) (*Producer, error) {
	return scoped.Instance[Producer](addr, config)
}
