package nats

import (
	"github.com/hnhuaxi/scoped"
	"github.com/nats-io/nats.go"
)

// Conn is the process-wide shared NATS connection.
type Conn struct {
	*nats.Conn
}

func init() {
	scoped.Define[Conn](func(args ...any) (*Conn, error) {
		var (
			url  = nats.DefaultURL
			opts []nats.Option
		)

		for _, arg := range args {
			switch v := arg.(type) {
			case string:
				if v != "" {
					url = v
				}
			case nats.Option:
				opts = append(opts, v)
			case []nats.Option:
				opts = append(opts, v...)
			}
		}

		nc, err := nats.Connect(url, opts...)
		if err != nil {
			return nil, err
		}
		return &Conn{Conn: nc}, nil
	})
}

// Connect returns the shared connection, dialing on first use. A failed dial
// leaves the slot empty, so the next call retries.
func Connect(url string, opts ...nats.Option) (*Conn, error) {
	return scoped.Instance[Conn](url, opts)
}
