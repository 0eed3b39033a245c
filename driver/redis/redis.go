package redis

import (
	"github.com/go-redis/redis/v8"
	"github.com/hnhuaxi/scoped"
	"github.com/pkg/errors"
)

// Conn is the process-wide shared redis client. The slot holds it weakly, so
// dropping every Conn lets the client be collected; the next Client call
// dials a fresh one from its own arguments.
type Conn struct {
	*redis.Client
}

func init() {
	scoped.Define[Conn](func(args ...any) (*Conn, error) {
		for _, arg := range args {
			switch v := arg.(type) {
			case *redis.Options:
				return &Conn{Client: redis.NewClient(v)}, nil
			case *redis.Client:
				// adopt an existing client, e.g. a redismock one
				return &Conn{Client: v}, nil
			}
		}
		return nil, errors.Wrap(scoped.ErrConstruction, "redis: missing *redis.Options or *redis.Client argument")
	})
}

// Client returns the shared connection, constructing it on first use. Like
// every scoped instance, arguments are consumed only when a new client is
// actually built.
func Client(args ...any) (*Conn, error) {
	return scoped.Instance[Conn](args...)
}
