package scoped

import (
	"reflect"

	"go.uber.org/atomic"
)

// Stats is a point-in-time snapshot of a slot's counters.
type Stats struct {
	Hits          int64
	Constructions int64
	Failures      int64
}

type counters struct {
	hits          atomic.Int64
	constructions atomic.Int64
	failures      atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Hits:          c.hits.Load(),
		Constructions: c.constructions.Load(),
		Failures:      c.failures.Load(),
	}
}

// Stat reports T's slot counters. Counters survive expiry and Forget; they
// describe the slot, not any one instance.
func Stat[T any]() Stats {
	return getSlot(reflect.TypeFor[T]()).stats.snapshot()
}
