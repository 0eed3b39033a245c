// Package scoped provides a lazily created, weak-referenced singleton per Go
// type: the shared instance lives exactly as long as at least one caller holds
// the pointer returned by Instance, and is rebuilt on the next access after
// the garbage collector reclaims it.
package scoped

import (
	"io"
	"reflect"
	"sync"

	"github.com/hnhuaxi/scoped/weakref"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// slot is the per-type storage cell. It never owns the instance: resolve is
// backed by a weak handle, so a populated slot cannot keep its referent alive.
type slot struct {
	mu      sync.Mutex
	resolve func() (any, bool)
	stats   counters
}

var slots sync.Map // reflect.Type -> *slot

func getSlot(tt reflect.Type) *slot {
	if s, ok := slots.Load(tt); ok {
		return s.(*slot)
	}

	s, _ := slots.LoadOrStore(tt, &slot{})
	return s.(*slot)
}

// Instance returns the current shared instance of T, constructing one when
// the slot is empty or its previous instance has been reclaimed. The whole
// check-construct-store sequence runs under the slot lock.
//
// args reach the construction hook only when a new instance is actually
// built; while a live instance exists they are silently ignored, so the first
// successful construction's arguments win for that instance's lifetime.
//
// On hook failure the error is returned as-is and the slot stays empty, so
// the next call retries construction from scratch.
func Instance[T any](args ...any) (*T, error) {
	var (
		tt = reflect.TypeFor[T]()
		s  = getSlot(tt)
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolve != nil {
		if v, ok := s.resolve(); ok {
			s.stats.hits.Inc()
			logger.Debug("promote live instance", zap.Stringer("type", tt))
			return v.(*T), nil
		}
		logger.Debug("instance expired", zap.Stringer("type", tt))
	}

	v, err := construct[T](tt, args)
	if err != nil {
		s.resolve = nil
		s.stats.failures.Inc()
		logger.Debug("construct failed", zap.Stringer("type", tt), zap.Error(err))
		return nil, err
	}

	ref := weakref.Make(v)
	s.resolve = func() (any, bool) {
		if v, ok := ref.Get(); ok {
			return v, true
		}
		return nil, false
	}
	s.stats.constructions.Inc()
	logger.Debug("construct instance", zap.Stringer("type", tt))
	return v, nil
}

// Live promotes the current instance of T without constructing. ok is false
// when the slot is empty or the instance has been reclaimed.
func Live[T any]() (v *T, ok bool) {
	s := getSlot(reflect.TypeFor[T]())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolve == nil {
		return nil, false
	}

	got, ok := s.resolve()
	if !ok {
		return nil, false
	}
	return got.(*T), true
}

// Forget drops T's slot handle. Callers already holding the instance keep it;
// the next Instance call constructs a fresh one regardless.
func Forget[T any]() {
	s := getSlot(reflect.TypeFor[T]())

	s.mu.Lock()
	s.resolve = nil
	s.mu.Unlock()
}

// Shutdown closes every live instance that implements io.Closer and forgets
// all slots. Close errors are aggregated, not short-circuited.
func Shutdown() error {
	var errs error

	slots.Range(func(_, value any) bool {
		s := value.(*slot)

		s.mu.Lock()
		if s.resolve != nil {
			if v, ok := s.resolve(); ok {
				if closer, ok := v.(io.Closer); ok {
					errs = multierr.Append(errs, closer.Close())
				}
			}
			s.resolve = nil
		}
		s.mu.Unlock()
		return true
	})

	return errs
}
