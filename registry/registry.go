package registry

import (
	"reflect"
	"sync"

	"golang.org/x/exp/maps"
)

type Ctor[T any] func(args ...any) (T, error)

// Registry maps a type identity to its construction hook. The zero value is
// ready to use.
type Registry[T any] struct {
	mu  sync.RWMutex
	set map[reflect.Type]Ctor[T]
}

func (reg *Registry[T]) init() {
	if reg.set == nil {
		reg.set = make(map[reflect.Type]Ctor[T])
	}
}

func (reg *Registry[T]) Register(tt reflect.Type, ctor Ctor[T]) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	reg.init()
	reg.set[tt] = ctor
}

func (reg *Registry[T]) Unregister(tt reflect.Type) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	delete(reg.set, tt)
}

func (reg *Registry[T]) Lookup(tt reflect.Type) (ctor Ctor[T], ok bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	ctor, ok = reg.set[tt]
	return ctor, ok
}

// Types lists the registered identities in no particular order.
func (reg *Registry[T]) Types() []reflect.Type {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	return maps.Keys(reg.set)
}
