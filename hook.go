package scoped

import (
	"reflect"

	"github.com/creasty/defaults"
	"github.com/hnhuaxi/scoped/registry"
)

// Ctor builds a new instance of T from the arguments forwarded by Instance.
// Returning an error (or a nil instance) signals construction failure; the
// slot is left untouched and any side effects already performed by the ctor
// are the ctor author's responsibility to undo.
type Ctor[T any] func(args ...any) (*T, error)

// Constructible lets a type own its construction without registering a ctor:
// the default hook allocates a zero value and calls Construct on it.
type Constructible interface {
	Construct(args ...any) error
}

var ctors registry.Registry[any]

// Define registers ctor as the construction hook for T, replacing any
// previous registration.
func Define[T any](ctor Ctor[T]) {
	ctors.Register(reflect.TypeFor[T](), func(args ...any) (any, error) {
		v, err := ctor(args...)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
		return v, nil
	})
}

// Undefine removes T's registered ctor, restoring the default hook.
func Undefine[T any]() {
	ctors.Unregister(reflect.TypeFor[T]())
}

// construct resolves the hook for tt, most specific first: a Define'd ctor,
// then a Construct method on *T, then allocate plus struct-tag defaults.
func construct[T any](tt reflect.Type, args []any) (*T, error) {
	if ctor, ok := ctors.Lookup(tt); ok {
		v, err := ctor(args...)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, ErrNilInstance
		}
		return v.(*T), nil
	}

	v := new(T)
	if c, ok := any(v).(Constructible); ok {
		if err := c.Construct(args...); err != nil {
			return nil, err
		}
		return v, nil
	}

	if tt.Kind() == reflect.Struct {
		if err := defaults.Set(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
