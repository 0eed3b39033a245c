// Package weakref wraps the runtime's weak pointers in a promote-or-fail
// expiring handle. A Ref contributes nothing to its referent's lifetime: once
// every strong pointer is gone and the collector runs, Get reports expiry.
package weakref

import "weak"

type Ref[T any] struct {
	p weak.Pointer[T]
}

// Make creates a non-owning handle to ptr.
func Make[T any](ptr *T) Ref[T] {
	return Ref[T]{p: weak.Make(ptr)}
}

// Get promotes the handle back to a strong pointer. ok is false once the
// referent has been reclaimed; the zero Ref always reports false.
func (r Ref[T]) Get() (*T, bool) {
	p := r.p.Value()
	return p, p != nil
}
