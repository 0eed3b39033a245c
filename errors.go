package scoped

import "github.com/pkg/errors"

var (
	// ErrConstruction marks construction-hook failures. Providers wrap it
	// when they reject their arguments before touching any resource.
	ErrConstruction = errors.New("construction failed")

	// ErrNilInstance reports a hook that returned neither an instance nor
	// an error.
	ErrNilInstance = errors.Wrap(ErrConstruction, "constructor returned nil instance")
)
