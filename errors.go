package empower

import "github.com/cockroachdb/errors"

// Usage errors. They are returned immediately and never retried.
var (
	// ErrInvalidTarget is returned when Enhance receives something that is
	// neither an assertion function nor an assertion object.
	ErrInvalidTarget = errors.New("empower argument should be a function or object")

	// ErrDestructiveFunc is returned when destructive enhancement is requested
	// for a callable target.
	ErrDestructiveFunc = errors.New("cannot use destructive enhancement on a function")

	ErrNilFormatter = errors.New("formatter must not be nil")

	// ErrInvalidConfig is returned for unknown keys or mistyped values in a
	// configuration map or document.
	ErrInvalidConfig = errors.New("invalid enhancement configuration")

	// ErrInvalidMethod is returned when a method does not have an assertion
	// shape: func(any, string) error or func(any, any, string) error.
	ErrInvalidMethod = errors.New("invalid assertion method")

	// ErrUnknownMethod is returned when calling a method an object does not
	// define, or calling it with the wrong number of arguments.
	ErrUnknownMethod = errors.New("unknown assertion method")

	// ErrArgumentType is returned by reflectively adapted methods when an
	// argument cannot be assigned to the parameter type.
	ErrArgumentType = errors.New("assertion argument has the wrong type")
)
