package primfn

import "errors"

var (
	// ErrNilFunc, ErrNilSupplier and ErrNilConsumer report an absent argument.
	// Combinators panic with them eagerly, at combination time, so that a
	// badly wired chain fails before its first pull.
	ErrNilFunc     = errors.New("nil function")
	ErrNilSupplier = errors.New("nil supplier")
	ErrNilConsumer = errors.New("nil consumer")

	ErrNotFunc      = errors.New("provided value is not a function")
	ErrBadArity     = errors.New("function has the wrong number of parameters or results")
	ErrKindMismatch = errors.New("function parameter or result kind is not compatible")
)
