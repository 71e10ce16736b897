package primfn

import "primfn/primitive"

// Supplier is a zero-argument producer of values. A supplier is not required
// to be pure: it may have side effects and may produce a different value on
// each pull.
type Supplier[T any] func() T

// Get pulls a value from the supplier.
func (s Supplier[T]) Get() T {
	return s()
}

// Const returns a supplier that always produces v.
func Const[T any](v T) Supplier[T] {
	return func() T { return v }
}

// To returns a supplier producing this supplier's value cast to T, following
// the Cast rules. The result is lazy: s is pulled once per Get of the
// returned supplier, never at combination time. Panics with ErrNilSupplier
// if s is absent.
func To[T, S primitive.Number](s Supplier[S]) Supplier[T] {
	if s == nil {
		panic(ErrNilSupplier)
	}

	cast := Cast[S, T]()
	return func() T { return cast(s()) }
}

// Map returns a supplier producing fn applied to this supplier's value. The
// underlying supplier is pulled exactly once per Get and nothing is cached.
// Panics with ErrNilSupplier or ErrNilFunc if an argument is absent.
func Map[S, T any](s Supplier[S], fn Func[S, T]) Supplier[T] {
	if s == nil {
		panic(ErrNilSupplier)
	}
	if fn == nil {
		panic(ErrNilFunc)
	}

	return func() T { return fn(s()) }
}
