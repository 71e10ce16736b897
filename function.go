package primfn

import (
	"math"

	"primfn/primitive"
	"primfn/utils"
)

// Func is a pure conversion from S to T. Instantiated with primitive types it
// monomorphizes to a direct call with no boxing; instantiated with T = any it
// doubles as the escape hatch into object-typed results.
//
// Purity is assumed, not enforced: composition relies on a Func yielding the
// same output for the same input.
type Func[S, T any] func(S) T

// Apply applies the conversion to the given value.
func (f Func[S, T]) Apply(v S) T {
	return f(v)
}

// Identity returns the conversion that yields its argument unchanged.
func Identity[T any]() Func[T, T] {
	return func(v T) T { return v }
}

// Invert returns the boolean conversion that negates its argument.
func Invert() Func[bool, bool] {
	return func(v bool) bool { return !v }
}

// Chain returns the sequential composition of f then g. Panics with
// ErrNilFunc if either function is absent.
func Chain[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	if f == nil || g == nil {
		panic(ErrNilFunc)
	}

	return func(v A) C { return g(f(v)) }
}

// Cast returns the conversion implied by Go's built-in numeric conversion
// rules. Integer-to-integer conversions truncate to the target width
// (two's-complement wraparound, as the language defines). Bool takes part in
// no casts, which the Number constraint enforces.
//
// Float-to-integer conversion is the one place the language leaves
// out-of-range behavior implementation-specific, so an explicit policy
// applies: values truncate toward zero, NaN yields zero, and values outside
// the target range pin to the nearest target bound. Cast never fails.
func Cast[S, T primitive.Number]() Func[S, T] {
	from, to := primitive.KindFor[S](), primitive.KindFor[T]()
	if from.IsFloat() && to.IsInteger() {
		return truncCast[S, T](to)
	}

	return func(v S) T { return T(v) }
}

func truncCast[S, T primitive.Number](to primitive.Kind) Func[S, T] {
	bits := to.Bits()

	// lo..hi is the inclusive float64 window of values that convert in range.
	// hi sits just below the first power of two past the target maximum; no
	// float64 exists between the two.
	var lo, hi float64
	var min, max T
	if to.IsSigned() {
		hi = math.Nextafter(math.Ldexp(1, bits-1), 0)
		lo = -math.Ldexp(1, bits-1)
		max = T(uint64(1)<<(bits-1) - 1)
		min = T(int64(-1) << (bits - 1))
	} else {
		hi = math.Nextafter(math.Ldexp(1, bits), 0)
		max = T(^uint64(0) >> (64 - bits))
	}

	return func(v S) T {
		f := math.Trunc(float64(v))
		switch {
		case math.IsNaN(f):
			return 0
		case utils.IsInRange(lo, f, hi):
			return T(f)
		case f < lo:
			return min
		}
		return max
	}
}
