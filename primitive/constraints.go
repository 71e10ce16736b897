package primitive

type (
	// these type constraints follow the shape of golang.org/x/exp/constraints,
	// redefined here to avoid depending on an experimental package.

	// Signed integer types.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}

	// Unsigned integer types.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Integer types, signed or unsigned.
	Integer interface {
		Signed | Unsigned
	}

	// Float types.
	Float interface {
		~float32 | ~float64
	}

	// Number types: every fixed-width numeric primitive.
	Number interface {
		Integer | Float
	}

	// Primitive types: numbers plus bool. This is the full value domain the
	// supplier, function and consumer families specialize over.
	Primitive interface {
		Number | ~bool
	}
)
