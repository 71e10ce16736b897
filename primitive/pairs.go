package primitive

// Castable reports whether values of kind from can be converted to kind to by
// the built-in numeric conversion. Bool participates in no casts: there is no
// implicit 0/1 mapping in either direction.
func Castable(from, to Kind) bool {
	return from.IsNumber() && to.IsNumber()
}

// Lossless reports whether the conversion from -> to preserves every value of
// from. Platform-sized int and uint are judged by their width on the running
// platform, so results for those kinds are not portable across architectures.
func Lossless(from, to Kind) bool {
	if !Castable(from, to) {
		return false
	}

	if from == to {
		return true
	}

	switch {
	case from.IsFloat():
		return to.IsFloat() && to.Bits() >= from.Bits()
	case to.IsFloat():
		// an integer survives when its magnitude fits the float mantissa
		return magnitudeBits(from) <= mantissaBits(to)
	case from.IsSigned():
		// negative values cannot reach an unsigned target
		return to.IsSigned() && to.Bits() >= from.Bits()
	default:
		if to.IsUnsigned() {
			return to.Bits() >= from.Bits()
		}
		// a signed target needs one extra bit to cover the unsigned range
		return to.Bits() > from.Bits()
	}
}

// magnitudeBits is the number of bits carrying magnitude, excluding the sign
// bit of signed kinds.
func magnitudeBits(k Kind) int {
	if k.IsSigned() {
		return k.Bits() - 1
	}
	return k.Bits()
}

func mantissaBits(k Kind) int {
	if k == KindFloat32 {
		return 24
	}
	return 53
}
