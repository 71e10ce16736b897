package primfn_test

import (
	"math"
	"testing"

	"primfn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, primfn.Identity[bool]().Apply(true))
	assert.Equal(t, int8(-7), primfn.Identity[int8]().Apply(-7))
	assert.Equal(t, 3.25, primfn.Identity[float64]().Apply(3.25))
	assert.Equal(t, 'A', primfn.Identity[rune]().Apply('A'))
}

func TestInvert(t *testing.T) {
	t.Parallel()

	invert := primfn.Invert()
	assert.False(t, invert.Apply(true))
	assert.True(t, invert.Apply(false))

	// double inversion is the identity
	assert.True(t, primfn.Chain(invert, invert).Apply(true))
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("applies in order", func(t *testing.T) {
		t.Parallel()

		half := primfn.Func[int, float64](func(v int) float64 { return float64(v) / 2 })
		negate := primfn.Func[float64, float64](func(v float64) float64 { return -v })
		require.Equal(t, -2.5, primfn.Chain(half, negate).Apply(5))

		inc := primfn.Func[int, int](func(v int) int { return v + 1 })
		double := primfn.Func[int, int](func(v int) int { return v * 2 })
		require.Equal(t, 12, primfn.Chain(inc, double).Apply(5))
		require.Equal(t, 11, primfn.Chain(double, inc).Apply(5))
	})

	t.Run("nil argument panics at combination time", func(t *testing.T) {
		t.Parallel()

		f := primfn.Identity[int]()
		require.PanicsWithValue(t, primfn.ErrNilFunc, func() { primfn.Chain[int, int, int](nil, f) })
		require.PanicsWithValue(t, primfn.ErrNilFunc, func() { primfn.Chain[int, int, int](f, nil) })
	})
}

func TestCastIntegers(t *testing.T) {
	t.Parallel()

	// integer conversions follow the language: truncate to the target width
	assert.Equal(t, int8(44), primfn.Cast[int, int8]().Apply(300))
	assert.Equal(t, uint8(212), primfn.Cast[int16, uint8]().Apply(-300))
	assert.Equal(t, 'A', primfn.Cast[int, rune]().Apply(65))
	assert.Equal(t, int64(-1), primfn.Cast[int8, int64]().Apply(-1))
	assert.Equal(t, uint16(65535), primfn.Cast[int32, uint16]().Apply(-1))
}

func TestCastFloatToInteger(t *testing.T) {
	t.Parallel()

	t.Run("truncates toward zero", func(t *testing.T) {
		t.Parallel()

		toInt := primfn.Cast[float64, int]()
		assert.Equal(t, 3, toInt.Apply(3.9))
		assert.Equal(t, -3, toInt.Apply(-3.9))
		assert.Equal(t, 0, toInt.Apply(0.999))
		assert.Equal(t, int32(2), primfn.Cast[float32, int32]().Apply(2.99))
	})

	t.Run("saturates out-of-range values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int8(127), primfn.Cast[float64, int8]().Apply(300))
		assert.Equal(t, int8(-128), primfn.Cast[float64, int8]().Apply(-300))
		assert.Equal(t, uint8(255), primfn.Cast[float64, uint8]().Apply(300))
		assert.Equal(t, uint8(0), primfn.Cast[float64, uint8]().Apply(-1))
		assert.Equal(t, int64(math.MaxInt64), primfn.Cast[float64, int64]().Apply(1e19))
		assert.Equal(t, int64(math.MinInt64), primfn.Cast[float64, int64]().Apply(-1e19))
		assert.Equal(t, uint64(math.MaxUint64), primfn.Cast[float64, uint64]().Apply(2e19))
	})

	t.Run("NaN maps to zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, primfn.Cast[float64, int]().Apply(math.NaN()))
	})

	t.Run("in-range boundaries convert exactly", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int8(-128), primfn.Cast[float64, int8]().Apply(-128))
		assert.Equal(t, int8(127), primfn.Cast[float64, int8]().Apply(127))
		assert.Equal(t, int64(math.MinInt64), primfn.Cast[float64, int64]().Apply(-9223372036854775808))
	})
}

func TestCastWidening(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -5.0, primfn.Cast[int8, float64]().Apply(-5))
	assert.Equal(t, float64(float32(1.1)), primfn.Cast[float32, float64]().Apply(1.1))
	assert.Equal(t, float32(2.5), primfn.Cast[float64, float32]().Apply(2.5))
}
