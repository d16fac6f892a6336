package dither

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizerNoDither(t *testing.T) {
	q, err := NewQuantizer(WithDitherType(DitherNone))
	require.NoError(t, err)

	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.5, 16383},
		{-0.5, -16384},
		{1, 32767},
		{-1, -32768},
		{2, 32767},
		{-3, -32768},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, q.ProcessInteger(tt.in), "input %v", tt.in)
	}
}

func TestQuantizerBitDepthRange(t *testing.T) {
	q, err := NewQuantizer(WithBitDepth(24), WithDitherType(DitherNone))
	require.NoError(t, err)
	assert.Equal(t, 24, q.BitDepth())
	assert.Equal(t, 1<<23-1, q.ProcessInteger(10))
	assert.Equal(t, -(1 << 23), q.ProcessInteger(-10))
}

func TestTriangularDitherIsUnbiased(t *testing.T) {
	q, err := NewQuantizer(WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, DitherTriangular, q.DitherType())

	// A constant a quarter LSB above a code averages out to that level.
	in := (0.25 + 0.5) / q.bitMul
	const n = 200000
	sum := 0.0
	for range n {
		sum += float64(q.ProcessInteger(in))
	}
	assert.InDelta(t, 0.25, sum/n, 0.01)
}

func TestRectangularDitherStaysWithinOneLSB(t *testing.T) {
	q, err := NewQuantizer(WithDitherType(DitherRectangular), WithDitherAmplitude(0.5))
	require.NoError(t, err)
	for range 10000 {
		v := q.ProcessInteger(0)
		require.True(t, v == 0 || v == -1, "got %d", v)
	}
}

func TestProcessBlock(t *testing.T) {
	q, err := NewQuantizer(WithDitherType(DitherNone), WithBitDepth(8))
	require.NoError(t, err)
	dst := make([]int, 3)
	q.ProcessBlock(dst, []float64{-1, 0, 1})
	assert.Equal(t, []int{-128, 0, 127}, dst)
}

func TestOptionErrors(t *testing.T) {
	_, err := NewQuantizer(WithBitDepth(1))
	assert.Error(t, err)
	_, err = NewQuantizer(WithDitherType(DitherType(9)))
	assert.Error(t, err)
	_, err = NewQuantizer(WithDitherAmplitude(math.NaN()))
	assert.Error(t, err)
	_, err = NewQuantizer(nil)
	assert.NoError(t, err)
}

func TestParseDitherType(t *testing.T) {
	for dt := DitherNone; dt < ditherTypeCount; dt++ {
		got, err := ParseDitherType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}
	got, err := ParseDitherType("tpdf")
	assert.Error(t, err)
	assert.Equal(t, DitherNone, got)
	assert.Equal(t, "DitherType(7)", DitherType(7).String())
}
