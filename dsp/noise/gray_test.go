package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-modular/dsp/filter/weighting"
)

func TestGrayLatency(t *testing.T) {
	g, err := NewGray(44100, GrayBlockSize)
	require.NoError(t, err)
	w := NewWhite(21)

	for i := range GrayBlockSize {
		require.Zerof(t, g.Process(w.Next()), "sample %d", i)
	}
	assert.NotZero(t, g.Process(w.Next()))
}

func TestGrayBlockDependsOnlyOnPreviousBlock(t *testing.T) {
	a, err := NewGray(44100, GrayBlockSize)
	require.NoError(t, err)
	b, err := NewGray(44100, GrayBlockSize)
	require.NoError(t, err)

	shared := NewWhite(22)
	for range GrayBlockSize {
		x := shared.Next()
		a.Process(x)
		b.Process(x)
	}

	// Diverging input in the second block must not show up until the third.
	wa, wb := NewWhite(23), NewWhite(24)
	for i := range GrayBlockSize {
		ya := a.Process(wa.Next())
		yb := b.Process(wb.Next())
		require.Equalf(t, ya, yb, "sample %d", GrayBlockSize+i)
	}
	assert.NotEqual(t, a.Process(0), b.Process(0))
}

func TestGrayCalibration(t *testing.T) {
	g, err := NewGray(44100, GrayBlockSize)
	require.NoError(t, err)
	w := NewWhite(25)

	x := render(GrayBlockSize*64, func() float64 { return g.Process(w.Next()) })
	assert.InEpsilon(t, Gain, rms(t, x[GrayBlockSize:]), 0.1)
}

func TestGrayGains(t *testing.T) {
	const sr, n = 44100.0, 1024
	gains := grayGains(sr, n)
	require.Len(t, gains, n)

	assert.Zero(t, gains[0])
	for i := 1; i < n/2; i++ {
		require.Equal(t, gains[i], gains[n-i])

		f := float64(i) * sr / (2 * n)
		if f < GrayLowHz {
			require.Zerof(t, gains[i], "bin %d below band", i)
			continue
		}
		require.InDelta(t, weighting.Inverse(weighting.TypeA, f), gains[i], 1e-12)
	}
}

func TestGrayReset(t *testing.T) {
	g, err := NewGray(44100, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, g.Size())

	w := NewWhite(26)
	for range 200 {
		g.Process(w.Next())
	}
	g.Reset()
	for range 64 {
		require.Zero(t, g.Process(w.Next()))
	}
}

func TestNewGrayErrors(t *testing.T) {
	_, err := NewGray(44100, 0)
	assert.ErrorIs(t, err, ErrBlockSize)

	_, err = NewGray(0, 1024)
	assert.Error(t, err)
}
