package noise

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/filter/weighting"
)

// GrayBlockSize is the default FFT block length of the gray filter.
const GrayBlockSize = 1024

// Bins outside this band get zero gain.
const (
	GrayLowHz  = 80.0
	GrayHighHz = 20000.0
)

// ErrBlockSize is returned for a non-positive gray filter block size.
var ErrBlockSize = errors.New("noise: block size must be positive")

// Gray shapes its input with the inverse A-weighting curve, one FFT block at
// a time. Input is collected into a block; when the block is full it is
// filtered and then played back while the next block fills. Output therefore
// lags input by exactly one block, and the first block of output is silence.
type Gray struct {
	plan  *algofft.Plan[complex128]
	gains []float64
	norm  float64

	in   []float64
	out  []float64
	spec []complex128
	pos  int
}

// NewGray returns a gray filter for the given sample rate and block size.
func NewGray(sampleRate float64, size int) (*Gray, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSize, size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("noise: sample rate must be positive: %g", sampleRate)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("noise: failed to create FFT plan: %w", err)
	}

	g := &Gray{
		plan:  plan,
		gains: grayGains(sampleRate, size),
		in:    make([]float64, size),
		out:   make([]float64, size),
		spec:  make([]complex128, size),
	}

	if power := f64.DotProduct(g.gains, g.gains); power > 0 {
		g.norm = 1 / math.Sqrt(power/float64(size))
	}

	return g, nil
}

// grayGains evaluates the gated inverse A-weighting curve for every bin.
// Bin i sits at i/(2*dt*n) Hz; bins above n/2 mirror the lower half so the
// filtered block stays real.
func grayGains(sampleRate float64, n int) []float64 {
	dt := 1 / sampleRate
	gains := make([]float64, n)
	for i := 0; i <= n/2; i++ {
		f := float64(i) / (2 * dt * float64(n))
		g := 0.0
		if f >= GrayLowHz && f <= GrayHighHz {
			g = weighting.Inverse(weighting.TypeA, f)
		}
		gains[i] = g
		if i > 0 {
			gains[n-i] = g
		}
	}
	return gains
}

// Size returns the block length, which is also the latency in samples.
func (g *Gray) Size() int {
	return len(g.in)
}

// Process pushes one input sample and returns one sample of the previous
// filtered block.
func (g *Gray) Process(x float64) float64 {
	y := g.out[g.pos]
	g.in[g.pos] = x
	g.pos++
	if g.pos == len(g.in) {
		g.filterBlock()
		g.pos = 0
	}
	return y
}

func (g *Gray) filterBlock() {
	for i, v := range g.in {
		g.spec[i] = complex(v, 0)
	}

	if err := g.plan.Forward(g.spec, g.spec); err != nil {
		core.Zero(g.out)
		return
	}
	for i, gain := range g.gains {
		g.spec[i] *= complex(gain, 0)
	}
	if err := g.plan.Inverse(g.spec, g.spec); err != nil {
		core.Zero(g.out)
		return
	}

	for i, v := range g.spec {
		g.out[i] = real(v)
	}
	f64.Scale(g.out, g.out, g.norm)
}

// Reset clears both blocks and restarts collection.
func (g *Gray) Reset() {
	core.Zero(g.in)
	core.Zero(g.out)
	core.ZeroComplex(g.spec)
	g.pos = 0
}
