package noise

import (
	"math"

	"github.com/cwbudde/algo-modular/dsp/filter/biquad"
	"github.com/cwbudde/algo-modular/dsp/rng"
)

// Gain scales unit-RMS noise to the RMS of a 5 V amplitude sine.
const Gain = 5 / math.Sqrt2

// Empirical RMS normalizers.
const (
	pinkRMS   = 0.816
	redRMS    = 0.0645
	violetRMS = math.Sqrt2
	blueRMS   = 0.705
)

// PinkQuality is the number of Voss-McCartney octave bands.
const PinkQuality = 8

// redCoefficients is a one-pole Butterworth lowpass at 44.1 kHz.
var redCoefficients = biquad.Coefficients{
	B0: 0.00425611,
	B1: 0.00425611,
	A1: -0.99148778,
}

// White draws normally distributed samples.
type White struct {
	rng *rng.Generator
}

// NewWhite returns a White generator seeded with seed.
func NewWhite(seed uint64) *White {
	return &White{rng: rng.New(seed)}
}

// Next returns the next sample.
func (w *White) Next() float64 {
	return w.rng.Normal() * Gain
}

// Pink implements the Voss-McCartney algorithm: band b is redrawn whenever
// bit b of the frame counter changes, so each band updates at half the rate
// of the one below it.
type Pink struct {
	rng   *rng.Generator
	bands [PinkQuality]float64
	frame uint32
}

// NewPink returns a Pink generator seeded with seed.
func NewPink(seed uint64) *Pink {
	p := &Pink{rng: rng.New(seed)}
	p.Reset()
	return p
}

// Next returns the next sample.
func (p *Pink) Next() float64 {
	next := (p.frame + 1) & (1<<PinkQuality - 1)
	flipped := p.frame ^ next
	p.frame = next

	sum := 0.0
	for b := range p.bands {
		if flipped&(1<<b) != 0 {
			p.bands[b] = p.rng.Uniform() - 0.5
		}
		sum += p.bands[b]
	}

	return sum / pinkRMS * Gain
}

// Reset restarts the frame counter and redraws every band.
func (p *Pink) Reset() {
	p.frame = 0
	for b := range p.bands {
		p.bands[b] = p.rng.Uniform() - 0.5
	}
}

// Red integrates its input through a fixed one-pole lowpass.
type Red struct {
	lp *biquad.Section
}

// NewRed returns a Red filter with cleared state.
func NewRed() *Red {
	return &Red{lp: biquad.NewSection(redCoefficients)}
}

// Process filters one white sample.
func (r *Red) Process(white float64) float64 {
	return r.lp.ProcessSample(white) / redRMS
}

// Reset clears the filter state.
func (r *Red) Reset() {
	r.lp.Reset()
}

// Differentiator outputs the scaled first difference of its input.
type Differentiator struct {
	prev  float64
	scale float64
}

// NewViolet returns a differentiator calibrated for white input.
func NewViolet() *Differentiator {
	return &Differentiator{scale: 1 / violetRMS}
}

// NewBlue returns a differentiator calibrated for pink input.
func NewBlue() *Differentiator {
	return &Differentiator{scale: 1 / blueRMS}
}

// Process returns (x - previous x) * scale.
func (d *Differentiator) Process(x float64) float64 {
	y := (x - d.prev) * d.scale
	d.prev = x
	return y
}

// Reset forgets the previous sample.
func (d *Differentiator) Reset() {
	d.prev = 0
}

// Prism draws uniform samples in [-5, 5).
type Prism struct {
	rng *rng.Generator
}

// NewPrism returns a Prism generator seeded with seed.
func NewPrism(seed uint64) *Prism {
	return &Prism{rng: rng.New(seed)}
}

// Next returns the next sample.
func (p *Prism) Next() float64 {
	return p.rng.Uniform()*10 - 5
}
