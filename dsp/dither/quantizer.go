package dither

import (
	"math"

	"github.com/cwbudde/algo-modular/dsp/rng"
)

// Quantizer performs bit-depth quantization with optional dither noise.
// Output codes are always limited to the signed range of the bit depth.
type Quantizer struct {
	bitDepth        int
	ditherType      DitherType
	ditherAmplitude float64
	rng             *rng.Generator

	// derived from bitDepth
	bitMul  float64
	limitLo int
	limitHi int
}

// NewQuantizer creates a new Quantizer. The default configuration is
// 16-bit triangular dither with amplitude 1 LSB.
func NewQuantizer(opts ...Option) (*Quantizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	q := &Quantizer{
		bitDepth:        cfg.bitDepth,
		ditherType:      cfg.ditherType,
		ditherAmplitude: cfg.ditherAmplitude,
		rng:             rng.New(cfg.seed),
	}
	q.bitMul = math.Exp2(float64(q.bitDepth-1)) - 0.5
	q.limitLo = -int(math.Round(q.bitMul + 0.5))
	q.limitHi = int(math.Round(q.bitMul - 0.5))

	return q, nil
}

// BitDepth returns the target bit depth.
func (q *Quantizer) BitDepth() int { return q.bitDepth }

// DitherType returns the dither noise type.
func (q *Quantizer) DitherType() DitherType { return q.ditherType }

// ProcessInteger quantizes the input (expected in [-1, +1]) to an integer
// in the bit-depth range.
func (q *Quantizer) ProcessInteger(input float64) int {
	result := q.quantize(q.bitMul * input)
	return max(q.limitLo, min(q.limitHi, result))
}

// ProcessBlock quantizes src into dst. Both must have the same length.
func (q *Quantizer) ProcessBlock(dst []int, src []float64) {
	for i, v := range src {
		dst[i] = q.ProcessInteger(v)
	}
}

// quantize adds dither noise per the configured type and truncates towards
// negative infinity.
func (q *Quantizer) quantize(input float64) int {
	switch q.ditherType {
	case DitherRectangular:
		noise := q.ditherAmplitude * (q.rng.Uniform()*2 - 1)
		return int(math.Floor(input + noise))
	case DitherTriangular:
		noise := q.ditherAmplitude * (q.rng.Uniform() - q.rng.Uniform())
		return int(math.Floor(input + noise))
	default:
		return int(math.Floor(input))
	}
}
