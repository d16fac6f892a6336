package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-modular/dsp/window"
)

// Option configures a Welch estimate.
type Option func(*welchConfig)

type welchConfig struct {
	window     window.Type
	hop        int
	removeMean bool
}

// WithWindow selects the frame window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *welchConfig) {
		c.window = t
	}
}

// WithHop sets the frame advance in samples. The default is half a frame.
// Non-positive values are ignored.
func WithHop(hop int) Option {
	return func(c *welchConfig) {
		if hop > 0 {
			c.hop = hop
		}
	}
}

// WithMeanRemoval subtracts the input mean before framing.
func WithMeanRemoval() Option {
	return func(c *welchConfig) {
		c.removeMean = true
	}
}

// Welch estimates the one-sided PSD of x by averaging windowed periodograms
// of frameSize samples.
func Welch(x []float64, sampleRate float64, frameSize int, opts ...Option) (*PSD, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if frameSize < 2 || frameSize > len(x) {
		return nil, fmt.Errorf("%w: %d (input length %d)", ErrFrameSize, frameSize, len(x))
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be positive: %g", sampleRate)
	}

	cfg := welchConfig{window: window.TypeHann, hop: frameSize / 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := algofft.NewPlan64(frameSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	coeffs := window.Generate(cfg.window, frameSize, window.WithPeriodic())
	winPower := f64.DotProduct(coeffs, coeffs)
	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	mean := 0.0
	if cfg.removeMean {
		mean = stat.Mean(x, nil)
	}

	bins := frameSize/2 + 1
	frame := make([]float64, frameSize)
	spec := make([]complex128, frameSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pw := make([]float64, bins)
	acc := make([]float64, bins)

	frames := 0
	for start := 0; start+frameSize <= len(x); start += cfg.hop {
		for i := range frame {
			frame[i] = x[start+i] - mean
		}
		if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
			return nil, fmt.Errorf("spectrum: %w", err)
		}

		for i, v := range frame {
			spec[i] = complex(v, 0)
		}
		if err := plan.Forward(spec, spec); err != nil {
			return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
		}

		for k := range bins {
			re[k] = real(spec[k])
			im[k] = imag(spec[k])
		}
		vecmath.Power(pw, re, im)
		vecmath.AddBlockInPlace(acc, pw)
		frames++
	}

	psd := &PSD{
		Freqs:  make([]float64, bins),
		Power:  acc,
		Frames: frames,
		Window: cfg.window,
		ENBW:   enbw,
	}

	scale := 1 / (float64(frames) * sampleRate * winPower)
	for k := range acc {
		psd.Freqs[k] = float64(k) * sampleRate / float64(frameSize)
		s := scale
		if k != 0 && !(frameSize%2 == 0 && k == bins-1) {
			s *= 2
		}
		acc[k] *= s
	}

	return psd, nil
}
