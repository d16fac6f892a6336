package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/window"
)

var (
	// ErrEmptyInput is returned when there is nothing to analyze.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrFrameSize is returned for a frame size below 2 or above the input length.
	ErrFrameSize = errors.New("spectrum: invalid frame size")
)

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	// Freqs holds the bin center frequencies in Hz, from 0 to Nyquist.
	Freqs []float64
	// Power holds the density per bin in units^2/Hz.
	Power []float64
	// Frames is the number of averaged frames.
	Frames int
	// Window is the frame window and ENBW its equivalent noise bandwidth
	// in bins.
	Window window.Type
	ENBW   float64
}

// Resolution returns the bin spacing in Hz.
func (p *PSD) Resolution() float64 {
	if len(p.Freqs) < 2 {
		return 0
	}
	return p.Freqs[1] - p.Freqs[0]
}

// BandPower integrates the density over [lo, hi] Hz.
func (p *PSD) BandPower(lo, hi float64) float64 {
	df := p.Resolution()
	sum := 0.0
	for i, f := range p.Freqs {
		if f >= lo && f <= hi {
			sum += p.Power[i]
		}
	}
	return sum * df
}

// RMS returns the root mean square of x.
func RMS(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	return math.Sqrt(f64.DotProduct(x, x) / float64(len(x))), nil
}

// OctaveSlope fits a line to 10*log10(power) over log2(frequency) for bins
// in [lo, hi] Hz and returns the slope in dB per octave. Bins with zero
// power are skipped.
func OctaveSlope(p *PSD, lo, hi float64) (float64, error) {
	var xs, ys []float64
	for i, f := range p.Freqs {
		if f < lo || f > hi || f <= 0 || p.Power[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log2(f))
		ys = append(ys, core.LinearPowerToDB(p.Power[i]))
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: fewer than two bins in [%g, %g] Hz", ErrEmptyInput, lo, hi)
	}

	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, nil
}
