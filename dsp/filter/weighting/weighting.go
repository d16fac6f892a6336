package weighting

import (
	"math"

	"github.com/cwbudde/algo-modular/dsp/core"
)

// IEC 61672 analog prototype pole frequencies (Hz).
const (
	f1 = 20.598997 // double pole for A, B, C
	f2 = 107.65265 // single pole for A
	f3 = 158.48932 // single pole for B only
	f4 = 737.86223 // single pole for A only
	f5 = 12194.217 // double pole for A, B, C
)

// ReferenceFrequency is the frequency (Hz) at which every curve is 0 dB.
const ReferenceFrequency = 1000.0

// Type identifies a frequency weighting curve.
type Type int

const (
	// TypeA is the A-weighting curve per IEC 61672.
	// It approximates the 40-phon equal-loudness contour.
	TypeA Type = iota

	// TypeB is the B-weighting curve. It approximates the 70-phon contour.
	TypeB

	// TypeC is the C-weighting curve per IEC 61672.
	// It approximates the 100-phon equal-loudness contour.
	TypeC

	// TypeZ applies no frequency weighting (unity gain at all frequencies).
	TypeZ
)

// String returns a human-readable name for the weighting type.
func (t Type) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	case TypeC:
		return "C"
	case TypeZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// reference gains at 1 kHz, used to normalize each curve to 0 dB.
var (
	refA = rawA(ReferenceFrequency)
	refB = rawB(ReferenceFrequency)
	refC = rawC(ReferenceFrequency)
)

// Magnitude returns the linear magnitude of the analog weighting curve at
// freqHz, normalized to 1 at 1 kHz. Negative frequencies are mirrored.
//
// Panics if t is not a known weighting type.
func Magnitude(t Type, freqHz float64) float64 {
	f := math.Abs(freqHz)

	switch t {
	case TypeA:
		return rawA(f) / refA
	case TypeB:
		return rawB(f) / refB
	case TypeC:
		return rawC(f) / refC
	case TypeZ:
		return 1
	default:
		panic("weighting: unknown type")
	}
}

// MagnitudeDB returns 20*log10 of [Magnitude]. DC yields -Inf for A, B and C.
func MagnitudeDB(t Type, freqHz float64) float64 {
	return core.LinearToDB(Magnitude(t, freqHz))
}

// Inverse returns 1/[Magnitude]: the gain that undoes the weighting at
// freqHz. It diverges towards DC, so callers must band-limit the range
// they evaluate it over.
func Inverse(t Type, freqHz float64) float64 {
	return 1 / Magnitude(t, freqHz)
}

// rawA is the unnormalized A-weighting magnitude
//
//	R_A(f) = f5^2 f^4 / ((f^2+f1^2) sqrt((f^2+f2^2)(f^2+f4^2)) (f^2+f5^2))
func rawA(f float64) float64 {
	f2s := f * f
	num := f5 * f5 * f2s * f2s
	den := (f2s + f1*f1) * math.Sqrt((f2s+f2*f2)*(f2s+f4*f4)) * (f2s + f5*f5)

	return num / den
}

// rawB is the unnormalized B-weighting magnitude
//
//	R_B(f) = f5^2 f^3 / ((f^2+f1^2) sqrt(f^2+f3^2) (f^2+f5^2))
func rawB(f float64) float64 {
	f2s := f * f
	num := f5 * f5 * f2s * f
	den := (f2s + f1*f1) * math.Sqrt(f2s+f3*f3) * (f2s + f5*f5)

	return num / den
}

// rawC is the unnormalized C-weighting magnitude
//
//	R_C(f) = f5^2 f^2 / ((f^2+f1^2) (f^2+f5^2))
func rawC(f float64) float64 {
	f2s := f * f
	num := f5 * f5 * f2s
	den := (f2s + f1*f1) * (f2s + f5*f5)

	return num / den
}
