package noise

import (
	"math"

	"github.com/cwbudde/algo-modular/dsp/filter/biquad"
	"github.com/cwbudde/algo-modular/dsp/filter/weighting"
)

// redSettle covers the decay of the red lowpass to well below 1e-12.
const redSettle = 1 << 14

// differenceCoefficients model the violet/blue first difference 1 - z^-1.
var differenceCoefficients = biquad.Coefficients{B0: 1, B1: -1}

// pinkSlope is the ideal Voss-McCartney slope, -10*log10(2) dB per octave.
var pinkSlope = -10 * math.Log10(2)

// ExpectedRMS returns the nominal output RMS of ch in volts. Pink and blue
// report Gain because their normalizers are empirical; red includes the
// residual of its fixed normalizer. Perlin is not stationary and reports
// false.
func ExpectedRMS(ch Channel) (float64, bool) {
	switch ch {
	case ChannelWhite, ChannelPink, ChannelViolet, ChannelBlue, ChannelGray:
		return Gain, true
	case ChannelRed:
		lp := biquad.NewSection(redCoefficients)
		return Gain * math.Sqrt(lp.NoiseGain(redSettle)) / redRMS, true
	case ChannelPrism:
		return 10 / math.Sqrt(12), true
	default:
		return 0, false
	}
}

// ExpectedSlope returns the modelled PSD slope of ch between lo and hi Hz,
// in dB per octave, from the filter responses each generator applies.
// It reports false for Perlin, for an empty or out-of-range band, and for
// gray when the band crosses the gate of its shaping curve.
func ExpectedSlope(ch Channel, lo, hi, sampleRate float64) (float64, bool) {
	if lo <= 0 || hi <= lo || hi > sampleRate/2 {
		return 0, false
	}
	octaves := math.Log2(hi / lo)

	switch ch {
	case ChannelWhite, ChannelPrism:
		return 0, true
	case ChannelPink:
		return pinkSlope, true
	case ChannelRed:
		return responseSlope(redCoefficients, lo, hi, sampleRate), true
	case ChannelViolet:
		return responseSlope(differenceCoefficients, lo, hi, sampleRate), true
	case ChannelBlue:
		return pinkSlope + responseSlope(differenceCoefficients, lo, hi, sampleRate), true
	case ChannelGray:
		// grayGains evaluates bin frequency f on the curve at f/2.
		curveLo, curveHi := lo/2, hi/2
		if curveLo < GrayLowHz || curveHi > GrayHighHz {
			return 0, false
		}
		return -(weighting.MagnitudeDB(weighting.TypeA, curveHi) - weighting.MagnitudeDB(weighting.TypeA, curveLo)) / octaves, true
	default:
		return 0, false
	}
}

func responseSlope(c biquad.Coefficients, lo, hi, sampleRate float64) float64 {
	return (c.MagnitudeDB(hi, sampleRate) - c.MagnitudeDB(lo, sampleRate)) / math.Log2(hi/lo)
}
