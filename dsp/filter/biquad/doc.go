// Package biquad implements first- and second-order IIR sections in
// Direct Form II Transposed, plus closed-form frequency and noise responses.
//
// The noise bank uses a Section with fixed first-order lowpass coefficients
// to integrate white noise into red (brown) noise, and the response helpers
// to model the red and violet spectra and the red output level.
package biquad
