// Package weighting provides the A, B, C and Z frequency weighting curves
// of IEC 61672 as analytic magnitude responses.
//
// Frequency weighting curves approximate the frequency-dependent sensitivity
// of human hearing:
//
//   - A-weighting approximates the 40-phon equal-loudness contour.
//   - B-weighting approximates the 70-phon equal-loudness contour.
//   - C-weighting approximates the 100-phon equal-loudness contour.
//   - Z-weighting is flat.
//
// All curves are normalized to 0 dB at 1 kHz. [Inverse] returns the
// reciprocal gain, which the noise bank applies per FFT bin to shape white
// noise into perceptually flat gray noise.
package weighting
