// Package noise implements the colored-noise and random-CV generators of a
// noise module: white, pink, red, violet, blue, gray, prism (uniform) and
// four-octave Perlin noise.
//
// Each generator is an independent stateful stream that advances one sample
// per call. [Bank] owns one of each and advances only the generators a
// [Mask] enables, plus whatever they feed on: red, violet and gray filter the
// white stream and blue differentiates the pink stream.
//
// All audio-rate outputs are calibrated to the RMS of a 5 V sine,
// [Gain] = 5/sqrt(2). Gray noise is produced by a block FFT filter and lags
// the other channels by exactly one block.
package noise
