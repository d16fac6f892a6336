// Package spectrum estimates power spectra of sampled signals and fits
// simple descriptors to them (RMS level, dB-per-octave slope).
//
// It is used to check noise calibration: white noise should have a flat
// spectrum at the expected RMS, pink noise should fall by 3 dB per octave.
package spectrum
