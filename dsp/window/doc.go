// Package window generates the tapering windows used to frame blocks for
// spectral analysis.
package window
