package testutil

import (
	"math"
	"strings"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// FormatSteps renders a step sequence as 'x' for active and '.' for rest.
func FormatSteps(seq []bool) string {
	var b strings.Builder
	b.Grow(len(seq))
	for _, on := range seq {
		if on {
			b.WriteByte('x')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// CountTrue returns the number of true entries.
func CountTrue(seq []bool) int {
	n := 0
	for _, on := range seq {
		if on {
			n++
		}
	}
	return n
}

// ActiveIndices returns the indices of the true entries in increasing order.
func ActiveIndices(seq []bool) []int {
	var out []int
	for i, on := range seq {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// RotateSteps returns seq rotated right by n positions (index i moves to i+n).
func RotateSteps(seq []bool, n int) []bool {
	out := make([]bool, len(seq))
	if len(seq) == 0 {
		return out
	}
	n = ((n % len(seq)) + len(seq)) % len(seq)
	for i, v := range seq {
		out[(i+n)%len(seq)] = v
	}
	return out
}
