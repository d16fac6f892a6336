package pattern

import "github.com/cwbudde/algo-modular/dsp/core"

const (
	// MaxLength is the longest base sequence.
	MaxLength = 32
	// MaxSteps is the capacity of the composite step array.
	MaxSteps = 2 * MaxLength
)

// Params is one snapshot of the pattern controls.
type Params struct {
	Length         int // base sequence length, 1..32
	Fill           int // onsets, 1..Length
	Accents        int // accented onsets, 0..Fill
	Rotation       int // 0..Length+Padding-1
	Padding        int // trailing rests, 0..32-Length
	AccentRotation int // circular offset into the accents, 0..Fill-1
	Style          Style
}

// DefaultParams returns a 16-step, 4-onset Euclidean pattern.
func DefaultParams() Params {
	return Params{Length: 16, Fill: 4, Style: Euclidean}
}

// Clamp returns p with every field forced into its valid range. The order
// matters: each bound depends on the fields clamped before it.
func (p Params) Clamp() Params {
	p.Length = core.ClampInt(p.Length, 1, MaxLength)
	p.Padding = core.ClampInt(p.Padding, 0, MaxLength-p.Length)
	p.Fill = core.ClampInt(p.Fill, 1, p.Length)
	p.Accents = core.ClampInt(p.Accents, 0, p.Fill)
	p.Rotation = core.ClampInt(p.Rotation, 0, p.Length+p.Padding-1)
	p.AccentRotation = core.ClampInt(p.AccentRotation, 0, p.Fill-1)
	if !p.Style.valid() {
		p.Style = Euclidean
	}
	return p
}

// Steps returns the composite length, Length+Padding.
func (p Params) Steps() int {
	return p.Length + p.Padding
}
