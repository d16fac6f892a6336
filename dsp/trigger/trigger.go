// Package trigger turns control voltages into edges and edges into pulses.
//
// Schmitt detects rising edges with hysteresis so a slowly rising or noisy
// clock produces exactly one edge. Pulse holds a boolean high for a fixed
// time after being fired, the way a module emits a trigger.
package trigger

const (
	// DefaultLow is the voltage a Schmitt input must fall to before re-arming.
	DefaultLow = 0.1
	// DefaultHigh is the voltage a Schmitt input must reach to fire.
	DefaultHigh = 1.0
	// DefaultPulseDuration is a 1 ms trigger, in seconds.
	DefaultPulseDuration = 1e-3
)

// Schmitt is a rising-edge detector with hysteresis. The zero value uses
// DefaultLow and DefaultHigh.
type Schmitt struct {
	Low, High float64
	high      bool
}

// NewSchmitt returns a detector with the given thresholds. Swapped
// thresholds are reordered.
func NewSchmitt(low, high float64) *Schmitt {
	if low > high {
		low, high = high, low
	}
	return &Schmitt{Low: low, High: high}
}

// Process feeds one sample and reports whether it produced a rising edge.
func (s *Schmitt) Process(v float64) bool {
	low, high := s.Low, s.High
	if low == 0 && high == 0 {
		low, high = DefaultLow, DefaultHigh
	}

	if s.high {
		if v <= low {
			s.high = false
		}
		return false
	}

	if v >= high {
		s.high = true
		return true
	}
	return false
}

// IsHigh reports whether the detector is currently in its high state.
func (s *Schmitt) IsHigh() bool { return s.high }

// Reset returns the detector to its low state.
func (s *Schmitt) Reset() { s.high = false }

// Pulse stays high for a fixed duration after Trigger.
type Pulse struct {
	remaining float64
}

// Trigger starts (or extends) the pulse to last at least duration seconds.
func (p *Pulse) Trigger(duration float64) {
	if duration > p.remaining {
		p.remaining = duration
	}
}

// Process advances the pulse by dt seconds and reports whether it was high
// during this sample.
func (p *Pulse) Process(dt float64) bool {
	if p.remaining > 0 {
		p.remaining -= dt
		return true
	}
	return false
}

// Reset cancels any pending pulse.
func (p *Pulse) Reset() { p.remaining = 0 }
