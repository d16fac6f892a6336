package pattern

import (
	"fmt"
	"strings"
)

// Style selects how the base sequence is filled.
type Style int

const (
	// Euclidean spreads onsets with Bjorklund's algorithm.
	Euclidean Style = iota
	// Random marks steps by repeated uniform draws at the fill ratio.
	// A new pattern is drawn every time Length, Fill, Accents or Style change.
	Random
	// Fibonacci marks step fib(i) mod Length for each onset i.
	Fibonacci
	// Linear marks step floor(Length*i/Fill) for each onset i.
	Linear
)

var styleNames = [...]string{"euclidean", "random", "fibonacci", "linear"}

// String returns the lower-case style name.
func (s Style) String() string {
	if s.valid() {
		return styleNames[s]
	}
	return "unknown"
}

func (s Style) valid() bool {
	return s >= Euclidean && s <= Linear
}

// ParseStyle resolves a style by name (case-insensitive).
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Euclidean, fmt.Errorf("pattern: unknown style %q", name)
}

// GateMode selects how the step stream becomes an output level.
type GateMode int

const (
	// Trigger emits a short pulse when a clock lands on an active step.
	Trigger GateMode = iota
	// Hold stays high for as long as the current step is active.
	Hold
	// Turing outputs the shift register built from the last Length steps.
	Turing
)

var gateModeNames = [...]string{"trigger", "gate", "turing"}

// String returns the lower-case mode name.
func (m GateMode) String() string {
	if m >= Trigger && m <= Turing {
		return gateModeNames[m]
	}
	return "unknown"
}

// ParseGateMode resolves a gate mode by name (case-insensitive).
func ParseGateMode(name string) (GateMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range gateModeNames {
		if n == name {
			return GateMode(i), nil
		}
	}
	return Trigger, fmt.Errorf("pattern: unknown gate mode %q", name)
}
