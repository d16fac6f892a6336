package pattern

import "github.com/cwbudde/algo-modular/dsp/trigger"

// Gate shapes a Step stream into normalized output levels.
//
// In Trigger mode both outputs pulse for trigger.DefaultPulseDuration when a
// clock lands on an active (accented) step. In Hold mode they follow the
// current step's flags. In Turing mode the gate output carries
// Step.TuringLevel, in [0, 2), while the accent output behaves as in Hold.
type Gate struct {
	Mode GateMode

	gate   trigger.Pulse
	accent trigger.Pulse
}

// Process returns the gate and accent levels for one sample of dt seconds.
func (g *Gate) Process(step Step, dt float64) (gate, accent float64) {
	switch g.Mode {
	case Trigger:
		if step.Clocked && step.Active {
			g.gate.Trigger(trigger.DefaultPulseDuration)
			if step.Accent {
				g.accent.Trigger(trigger.DefaultPulseDuration)
			}
		}
		return level(g.gate.Process(dt)), level(g.accent.Process(dt))
	case Hold:
		return level(step.Active), level(step.Accent)
	case Turing:
		return step.TuringLevel(), level(step.Accent)
	default:
		return 0, 0
	}
}

// Reset cancels pending trigger pulses.
func (g *Gate) Reset() {
	g.gate.Reset()
	g.accent.Reset()
}

func level(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
