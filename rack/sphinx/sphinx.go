// Package sphinx adapts the euclidean pattern sequencer to module voltages:
// knob values plus CV offsets become pattern parameters, clock and reset
// voltages become edges, and the step stream becomes gate, accent and
// end-of-cycle outputs.
package sphinx

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/pattern"
	"github.com/cwbudde/algo-modular/dsp/trigger"
)

const (
	// GateVoltage is the level of an active gate, accent or EOC output.
	GateVoltage = 10.0
	// TuringVoltage scales the Turing level, in [0, 2), to at most 10 V.
	TuringVoltage = 5.0
	// CVRange is the voltage span that sweeps a parameter through its range.
	CVRange = 10.0
)

// State is the persisted part of the module: knob positions and modes.
// Pattern buffers are derived from it and never stored.
type State struct {
	Length         int    `json:"length"`
	Fill           int    `json:"fill"`
	Accents        int    `json:"accents"`
	Rotation       int    `json:"rotation"`
	Padding        int    `json:"padding"`
	AccentRotation int    `json:"accentRotation"`
	Style          string `json:"style"`
	GateMode       string `json:"gateMode"`
}

// DefaultState returns a 16-step, 4-onset Euclidean trigger sequencer.
func DefaultState() State {
	p := pattern.DefaultParams()
	return State{
		Length:   p.Length,
		Fill:     p.Fill,
		Style:    p.Style.String(),
		GateMode: pattern.Trigger.String(),
	}
}

// Inputs is one sample of the module's jacks. CV inputs are offsets in
// volts added to the knob positions.
type Inputs struct {
	Clock       float64
	Reset       float64
	ResetButton bool
	Reverse     float64

	LengthCV         float64
	FillCV           float64
	AccentsCV        float64
	RotationCV       float64
	PaddingCV        float64
	AccentRotationCV float64
}

// Outputs is one sample of the module's output jacks.
type Outputs struct {
	Gate       float64
	Accent     float64
	EndOfCycle float64
	Step       int
}

// Module is a single sequencer instance. It is not safe for concurrent use.
type Module struct {
	state    State
	style    pattern.Style
	sampleDt float64

	seq     *pattern.Sequencer
	gate    pattern.Gate
	clock   trigger.Schmitt
	reset   trigger.Schmitt
	reverse trigger.Schmitt
	eoc     trigger.Pulse
}

// New returns a Module in DefaultState. The seed feeds the Random style.
func New(opts ...core.ProcessorOption) *Module {
	cfg := core.ApplyProcessorOptions(opts...)
	m := &Module{
		sampleDt: cfg.SampleTime(),
		seq:      pattern.NewSequencer(pattern.WithSeed(cfg.Seed)),
	}
	if err := m.SetState(DefaultState()); err != nil {
		panic(err)
	}
	return m
}

// State returns the current knob state.
func (m *Module) State() State {
	return m.state
}

// SetState replaces the knob state. Numeric fields are clamped when the
// pattern is next computed; unknown style or gate mode names are rejected.
func (m *Module) SetState(s State) error {
	style, err := pattern.ParseStyle(s.Style)
	if err != nil {
		return fmt.Errorf("sphinx: %w", err)
	}
	mode, err := pattern.ParseGateMode(s.GateMode)
	if err != nil {
		return fmt.Errorf("sphinx: %w", err)
	}

	m.state = s
	m.state.Style = style.String()
	m.state.GateMode = mode.String()
	m.style = style
	if m.gate.Mode != mode {
		m.gate.Reset()
		m.gate.Mode = mode
	}
	return nil
}

// MarshalJSON encodes the knob state.
func (m *Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.state)
}

// UnmarshalJSON restores a state written by MarshalJSON. Missing fields
// keep their current values.
func (m *Module) UnmarshalJSON(data []byte) error {
	s := m.state
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sphinx: decode state: %w", err)
	}
	return m.SetState(s)
}

// Params returns the pattern parameters for the given CV offsets before
// clamping. Fill, Accents and the rotations are scaled relative to the
// length they depend on.
func (m *Module) Params(in Inputs) pattern.Params {
	s := m.state
	length := s.Length + cvSteps(in.LengthCV, pattern.MaxLength)
	return pattern.Params{
		Length:         length,
		Fill:           s.Fill + cvSteps(in.FillCV, length),
		Accents:        s.Accents + cvSteps(in.AccentsCV, s.Fill),
		Rotation:       s.Rotation + cvSteps(in.RotationCV, length+s.Padding),
		Padding:        s.Padding + cvSteps(in.PaddingCV, pattern.MaxLength-length),
		AccentRotation: s.AccentRotation + cvSteps(in.AccentRotationCV, s.Fill),
		Style:          m.style,
	}
}

func cvSteps(volts float64, span int) int {
	return int(math.Round(volts / CVRange * float64(span)))
}

// Process advances the module by one sample.
func (m *Module) Process(in Inputs) Outputs {
	clock := m.clock.Process(in.Clock)
	reset := m.reset.Process(in.Reset) || in.ResetButton
	m.reverse.Process(in.Reverse)

	step := m.seq.Process(m.Params(in), clock, reset, m.reverse.IsHigh())
	if step.EndOfCycle {
		m.eoc.Trigger(trigger.DefaultPulseDuration)
	}
	if reset {
		m.gate.Reset()
	}

	gate, accent := m.gate.Process(step, m.sampleDt)
	if m.gate.Mode == pattern.Turing {
		gate *= TuringVoltage
	} else {
		gate *= GateVoltage
	}

	out := Outputs{
		Gate:   gate,
		Accent: accent * GateVoltage,
		Step:   step.Index,
	}
	if m.eoc.Process(m.sampleDt) {
		out.EndOfCycle = GateVoltage
	}
	return out
}

// Pattern returns the composite steps and accents currently being played.
func (m *Module) Pattern() (steps, accents []bool) {
	e := m.seq.Engine()
	return e.Steps(), e.Accents()
}
