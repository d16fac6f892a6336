// Package bukavac adapts the noise bank to module voltages. Only generators
// whose outputs are patched are advanced, and the Perlin speed and amplitude
// knobs can be crossfaded towards CV inputs.
package bukavac

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/noise"
)

// Knob ranges.
const (
	MaxSpeed = 20.0 // noise units per second
	MaxAmp   = 10.0 // volts
	CVRange  = 10.0 // volts for a full sweep
)

// State is the persisted knob state.
type State struct {
	Speed      float64                      `json:"speed"`
	Amp        float64                      `json:"amp"`
	SpeedCVMix float64                      `json:"speedCvMix"`
	AmpCVMix   float64                      `json:"ampCvMix"`
	Weights    [noise.PerlinOctaves]float64 `json:"weights"`
}

// DefaultState returns the knob positions of a freshly added module.
func DefaultState() State {
	p := noise.DefaultPerlinParams()
	return State{
		Speed:   p.Speed,
		Amp:     p.Amp,
		Weights: p.Weights,
	}
}

// Clamp forces every knob into its range.
func (s State) Clamp() State {
	s.Speed = core.Clamp(s.Speed, 0, MaxSpeed)
	s.Amp = core.Clamp(s.Amp, 0, MaxAmp)
	s.SpeedCVMix = core.Clamp(s.SpeedCVMix, 0, 1)
	s.AmpCVMix = core.Clamp(s.AmpCVMix, 0, 1)
	for i, w := range s.Weights {
		s.Weights[i] = core.Clamp(w, 0, 1)
	}
	return s
}

// Inputs is one sample of the module's jacks.
type Inputs struct {
	// Connected holds the patched outputs.
	Connected noise.Mask

	SpeedCV          float64
	AmpCV            float64
	SpeedCVConnected bool
	AmpCVConnected   bool
}

// Module is a single noise module instance. It is not safe for concurrent use.
type Module struct {
	state State
	bank  *noise.Bank
}

// New returns a Module in DefaultState.
func New(opts ...core.ProcessorOption) (*Module, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	bank, err := noise.NewBank(noise.WithSampleRate(cfg.SampleRate), noise.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("bukavac: %w", err)
	}
	return &Module{state: DefaultState(), bank: bank}, nil
}

// State returns the knob state.
func (m *Module) State() State {
	return m.state
}

// SetState replaces the knob state, clamping every value.
func (m *Module) SetState(s State) {
	m.state = s.Clamp()
}

// MarshalJSON encodes the knob state.
func (m *Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.state)
}

// UnmarshalJSON restores a state written by MarshalJSON. Missing fields keep
// their current values.
func (m *Module) UnmarshalJSON(data []byte) error {
	s := m.state
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bukavac: decode state: %w", err)
	}
	m.SetState(s)
	return nil
}

// PerlinParams returns the effective Perlin controls for in. A connected CV
// input is mapped onto the knob range and crossfaded with the knob by its mix
// amount; an unpatched one leaves the knob in control.
func (m *Module) PerlinParams(in Inputs) noise.PerlinParams {
	s := m.state
	speed, amp := s.Speed, s.Amp
	if in.SpeedCVConnected {
		cv := core.Clamp(in.SpeedCV/CVRange, 0, 1) * MaxSpeed
		speed = core.Crossfade(speed, cv, s.SpeedCVMix)
	}
	if in.AmpCVConnected {
		cv := core.Clamp(in.AmpCV/CVRange, 0, 1) * MaxAmp
		amp = core.Crossfade(amp, cv, s.AmpCVMix)
	}
	return noise.PerlinParams{Speed: speed, Amp: amp, Weights: s.Weights}
}

// Process advances the generators behind the connected outputs by one
// sample. Outputs that are not connected read zero unless another connected
// output depends on their generator.
func (m *Module) Process(in Inputs) noise.Frame {
	if in.Connected == 0 {
		return noise.Frame{}
	}
	return m.bank.Process(in.Connected, m.PerlinParams(in))
}

// Reset clears generator history.
func (m *Module) Reset() {
	m.bank.Reset()
}

// Latency returns the gray output delay in samples.
func (m *Module) Latency() int {
	return m.bank.Latency()
}
