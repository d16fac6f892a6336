package pattern

// Step is the sequencer state after one Process call.
type Step struct {
	// Index is the current composite step. Right after a forward reset it
	// equals the composite length, a position before step 0 that reports
	// no activity until the next clock.
	Index      int
	Active     bool
	Accent     bool
	Clocked    bool // a clock edge moved the sequencer during this call
	EndOfCycle bool // the clock edge wrapped around the composite
	Turing     uint64
	Length     int // base length used to normalize Turing
}

// TuringLevel returns the shift register divided by 2^Length.
func (s Step) TuringLevel() float64 {
	if s.Length <= 0 {
		return 0
	}
	return float64(s.Turing) / float64(uint64(1)<<uint(s.Length))
}

// Sequencer walks an Engine's composite under clock, reset and direction
// control. The first call behaves as if a reset had just happened, so the
// first forward clock lands on step 0.
type Sequencer struct {
	engine    *Engine
	current   int
	parked    bool // forward reset pending: next clock lands on step 0
	justReset bool
	started   bool
	turing    uint64
}

// NewSequencer returns a Sequencer with its own Engine.
func NewSequencer(opts ...Option) *Sequencer {
	return &Sequencer{engine: NewEngine(opts...)}
}

// Engine exposes the pattern being walked.
func (s *Sequencer) Engine() *Engine { return s.engine }

// Process applies one snapshot of parameters and edges. Reset is handled
// before clock, so a reset and clock on the same sample start a fresh cycle
// on its first step without signalling end-of-cycle.
func (s *Sequencer) Process(p Params, clock, reset, reverse bool) Step {
	s.engine.Update(p)
	total := s.engine.Len()

	if !s.started {
		s.reset(total, reverse)
		s.started = true
	}
	switch {
	case s.parked:
		s.current = total
	case s.current >= total:
		s.current %= total
	}
	if reset {
		s.reset(total, reverse)
	}

	out := Step{Length: s.engine.params.Length}
	if clock {
		out.Clocked = true
		out.EndOfCycle = s.advance(total, reverse)
		s.turing = s.shiftRegister(total)
	}

	out.Index = s.current
	out.Active, out.Accent = s.engine.At(s.current)
	out.Turing = s.turing
	return out
}

// Reset acts as if a reset edge had just arrived: forward sequencers park
// before step 0, reverse ones on step 0.
func (s *Sequencer) Reset(reverse bool) {
	s.reset(s.engine.Len(), reverse)
	s.started = true
}

// Index returns the current step index.
func (s *Sequencer) Index() int { return s.current }

func (s *Sequencer) reset(total int, reverse bool) {
	if reverse {
		s.current = 0
	} else {
		s.current = total
	}
	s.parked = !reverse
	s.justReset = true
}

func (s *Sequencer) advance(total int, reverse bool) bool {
	wrapped := false
	s.parked = false
	if reverse {
		s.current--
		if s.current < 0 {
			s.current = total - 1
			wrapped = true
		}
	} else {
		s.current++
		if s.current >= total {
			s.current = 0
			wrapped = true
		}
	}

	eoc := wrapped && !s.justReset
	s.justReset = false
	return eoc
}

// shiftRegister folds the active flags of the last Length steps, oldest
// first, into an integer. Each flag is ORed in before the shift, so the
// newest flag lands on bit 1 and bit 0 is always clear.
func (s *Sequencer) shiftRegister(total int) uint64 {
	length := s.engine.params.Length
	var reg uint64
	for i := 0; i < length; i++ {
		idx := ((s.current-length+1+i)%total + total) % total
		if s.engine.steps[idx] {
			reg |= 1
		}
		reg <<= 1
	}
	return reg
}
