package pattern

import (
	"github.com/cwbudde/algo-modular/dsp/euclid"
	"github.com/cwbudde/algo-modular/dsp/rng"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	seed uint64
}

// WithSeed seeds the generator used by the Random style.
func WithSeed(seed uint64) Option {
	return func(c *engineConfig) {
		c.seed = seed
	}
}

// baseKey is the subset of Params the base sequence depends on.
type baseKey struct {
	length, fill, accents int
	style                 Style
}

// Engine owns the base and composite step arrays of one sequencer.
//
// Engine is not safe for concurrent use.
type Engine struct {
	rng *rng.Generator

	params  Params
	base    baseKey
	primed  bool
	rebuilt int

	baseSteps   [MaxLength]bool
	baseAccents [MaxLength]bool

	steps   [MaxSteps]bool
	accents [MaxSteps]bool
}

// NewEngine returns an Engine holding DefaultParams.
func NewEngine(opts ...Option) *Engine {
	cfg := engineConfig{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	e := &Engine{rng: rng.New(cfg.seed)}
	e.Update(DefaultParams())
	return e
}

// Update clamps p and recomputes whatever depends on the fields that changed.
// It reports whether the composite was rebuilt.
func (e *Engine) Update(p Params) bool {
	p = p.Clamp()
	if e.primed && p == e.params {
		return false
	}

	key := baseKey{length: p.Length, fill: p.Fill, accents: p.Accents, style: p.Style}
	if !e.primed || key != e.base {
		e.generateBase(p)
		e.base = key
		e.rebuilt++
	}

	e.composite(p)
	e.params = p
	e.primed = true
	return true
}

// Params returns the clamped parameters currently in effect.
func (e *Engine) Params() Params { return e.params }

// Len returns the number of composite steps, Length+Padding.
func (e *Engine) Len() int { return e.params.Steps() }

// At returns the active and accent flags of composite step i.
// Indices outside [0, Len()) report an inactive step.
func (e *Engine) At(i int) (active, accent bool) {
	if i < 0 || i >= e.Len() {
		return false, false
	}
	return e.steps[i], e.accents[i]
}

// Steps returns a copy of the composite step flags.
func (e *Engine) Steps() []bool {
	return append([]bool(nil), e.steps[:e.Len()]...)
}

// Accents returns a copy of the composite accent flags.
func (e *Engine) Accents() []bool {
	return append([]bool(nil), e.accents[:e.Len()]...)
}

// BaseSteps returns a copy of the unrotated base sequence (Length entries).
func (e *Engine) BaseSteps() []bool {
	return append([]bool(nil), e.baseSteps[:e.params.Length]...)
}

// BaseAccents returns a copy of the per-onset accent flags (Fill entries).
func (e *Engine) BaseAccents() []bool {
	return append([]bool(nil), e.baseAccents[:e.params.Fill]...)
}

func (e *Engine) generateBase(p Params) {
	clear(e.baseSteps[:])
	clear(e.baseAccents[:])

	steps := e.baseSteps[:p.Length]
	accents := e.baseAccents[:p.Fill]

	switch p.Style {
	case Euclidean:
		copy(steps, euclid.Bjorklund(p.Length, p.Fill))
		copy(accents, euclid.Bjorklund(p.Fill, p.Accents))
	case Random:
		e.randomFill(steps, p.Fill)
		e.randomFill(accents, p.Accents)
	case Fibonacci:
		fibonacciFill(steps, p.Fill)
		fibonacciFill(accents, p.Accents)
	case Linear:
		linearFill(steps, p.Fill)
		linearFill(accents, p.Accents)
	}
}

// composite places every base onset at (s+Rotation) mod Steps and hands out
// accents in onset order, starting AccentRotation places back in the accent
// array. Step rotation and accent rotation are independent.
func (e *Engine) composite(p Params) {
	clear(e.steps[:])
	clear(e.accents[:])

	total := p.Steps()
	n := 0
	for s := 0; s < p.Length; s++ {
		if !e.baseSteps[s] {
			continue
		}
		pos := (s + p.Rotation) % total
		e.steps[pos] = true
		e.accents[pos] = e.baseAccents[(p.Fill-p.AccentRotation+n)%p.Fill]
		n++
	}
}

// randomFill walks dst repeatedly, marking each unmarked slot with
// probability k/len(dst), until exactly k slots are marked.
func (e *Engine) randomFill(dst []bool, k int) {
	if k <= 0 {
		return
	}
	ratio := float64(k) / float64(len(dst))
	for i, marked := 0, 0; marked < k; i = (i + 1) % len(dst) {
		if !dst[i] && e.rng.Uniform() < ratio {
			dst[i] = true
			marked++
		}
	}
}

// fibonacciFill marks fib(i) mod len(dst) for i in [0, k). A slot that is
// already marked moves on to the next free one so exactly k slots end up set.
func fibonacciFill(dst []bool, k int) {
	a, b := 0, 1
	for i := 0; i < k; i++ {
		mark(dst, a%len(dst))
		a, b = b, a+b
	}
}

// linearFill marks floor(len(dst)*i/k) for i in [0, k).
func linearFill(dst []bool, k int) {
	for i := 0; i < k; i++ {
		mark(dst, len(dst)*i/k)
	}
}

func mark(dst []bool, i int) {
	for dst[i] {
		i = (i + 1) % len(dst)
	}
	dst[i] = true
}
