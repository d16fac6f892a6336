package noise

import (
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/rng"
)

// Option configures a Bank.
type Option func(*bankConfig)

type bankConfig struct {
	core.ProcessorConfig

	grayBlock int
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(c *bankConfig) {
		core.WithSampleRate(sampleRate)(&c.ProcessorConfig)
	}
}

// WithSeed sets the seed the white, pink and prism generators derive from.
func WithSeed(seed uint64) Option {
	return func(c *bankConfig) {
		core.WithSeed(seed)(&c.ProcessorConfig)
	}
}

// WithBlockSize sets the gray filter block size. Non-positive values are ignored.
func WithBlockSize(size int) Option {
	return func(c *bankConfig) {
		if size > 0 {
			c.grayBlock = size
		}
	}
}

// Seed streams for the independent random sources of a Bank.
const (
	streamWhite = iota
	streamPink
	streamPrism
)

// Frame holds one sample of every output. Channels that were not advanced
// are zero.
type Frame struct {
	White, Pink, Red, Violet, Blue, Gray, Prism float64

	Octaves   [PerlinOctaves]float64
	PerlinMix float64
}

// Value returns the sample of ch. ChannelPerlin maps to the octave mix.
func (f Frame) Value(ch Channel) float64 {
	switch ch {
	case ChannelWhite:
		return f.White
	case ChannelPink:
		return f.Pink
	case ChannelRed:
		return f.Red
	case ChannelViolet:
		return f.Violet
	case ChannelBlue:
		return f.Blue
	case ChannelGray:
		return f.Gray
	case ChannelPrism:
		return f.Prism
	case ChannelPerlin:
		return f.PerlinMix
	default:
		return 0
	}
}

// Bank owns one instance of every generator.
//
// Bank is not safe for concurrent use.
type Bank struct {
	cfg bankConfig

	white  *White
	pink   *Pink
	red    *Red
	violet *Differentiator
	blue   *Differentiator
	gray   *Gray
	prism  *Prism
	perlin Perlin
}

// NewBank returns a Bank at 44.1 kHz with seed 1 and a GrayBlockSize gray
// filter unless configured otherwise.
func NewBank(opts ...Option) (*Bank, error) {
	cfg := bankConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		grayBlock:       GrayBlockSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	gray, err := NewGray(cfg.SampleRate, cfg.grayBlock)
	if err != nil {
		return nil, err
	}

	return &Bank{
		cfg:    cfg,
		white:  NewWhite(rng.Derive(cfg.Seed, streamWhite)),
		pink:   NewPink(rng.Derive(cfg.Seed, streamPink)),
		red:    NewRed(),
		violet: NewViolet(),
		blue:   NewBlue(),
		gray:   gray,
		prism:  NewPrism(rng.Derive(cfg.Seed, streamPrism)),
	}, nil
}

// SampleRate returns the configured sample rate.
func (b *Bank) SampleRate() float64 {
	return b.cfg.SampleRate
}

// Latency returns the gray channel delay in samples.
func (b *Bank) Latency() int {
	return b.gray.Size()
}

// Process advances the generators in mask.Closure() by one sample.
// Generators outside the closure keep their state untouched.
func (b *Bank) Process(mask Mask, params PerlinParams) Frame {
	var f Frame
	m := mask.Closure()

	if m.Has(ChannelWhite) {
		f.White = b.white.Next()
	}
	if m.Has(ChannelRed) {
		f.Red = b.red.Process(f.White)
	}
	if m.Has(ChannelViolet) {
		f.Violet = b.violet.Process(f.White)
	}
	if m.Has(ChannelGray) {
		f.Gray = b.gray.Process(f.White)
	}
	if m.Has(ChannelPink) {
		f.Pink = b.pink.Next()
	}
	if m.Has(ChannelBlue) {
		f.Blue = b.blue.Process(f.Pink)
	}
	if m.Has(ChannelPrism) {
		f.Prism = b.prism.Next()
	}
	if m.Has(ChannelPerlin) {
		f.Octaves, f.PerlinMix = b.perlin.Process(params, b.cfg.SampleTime())
	}

	return f
}

// Render fills dst with consecutive frames.
func (b *Bank) Render(mask Mask, params PerlinParams, dst []Frame) {
	for i := range dst {
		dst[i] = b.Process(mask, params)
	}
}

// RenderChannel fills dst with consecutive samples of ch, advancing only ch
// and its sources, then multiplies the block by gain.
func (b *Bank) RenderChannel(ch Channel, params PerlinParams, gain float64, dst []float64) {
	m := ch.Bit()
	for i := range dst {
		dst[i] = b.Process(m, params).Value(ch)
	}
	if gain != 1 {
		f64.Scale(dst, dst, gain)
	}
}

// Reset clears all generator history without reseeding the random sources.
func (b *Bank) Reset() {
	b.pink.Reset()
	b.red.Reset()
	b.violet.Reset()
	b.blue.Reset()
	b.gray.Reset()
	b.perlin.Reset()
}
