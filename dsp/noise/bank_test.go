package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-modular/dsp/rng"
)

func newTestBank(t *testing.T, opts ...Option) *Bank {
	t.Helper()
	b, err := NewBank(opts...)
	require.NoError(t, err)
	return b
}

func TestNewBankDefaults(t *testing.T) {
	b := newTestBank(t)
	assert.Equal(t, 44100.0, b.SampleRate())
	assert.Equal(t, GrayBlockSize, b.Latency())

	b = newTestBank(t, WithSampleRate(48000), WithBlockSize(256), WithSampleRate(-1), nil)
	assert.Equal(t, 48000.0, b.SampleRate())
	assert.Equal(t, 256, b.Latency())
}

func TestBankDeterministic(t *testing.T) {
	a := newTestBank(t, WithSeed(5))
	b := newTestBank(t, WithSeed(5))
	c := newTestBank(t, WithSeed(6))

	params := DefaultPerlinParams()
	differs := false
	for range 2048 {
		fa := a.Process(MaskAll, params)
		fb := b.Process(MaskAll, params)
		fc := c.Process(MaskAll, params)
		require.Equal(t, fa, fb)
		if fa.White != fc.White {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestBankMatchesStandaloneGenerators(t *testing.T) {
	const seed = 9
	b := newTestBank(t, WithSeed(seed))
	white := NewWhite(rng.Derive(seed, streamWhite))
	pink := NewPink(rng.Derive(seed, streamPink))
	prism := NewPrism(rng.Derive(seed, streamPrism))
	red, violet, blue := NewRed(), NewViolet(), NewBlue()

	for range 500 {
		f := b.Process(MaskAll, DefaultPerlinParams())
		w, p := white.Next(), pink.Next()
		require.Equal(t, w, f.White)
		require.Equal(t, p, f.Pink)
		require.Equal(t, red.Process(w), f.Red)
		require.Equal(t, violet.Process(w), f.Violet)
		require.Equal(t, blue.Process(p), f.Blue)
		require.Equal(t, prism.Next(), f.Prism)
	}
}

func TestBankGatingAdvancesOnlyClosure(t *testing.T) {
	a := newTestBank(t)
	b := newTestBank(t)
	params := DefaultPerlinParams()

	for range 100 {
		f := a.Process(MaskOf(ChannelRed), params)
		require.NotZero(t, f.White)
		require.Zero(t, f.Pink)
		require.Zero(t, f.Prism)
		require.Zero(t, f.PerlinMix)
	}

	// Pink, prism and Perlin did not move in a.
	fa := a.Process(MaskOf(ChannelPink, ChannelPrism, ChannelPerlin), params)
	fb := b.Process(MaskOf(ChannelPink, ChannelPrism, ChannelPerlin), params)
	assert.Equal(t, fb.Pink, fa.Pink)
	assert.Equal(t, fb.Prism, fa.Prism)
	assert.Equal(t, fb.Octaves, fa.Octaves)

	// White moved 100 samples ahead in a.
	assert.NotEqual(t, a.Process(MaskOf(ChannelWhite), params).White,
		b.Process(MaskOf(ChannelWhite), params).White)
}

func TestBankBlueAdvancesPink(t *testing.T) {
	b := newTestBank(t)
	f := b.Process(MaskOf(ChannelBlue), DefaultPerlinParams())
	assert.NotZero(t, f.Pink)
	assert.NotZero(t, f.Blue)
	assert.Zero(t, f.White)
}

func TestBankGrayLatency(t *testing.T) {
	b := newTestBank(t)
	m := MaskOf(ChannelGray)
	for i := range b.Latency() {
		require.Zerof(t, b.Process(m, PerlinParams{}).Gray, "sample %d", i)
	}
	assert.NotZero(t, b.Process(m, PerlinParams{}).Gray)
}

func TestBankRender(t *testing.T) {
	a := newTestBank(t)
	b := newTestBank(t)
	params := DefaultPerlinParams()

	frames := make([]Frame, 300)
	a.Render(MaskAll, params, frames)
	for i := range frames {
		require.Equal(t, b.Process(MaskAll, params), frames[i])
	}
}

func TestBankRenderChannel(t *testing.T) {
	a := newTestBank(t)
	b := newTestBank(t)
	params := DefaultPerlinParams()

	dst := make([]float64, 256)
	a.RenderChannel(ChannelViolet, params, 0.5, dst)
	for i, v := range dst {
		want := b.Process(MaskOf(ChannelViolet), params).Violet * 0.5
		require.InDeltaf(t, want, v, 1e-12, "sample %d", i)
	}
}

func TestBankReset(t *testing.T) {
	b := newTestBank(t, WithBlockSize(32))
	params := DefaultPerlinParams()
	for range 100 {
		b.Process(MaskAll, params)
	}
	b.Reset()
	assert.Zero(t, b.perlin.Time())
	assert.Equal(t, [2]float64{}, b.red.lp.State())
	for range 32 {
		require.Zero(t, b.Process(MaskAll, params).Gray)
	}
}

func TestFrameValue(t *testing.T) {
	f := Frame{White: 1, Pink: 2, Red: 3, Violet: 4, Blue: 5, Gray: 6, Prism: 7, PerlinMix: 8}
	for i, ch := range Channels() {
		assert.Equal(t, float64(i+1), f.Value(ch), ch.String())
	}
	assert.Zero(t, f.Value(Channel(42)))
}

func BenchmarkBankProcessAll(b *testing.B) {
	bank, err := NewBank()
	if err != nil {
		b.Fatal(err)
	}
	params := DefaultPerlinParams()
	for i := 0; i < b.N; i++ {
		_ = bank.Process(MaskAll, params)
	}
}
