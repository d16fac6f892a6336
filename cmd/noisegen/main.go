// Command noisegen renders one noise channel to a WAV file and optionally
// prints calibration statistics.
//
// Usage:
//
//	noisegen [flags] [output.wav]
//
// Samples are scaled so that 10 V maps to full scale. Without an output
// path only the statistics are printed.
//
// Examples:
//
//	noisegen -channel pink -duration 10 pink.wav
//	noisegen -channel gray -rate 48000 -bits 24 gray.wav
//	noisegen -channel gray -gray-block 2048 -stats
//	noisegen -channel red -gain -6 -stats
//	noisegen -channel perlin -speed 4 -amp 8 perlin.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	"github.com/cwbudde/algo-modular/dsp/core"
	"github.com/cwbudde/algo-modular/dsp/dither"
	"github.com/cwbudde/algo-modular/dsp/noise"
	"github.com/cwbudde/algo-modular/dsp/spectrum"
	"github.com/cwbudde/algo-modular/dsp/window"
)

const (
	fullScaleVolts = 10.0
	pcmFormat      = 1
	monoChannels   = 1

	// Slope fit band for -stats.
	slopeLowHz  = 100.0
	slopeHighHz = 5000.0
)

type options struct {
	channel   noise.Channel
	duration  float64
	cfg       core.ProcessorConfig
	grayBlock int
	gainDB    float64
	bits      int
	dither    dither.DitherType
	perlin    noise.PerlinParams
	stats     bool
	frame     int
	window    window.Type
	output    string
}

// rendering is one channel in volts plus the bank latency it was rendered with.
type rendering struct {
	samples []float64
	latency int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	opts, err := parseFlags()
	if err != nil {
		return err
	}

	r, err := render(opts)
	if err != nil {
		return err
	}

	if opts.output != "" {
		q, err := dither.NewQuantizer(
			dither.WithBitDepth(opts.bits),
			dither.WithDitherType(opts.dither),
			dither.WithSeed(opts.cfg.Seed),
		)
		if err != nil {
			return err
		}
		if err := writeWAV(opts.output, r.samples, int(opts.cfg.SampleRate), q); err != nil {
			return err
		}
		log.Printf("wrote %d samples of %s noise to %s", len(r.samples), opts.channel, opts.output)
	}

	if opts.stats || opts.output == "" {
		st, err := computeStats(opts, r)
		if err != nil {
			return err
		}
		return printStats(os.Stdout, st)
	}
	return nil
}

func parseFlags() (options, error) {
	channel := flag.String("channel", "white", "noise channel: white, pink, red, violet, blue, gray, prism, perlin")
	duration := flag.Float64("duration", 5, "length in seconds")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	seed := flag.Uint64("seed", 1, "random seed")
	block := flag.Int("block", 512, "render block size in samples")
	grayBlock := flag.Int("gray-block", noise.GrayBlockSize, "gray filter FFT block size in samples")
	gain := flag.Float64("gain", 0, "output gain in dB")
	bits := flag.Int("bits", 16, "PCM bit depth: 16 or 24")
	ditherName := flag.String("dither", "triangular", "dither type: none, rectangular, triangular")
	speed := flag.Float64("speed", 1, "Perlin speed in noise units per second")
	amp := flag.Float64("amp", 5, "Perlin amplitude in volts")
	stats := flag.Bool("stats", false, "print RMS and spectral slope")
	frame := flag.Int("frame", 4096, "FFT frame size for -stats")
	windowName := flag.String("window", "hann", "analysis window for -stats: rectangular, hann, hamming, blackman")
	flag.Parse()

	ch, err := noise.ParseChannel(*channel)
	if err != nil {
		return options{}, err
	}
	if *duration <= 0 {
		return options{}, fmt.Errorf("duration must be positive: %g", *duration)
	}
	if *grayBlock <= 0 {
		return options{}, fmt.Errorf("gray block size must be positive: %d", *grayBlock)
	}
	if *bits != 16 && *bits != 24 {
		return options{}, fmt.Errorf("unsupported bit depth %d", *bits)
	}
	dt, err := dither.ParseDitherType(*ditherName)
	if err != nil {
		return options{}, err
	}

	win, err := window.ParseType(*windowName)
	if err != nil {
		return options{}, err
	}

	perlin := noise.DefaultPerlinParams()
	perlin.Speed, perlin.Amp = *speed, *amp

	opts := options{
		channel:  ch,
		duration: *duration,
		cfg: core.ApplyProcessorOptions(
			core.WithSampleRate(*rate),
			core.WithSeed(*seed),
			core.WithBlockSize(*block),
		),
		grayBlock: *grayBlock,
		gainDB:    *gain,
		bits:      *bits,
		dither:    dt,
		perlin:    perlin,
		stats:     *stats,
		frame:     *frame,
		window:    win,
	}
	if args := flag.Args(); len(args) > 0 {
		opts.output = args[0]
	}
	return opts, nil
}

// render returns the channel in volts, block by block.
func render(opts options) (rendering, error) {
	bankOpts := []noise.Option{
		noise.WithSampleRate(opts.cfg.SampleRate),
		noise.WithSeed(opts.cfg.Seed),
	}
	if opts.grayBlock > 0 {
		bankOpts = append(bankOpts, noise.WithBlockSize(opts.grayBlock))
	}
	bank, err := noise.NewBank(bankOpts...)
	if err != nil {
		return rendering{}, fmt.Errorf("create noise bank: %w", err)
	}

	gain := core.DBToLinear(opts.gainDB)
	n := int(math.Round(opts.duration * opts.cfg.SampleRate))
	out := make([]float64, n)
	for start := 0; start < n; start += opts.cfg.BlockSize {
		end := min(start+opts.cfg.BlockSize, n)
		bank.RenderChannel(opts.channel, opts.perlin, gain, out[start:end])
	}
	return rendering{samples: out, latency: bank.Latency()}, nil
}

// writeWAV quantizes volts, with 10 V at full scale, and writes a mono PCM file.
func writeWAV(path string, volts []float64, sampleRate int, q *dither.Quantizer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	normalized := make([]float64, len(volts))
	f64.Scale(normalized, volts, 1/fullScaleVolts)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		Data:           make([]int, len(volts)),
		SourceBitDepth: q.BitDepth(),
	}
	q.ProcessBlock(buf.Data, normalized)

	enc := wav.NewEncoder(f, sampleRate, q.BitDepth(), monoChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// stats is one row of the -stats report. NaN marks a value that does not
// apply or could not be measured.
type stats struct {
	channel     noise.Channel
	samples     int
	rms         float64
	targetRMS   float64
	bandPowerDB float64
	slope       float64
	modelSlope  float64
	window      window.Metadata
	enbw        float64
}

func computeStats(opts options, r rendering) (stats, error) {
	// Gray output starts with one silent block.
	analysed := r.samples
	if opts.channel == noise.ChannelGray && len(analysed) > r.latency {
		analysed = analysed[r.latency:]
	}

	st := stats{
		channel:     opts.channel,
		samples:     len(analysed),
		targetRMS:   math.NaN(),
		bandPowerDB: math.NaN(),
		slope:       math.NaN(),
		modelSlope:  math.NaN(),
		enbw:        math.NaN(),
	}

	var err error
	if st.rms, err = spectrum.RMS(analysed); err != nil {
		return stats{}, err
	}

	gain := core.DBToLinear(opts.gainDB)
	if v, ok := noise.ExpectedRMS(opts.channel); ok {
		st.targetRMS = v * gain
	}
	if v, ok := noise.ExpectedSlope(opts.channel, slopeLowHz, slopeHighHz, opts.cfg.SampleRate); ok {
		st.modelSlope = v
	}

	psd, err := spectrum.Welch(analysed, opts.cfg.SampleRate, opts.frame,
		spectrum.WithMeanRemoval(), spectrum.WithWindow(opts.window))
	switch {
	case err == nil:
		st.window = window.Info(psd.Window)
		st.enbw = psd.ENBW
		st.bandPowerDB = core.LinearPowerToDB(psd.BandPower(slopeLowHz, slopeHighHz))
		if s, serr := spectrum.OctaveSlope(psd, slopeLowHz, slopeHighHz); serr == nil {
			st.slope = s
		}
	case errors.Is(err, spectrum.ErrFrameSize):
		log.Printf("skipping spectrum: %v", err)
	default:
		return stats{}, err
	}
	return st, nil
}

func printStats(w io.Writer, st stats) error {
	if st.window.Name != "" {
		fmt.Fprintf(w, "Welch window: %s, ENBW %.2f bins\n", st.window.Name, st.enbw)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tSamples\tRMS [V]\tTarget RMS [V]\tBand power [dB V^2]\tSlope [dB/oct]\tModel slope [dB/oct]\n")
	fmt.Fprintf(tw, "-------\t-------\t-------\t--------------\t-------------------\t--------------\t--------------------\n")
	fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\t%s\t%s\t%s\n",
		st.channel, st.samples, st.rms,
		formatValue(st.targetRMS, "%.4f"),
		formatValue(st.bandPowerDB, "%.2f"),
		formatValue(st.slope, "%.2f"),
		formatValue(st.modelSlope, "%.2f"),
	)
	return tw.Flush()
}

func formatValue(v float64, format string) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf(format, v)
}
