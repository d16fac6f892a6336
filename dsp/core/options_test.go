package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(48000), WithBlockSize(256), WithSeed(99))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want 48000", cfg.SampleRate)
	}
	if cfg.BlockSize != 256 {
		t.Fatalf("block size = %d, want 256", cfg.BlockSize)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed = %d, want 99", cfg.Seed)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestSampleTime(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(50000))
	if got := cfg.SampleTime(); got != 2e-5 {
		t.Fatalf("SampleTime() = %v, want 2e-5", got)
	}
}
