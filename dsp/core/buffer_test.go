package core

import "testing"

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}

	cbuf := []complex128{1 + 1i, 2}
	ZeroComplex(cbuf)
	for i, v := range cbuf {
		if v != 0 {
			t.Fatalf("cbuf[%d] = %v, want 0", i, v)
		}
	}
}
