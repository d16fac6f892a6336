package testutil

import (
	"math"
	"slices"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestFormatSteps(t *testing.T) {
	if got := FormatSteps([]bool{true, false, false, true}); got != "x..x" {
		t.Fatalf("FormatSteps = %q, want x..x", got)
	}
}

func TestCountAndIndices(t *testing.T) {
	seq := []bool{false, true, true, false, true}
	if CountTrue(seq) != 3 {
		t.Fatalf("CountTrue = %d, want 3", CountTrue(seq))
	}
	if got := ActiveIndices(seq); !slices.Equal(got, []int{1, 2, 4}) {
		t.Fatalf("ActiveIndices = %v", got)
	}
}

func TestRotateSteps(t *testing.T) {
	seq := []bool{true, false, false, false}
	if got := FormatSteps(RotateSteps(seq, 1)); got != ".x.." {
		t.Fatalf("RotateSteps(1) = %s", got)
	}
	if got := FormatSteps(RotateSteps(seq, -1)); got != "...x" {
		t.Fatalf("RotateSteps(-1) = %s", got)
	}
}
