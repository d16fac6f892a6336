package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1, 2.0000001}, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestRequireStepsEqual(t *testing.T) {
	RequireStepsEqual(t, []bool{true, false}, []bool{true, false})
}
