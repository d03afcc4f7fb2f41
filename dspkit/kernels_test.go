package dspkit

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDerivativeConstantSlope(t *testing.T) {
	// A perfectly linear ramp has a constant derivative everywhere,
	// including at the edges where the window is copied rather than
	// computed directly.
	samples := make([]float64, 20)
	for i := range samples {
		samples[i] = float64(i) * 2.5
	}

	out := Derivative(samples)
	if len(out) != len(samples) {
		t.Fatalf("len = %d, want %d", len(out), len(samples))
	}
	for i, v := range out {
		if !almostEqual(v, 2.5, tolerance) {
			t.Errorf("out[%d] = %v, want 2.5", i, v)
		}
	}
}

func TestDerivativeShortInput(t *testing.T) {
	out := Derivative([]float64{1, 2})
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestSquaringUnsignedUpwardRamp(t *testing.T) {
	samples := []float64{-2, -1, 0, 1, 2}
	out := Squaring(samples, false)
	want := []float64{4, 1, 0, 1, 4}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSquaringSignedPreservesSign(t *testing.T) {
	samples := []float64{-2, -1, 0, 1, 2}
	out := Squaring(samples, true)
	want := []float64{-4, -1, 0, 1, 4}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMovingAverageLeftEdgeExtrapolation(t *testing.T) {
	samples := []float64{10, 20, 30, 40, 50}
	out := MovingAverage(samples, 3)

	// out[0] averages 3 copies of samples[0]: (10+10+10)/3.
	if !almostEqual(out[0], 10, tolerance) {
		t.Errorf("out[0] = %v, want 10", out[0])
	}
	// out[1] averages two copies of samples[0] plus samples[0]: (10+10+10)/3.
	if !almostEqual(out[1], 10, tolerance) {
		t.Errorf("out[1] = %v, want 10", out[1])
	}
	// out[3] is the steady-state window samples[0:3], excluding
	// samples[3] itself: (10+20+30)/3.
	if !almostEqual(out[3], 20, tolerance) {
		t.Errorf("out[3] = %v, want 20", out[3])
	}
}

func TestLocalPeakFindsAscendingRun(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 2, 1, 0}
	peak := LocalPeak(samples, 1, true)
	if peak != 3 {
		t.Errorf("peak = %d, want 3", peak)
	}
}

func TestLocalPeakIdempotent(t *testing.T) {
	samples := []float64{0, 1, 2, 3, 2, 1, 0}
	first := LocalPeak(samples, 1, true)
	second := LocalPeak(samples, first, true)
	if first != second {
		t.Errorf("LocalPeak not idempotent: %d != %d", first, second)
	}
}

func TestLocalPeakNegativeDirection(t *testing.T) {
	samples := []float64{0, -1, -2, -3, -2, -1, 0}
	peak := LocalPeak(samples, 1, false)
	if peak != 3 {
		t.Errorf("peak = %d, want 3", peak)
	}
}
