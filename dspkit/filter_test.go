package dspkit

import (
	"math"
	"testing"
)

func generateSine(amplitude, freqHz, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/sampleRate)
	}
	return out
}

func TestHighpassPreservesLength(t *testing.T) {
	samples := generateSine(1, 10, 500, 1000)
	out := Highpass(samples, 500, DefaultHighpassCutoff)
	if len(out) != len(samples) {
		t.Fatalf("len = %d, want %d", len(out), len(samples))
	}
	for i, v := range out {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("out[%d] = %v, not finite", i, v)
		}
	}
}

func TestHighpassRemovesDCOffset(t *testing.T) {
	samples := make([]float64, 2000)
	for i := range samples {
		samples[i] = 5.0
	}
	out := Highpass(samples, 500, DefaultHighpassCutoff)

	// A highpass filter should drive a pure DC input toward zero well
	// away from the edges.
	if math.Abs(out[1000]) > 0.5 {
		t.Errorf("out[1000] = %v, want near 0", out[1000])
	}
}

func TestHighpassDegenerateCutoffIsNoOp(t *testing.T) {
	samples := generateSine(1, 10, 500, 100)
	out := Highpass(samples, 500, 0)
	for i := range samples {
		if out[i] != samples[i] {
			t.Fatalf("out[%d] = %v, want %v (no-op)", i, out[i], samples[i])
		}
	}
}

func TestSmoothSavitzkyGolayPreservesLength(t *testing.T) {
	samples := generateSine(1, 10, 500, 200)
	out := SmoothSavitzkyGolay(samples)
	if len(out) != len(samples) {
		t.Fatalf("len = %d, want %d", len(out), len(samples))
	}
}

func TestSmoothSavitzkyGolayConstantInputUnchanged(t *testing.T) {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = 3.0
	}
	out := SmoothSavitzkyGolay(samples)
	for i, v := range out {
		if !almostEqual(v, 3.0, 1e-6) {
			t.Errorf("out[%d] = %v, want 3.0", i, v)
		}
	}
}

func TestBandpassPreservesLength(t *testing.T) {
	samples := generateSine(1, 10, 500, 1000)
	out := Bandpass(samples, 500)
	if len(out) != len(samples) {
		t.Fatalf("len = %d, want %d", len(out), len(samples))
	}
}

func TestBandpassWithHighpassCutoffOption(t *testing.T) {
	samples := generateSine(1, 10, 500, 1000)
	out := Bandpass(samples, 500, WithHighpassCutoff(1.5))
	if len(out) != len(samples) {
		t.Fatalf("len = %d, want %d", len(out), len(samples))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HighpassCutoff != DefaultHighpassCutoff {
		t.Errorf("HighpassCutoff = %v, want %v", cfg.HighpassCutoff, DefaultHighpassCutoff)
	}
}
