package detect

import (
	"github.com/brody-taylor/p-terminal-force/dspkit"
	"github.com/brody-taylor/p-terminal-force/model"
)

// PTermMeasurements computes the P-terminal force (in μV·ms) for each
// P-wave, per SPEC_FULL.md §4.6. A monophasic P-wave has no terminal
// force by definition and measures 0.
func PTermMeasurements(samples []float64, frequency float64, pWaves []model.Boundary, doFilter bool) []float64 {
	filtered := samples
	if doFilter {
		filtered = dspkit.Bandpass(samples, frequency)
	}

	measurements := make([]float64, len(pWaves))
	for i, p := range pWaves {
		if p.Kind != model.Biphasic {
			continue
		}
		measurements[i] = pTermForce(filtered, frequency, p)
	}
	return measurements
}

// pTermForce measures the depth and duration of a single biphasic
// P-wave's terminal lobe: duration is the time from the inflection to
// the end-point; depth is the largest amount, over that span, by which
// the waveform falls below the chord connecting the start-point and
// end-point amplitudes (0 if it never falls below it).
func pTermForce(filtered []float64, frequency float64, p model.Boundary) float64 {
	duration := 1000 * float64(p.End-p.Mid) / frequency

	x1, y1 := float64(p.Start), filtered[p.Start]
	x2, y2 := float64(p.End), filtered[p.End]
	slope := (y1 - y2) / (x1 - x2)
	intercept := y1 - slope*x1

	var depth float64
	for i := p.Mid; i < p.End; i++ {
		chord := slope*float64(i) + intercept
		if d := chord - filtered[i]; d > depth {
			depth = d
		}
	}
	depth *= 1000

	return depth * duration
}
