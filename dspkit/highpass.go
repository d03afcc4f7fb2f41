package dspkit

import "math"

// DefaultHighpassCutoff is the default highpass cutoff in Hz, chosen to
// remove baseline wander without attenuating the QRS complex.
const DefaultHighpassCutoff = 0.8

// Highpass applies a first-order Butterworth highpass, expressed as a
// single second-order section and run forward then backward to cancel
// phase, removing baseline wander. Output length equals input length.
//
// Coefficients are derived via the bilinear transform, matching
// dsp/filter/design/pass.butterworthFirstOrderHP in the teacher library
// (ported here as a standalone scalar kernel rather than importing the
// teacher's cascade/biquad packages, since a single fixed-order section
// needs none of their cascade or SIMD-dispatch machinery).
func Highpass(samples []float64, frequency float64, cutoff float64) []float64 {
	n := len(samples)
	out := ensureLen(nil, n)
	if n == 0 {
		return out
	}
	copy(out, samples)
	if frequency <= 0 || cutoff <= 0 || cutoff >= frequency/2 {
		return out
	}

	coeffs := butterworthFirstOrderHP(cutoff, frequency)
	filtfilt(coeffs, out)
	return out
}

// butterworthFirstOrderHP designs a first-order highpass biquad section
// (B2 = A2 = 0) at freq Hz for the given sample rate, via the bilinear
// transform with frequency prewarping.
func butterworthFirstOrderHP(freq, sampleRate float64) biquadCoefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquadCoefficients{
		b0: norm,
		b1: -norm,
		b2: 0,
		a1: (k - 1) * norm,
		a2: 0,
	}
}

// filtfilt applies coeffs to buf forward, then again forward over the
// reversed result and reverses back, canceling the phase delay a single
// causal pass would introduce (the same forward/backward idea as
// scipy.signal.sosfiltfilt, without its edge padding — see
// SPEC_FULL.md §4.1 for why that's an acceptable simplification here).
func filtfilt(coeffs biquadCoefficients, buf []float64) {
	forward := biquadSection{biquadCoefficients: coeffs}
	forward.processBlock(buf)

	reverseInPlace(buf)

	backward := biquadSection{biquadCoefficients: coeffs}
	backward.processBlock(buf)

	reverseInPlace(buf)
}

func reverseInPlace(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
