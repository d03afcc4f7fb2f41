package dspkit

import "gonum.org/v1/gonum/stat"

// derivativeHalfWidth is the half-width of the five-point window used to
// estimate the local slope at each interior sample.
const derivativeHalfWidth = 2

var derivativeX = []float64{0, 1, 2, 3, 4}

// Derivative estimates the slope of samples at every index via an
// ordinary-least-squares linear regression over the five samples
// centered on that index (window half-width 2). The first two and last
// two samples copy the nearest computed slope, since no full window is
// available there. Output length equals input length.
func Derivative(samples []float64) []float64 {
	n := len(samples)
	out := ensureLen(nil, n)
	if n == 0 {
		return out
	}
	if n < 2*derivativeHalfWidth+1 {
		for i := range out {
			out[i] = 0
		}
		return out
	}

	for i := derivativeHalfWidth; i < n-derivativeHalfWidth; i++ {
		window := samples[i-derivativeHalfWidth : i+derivativeHalfWidth+1]
		_, slope := stat.LinearRegression(derivativeX, window, nil, false)
		out[i] = slope
	}

	for i := 0; i < derivativeHalfWidth; i++ {
		out[i] = out[derivativeHalfWidth]
		out[n-1-i] = out[n-1-derivativeHalfWidth]
	}

	return out
}

// Squaring returns the element-wise square of samples. When signed is
// true, the sign of each input sample is preserved by emitting -x*x for
// negative inputs rather than x*x.
func Squaring(samples []float64, signed bool) []float64 {
	out := ensureLen(nil, len(samples))
	for i, x := range samples {
		sq := x * x
		if signed && x < 0 {
			sq = -sq
		}
		out[i] = sq
	}
	return out
}

// MovingAverage computes, at each index i >= width, the arithmetic mean
// of the strict look-back window samples[i-width:i]. For i < width the
// window is padded on the left with (width-i) copies of samples[0],
// reproducing the source implementation's idiosyncratic left-edge
// extrapolation exactly (see SPEC_FULL.md §9): this blends linearly into
// steady state rather than truncating the window, and downstream
// threshold logic depends on that stable behavior.
func MovingAverage(samples []float64, width int) []float64 {
	n := len(samples)
	out := ensureLen(nil, n)
	if n == 0 {
		return out
	}
	if width <= 0 {
		copy(out, samples)
		return out
	}

	first := samples[0]
	for i := 0; i < n && i < width; i++ {
		sum := first * float64(width-i)
		for j := 0; j < i; j++ {
			sum += samples[j]
		}
		out[i] = sum / float64(width)
	}

	for i := width; i < n; i++ {
		sum := 0.0
		for j := i - width; j < i; j++ {
			sum += samples[j]
		}
		out[i] = sum / float64(width)
	}

	return out
}

// LocalPeak walks from index in the direction of its initial ascent
// until the next sample is lower than the previous one, returning the
// last index of that monotone ascending run. When positive is false the
// waveform's sign is inverted first, so the same walk finds the peak of
// a negative-going wave. If index is 0, the initial direction is read
// from the right neighbor instead of the left.
//
// LocalPeak is idempotent: LocalPeak(s, LocalPeak(s, i)) == LocalPeak(s, i).
func LocalPeak(samples []float64, index int, positive bool) int {
	n := len(samples)
	if n == 0 {
		return index
	}

	sign := func(x float64) float64 {
		if x < 0 {
			return -1
		}
		return 1
	}
	at := func(i int) float64 {
		if positive {
			return samples[i]
		}
		return -samples[i]
	}

	var direction int
	if index > 0 {
		direction = int(sign(at(index) - at(index-1)))
	} else {
		direction = int(sign(at(index+1) - at(index)))
	}

	peak := index
	i := index + direction
	for i >= 0 && i < n {
		if at(i) < at(i-direction) {
			break
		}
		peak = i
		i += direction
	}

	return peak
}
