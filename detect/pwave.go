package detect

import (
	"math"

	"github.com/brody-taylor/p-terminal-force/dspkit"
	"github.com/brody-taylor/p-terminal-force/model"
)

// PWaveBoundaries locates the P-wave preceding each QRS complex from the
// second onward, classifying each as monophasic or biphasic per
// SPEC_FULL.md §4.5. A beat is silently skipped (not erroring) whenever
// its search window is degenerate, too narrow, or shows no P-wave-sized
// negative deflection — see SPEC_FULL.md §7.
func PWaveBoundaries(qrs, tWaves []model.Boundary, samples []float64, frequency float64, doFilter bool) []model.Boundary {
	filtered := samples
	if doFilter {
		filtered = dspkit.Bandpass(samples, frequency)
	}
	derived := dspkit.Derivative(filtered)

	prIntervalMax := secondsToSamples(PRIntervalMax, frequency)
	prIntervalMin := secondsToSamples(PRIntervalMin, frequency)
	pWidthMax := secondsToSamples(PWaveWidthMax, frequency)

	pWaves := make([]model.Boundary, 0, len(qrs))
	for i := 1; i < len(qrs); i++ {
		q := qrs[i]
		if q.Start < 0 || q.End > len(derived) || q.Start > q.End {
			continue
		}
		qrsSlope := maxAbs(derived[q.Start:q.End])

		winStart := q.Start - prIntervalMax
		winEnd := q.Start

		for _, t := range tWaves {
			if winStart < t.End && t.End < winEnd {
				winStart = t.End
			}
		}

		if winEnd-winStart < prIntervalMin || winStart < 0 || winEnd > len(derived) {
			continue
		}

		if boundary, ok := findPWave(derived[winStart:winEnd], winStart, qrsSlope, pWidthMax); ok {
			pWaves = append(pWaves, boundary)
		}
	}
	return pWaves
}

// findPWave runs the backward search (SPEC_FULL.md §4.5 steps 3-8) over
// a single P-R interval's windowed derivative w, returning an absolute
// boundary and true if a P-wave is present.
func findPWave(w []float64, winStart int, qrsSlope float64, pWidthMax int) (model.Boundary, bool) {
	_, negPeak := sliceMinIndex(w)
	if math.Abs(w[negPeak]) <= 0.03*qrsSlope {
		return model.Boundary{}, false
	}

	forZero, ok := firstIndexAbove(w[negPeak:], 0)
	if !ok {
		return model.Boundary{}, false
	}
	forZero += negPeak

	backZero, ok := lastIndexAbove(w[:negPeak], 0)
	if !ok {
		return model.Boundary{}, false
	}

	backPeak := backwardPositivePeak(w, backZero, pWidthMax)
	forPeak := forwardPositivePeak(w, forZero, pWidthMax)

	start := walkBackwardBelow(w, backPeak, w[backPeak]/pStartThresholdDivisor)

	if w[forPeak]*BiphasicFactor > w[backPeak] {
		mid := negPeak + winStart
		end := walkForwardBelow(w, forPeak, w[forPeak]/2)
		return model.NewBiphasic(start+winStart, mid, end+winStart), true
	}

	end := walkForwardAbove(w, negPeak, w[negPeak]/2)
	return model.NewMonophasic(start+winStart, end+winStart), true
}

// backwardPositivePeak finds the index of the maximum of w within
// [max(0, backZero-pWidthMax), backZero).
func backwardPositivePeak(w []float64, backZero, pWidthMax int) int {
	lo := backZero - pWidthMax
	if lo < 0 {
		lo = 0
	}
	_, offset := sliceMaxIndex(w[lo:backZero])
	return lo + offset
}

// forwardPositivePeak finds the last index achieving the maximum of w
// within [forZero, min(len(w), forZero+pWidthMax)) (ties broken right).
func forwardPositivePeak(w []float64, forZero, pWidthMax int) int {
	hi := forZero + pWidthMax
	if hi > len(w) {
		hi = len(w)
	}
	offset := lastIndexOfMax(w[forZero:hi])
	return forZero + offset
}

// walkBackwardBelow walks backward from start until w[i] < threshold,
// returning the index where the walk stopped (clamped to 0).
func walkBackwardBelow(w []float64, start int, threshold float64) int {
	pos := start
	for i := start; i >= 0; i-- {
		pos = i
		if w[i] < threshold {
			break
		}
	}
	return pos
}

// walkForwardBelow walks forward from start until w[i] < threshold.
func walkForwardBelow(w []float64, start int, threshold float64) int {
	pos := start
	for i := start; i < len(w); i++ {
		pos = i
		if w[i] < threshold {
			break
		}
	}
	return pos
}

// walkForwardAbove walks forward from start until w[i] > threshold.
func walkForwardAbove(w []float64, start int, threshold float64) int {
	pos := start
	for i := start; i < len(w); i++ {
		pos = i
		if w[i] > threshold {
			break
		}
	}
	return pos
}

// maxAbs returns the largest absolute value in s.
func maxAbs(s []float64) float64 {
	var m float64
	for _, v := range s {
		if a := absFloat(v); a > m {
			m = a
		}
	}
	return m
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// firstIndexAbove returns the smallest index i in s where s[i] > threshold.
func firstIndexAbove(s []float64, threshold float64) (int, bool) {
	for i, v := range s {
		if v > threshold {
			return i, true
		}
	}
	return 0, false
}

// lastIndexAbove returns the largest index i in s where s[i] > threshold.
func lastIndexAbove(s []float64, threshold float64) (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] > threshold {
			return i, true
		}
	}
	return 0, false
}

// lastIndexOfMax returns the rightmost index achieving the maximum of s.
func lastIndexOfMax(s []float64) int {
	maxV, maxI := s[0], 0
	for i, v := range s {
		if v >= maxV {
			maxV, maxI = v, i
		}
	}
	return maxI
}
