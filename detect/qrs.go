package detect

import (
	"github.com/brody-taylor/p-terminal-force/dspkit"
	"github.com/brody-taylor/p-terminal-force/model"
)

// QRSBoundaries locates each QRS complex in samples: the squared
// derivative feeds an adaptive-threshold scan (qrsDetect), and each
// detection is then refined into a (start, end) boundary via a
// moving-average envelope of that squared derivative.
//
// If doFilter is true, samples are first run through dspkit.Bandpass.
// Insufficient data (fewer samples than the boundary-refinement window
// requires) yields an empty, not erroring, result per SPEC_FULL.md §7.
func QRSBoundaries(samples []float64, frequency float64, doFilter bool) []model.Boundary {
	filtered := samples
	if doFilter {
		filtered = dspkit.Bandpass(samples, frequency)
	}

	derived := dspkit.Derivative(filtered)
	detections := qrsDetect(derived, frequency)
	if len(detections) == 0 {
		return nil
	}

	window := secondsToSamples(QRSWidthMax, frequency)
	envelope := dspkit.MovingAverage(dspkit.Squaring(derived, false), window)

	// Omit the first detection if there isn't room for its left
	// boundary window.
	if detections[0] < window {
		detections = detections[1:]
	}

	qrWidth := secondsToSamples(QRInterval, frequency)

	boundaries := make([]model.Boundary, 0, len(detections))
	for _, detection := range detections {
		boundaries = append(boundaries, refineQRSBoundary(envelope, detection, window, qrWidth))
	}
	return boundaries
}

// refineQRSBoundary derives a (start, end) boundary around a single QRS
// detection from the smoothed energy envelope:
//   - end is the local maximum of the envelope over [detection, detection+window).
//   - the R-wave start is the last index in [detection-window, detection)
//     below 5% of the local peak above the local minimum, walking
//     backward from the detection.
//   - the reported start is the R-wave start shifted earlier by the
//     typical QR interval.
func refineQRSBoundary(envelope []float64, detection, window, qrWidth int) model.Boundary {
	endIdx := detection + window
	if endIdx > len(envelope) {
		endIdx = len(envelope)
	}
	endWindow := envelope[detection:endIdx]
	localMax, endOffset := sliceMaxIndex(endWindow)
	end := detection + endOffset

	startIdx := detection - window
	if startIdx < 0 {
		startIdx = 0
	}
	startWindow := envelope[startIdx:detection]
	localMin, _ := sliceMinIndex(startWindow)
	startThreshold := localMin + 0.05*localMax

	startOffset := lastIndexBelow(startWindow, startThreshold)
	start := startIdx + startOffset - qrWidth

	return model.NewMonophasic(start, end)
}

// qrsDetect scans the squared derivative for QRS complexes using an
// adaptive threshold, as described in SPEC_FULL.md §4.3 (C3 steps 1-6).
func qrsDetect(derivative []float64, frequency float64) []int {
	squared := dspkit.Squaring(derivative, false)
	n := len(squared)
	if n == 0 {
		return nil
	}

	refract := secondsToSamples(QRSRefractoryPeriod, frequency)
	hr := (defaultHeartRateBPM / 60) * frequency

	lookback := secondsToSamples(2, frequency)
	if lookback > n {
		lookback = n
	}
	cutoffMax, _ := sliceMaxIndex(squared[:lookback])
	cutoff := qrsBaseCutoffFactor * cutoffMax

	var detections []int
	i := -1
	for i < n-1 {
		i++
		found := false

		switch {
		case squared[i] > cutoff:
			found = true
		case len(detections) > 0 && float64(i) > float64(detections[len(detections)-1])+qrsBacktrackFactor*hr:
			lowered := qrsLoweredCutoffFactor * cutoff
			for j := detections[len(detections)-1] + refract; j < i; j++ {
				if squared[j] > lowered {
					i = j
					found = true
					break
				}
			}
		}

		if !found {
			continue
		}

		peak := dspkit.LocalPeak(squared, i, true)
		detections = append(detections, peak)

		if len(detections) > 1 {
			hr = HeartRate(detections)
		}
		cutoff = 0.8*cutoff + 0.2*(0.8*squared[peak])

		i = peak + refract
	}

	return detections
}

// sliceMaxIndex returns the maximum value in s and its first index.
func sliceMaxIndex(s []float64) (float64, int) {
	maxV, maxI := s[0], 0
	for i, v := range s {
		if v > maxV {
			maxV, maxI = v, i
		}
	}
	return maxV, maxI
}

// sliceMinIndex returns the minimum value in s and its first index.
func sliceMinIndex(s []float64) (float64, int) {
	minV, minI := s[0], 0
	for i, v := range s {
		if v < minV {
			minV, minI = v, i
		}
	}
	return minV, minI
}

// lastIndexBelow returns the largest index i such that s[i] < threshold.
// If no such index exists it returns 0. For the start window in
// refineQRSBoundary that only happens when the end window's maximum is
// 0: otherwise the local minimum itself satisfies s[i] < threshold.
func lastIndexBelow(s []float64, threshold float64) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] < threshold {
			return i
		}
	}
	return 0
}
