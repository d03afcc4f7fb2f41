package detect

import (
	"math"

	"github.com/brody-taylor/p-terminal-force/dspkit"
	"github.com/brody-taylor/p-terminal-force/model"
)

// twaveWindow is a single search window: [start, end) sample indices
// bracketing one T-wave, built between a QRS complex's end and the next
// QRS complex's start.
type twaveWindow struct {
	start, end int
}

// TWaveBoundaries locates the T-wave following each adjacent pair of
// QRS complexes. Output has at most len(qrs)-1 entries: the spec
// invariant |QRS| >= |T-waves|+1 follows directly from iterating
// adjacent pairs, and a malformed window (end before start, a condition
// SPEC_FULL.md §9 notes is unreachable under well-formed QRS lists but
// is kept as a guard) silently skips that beat rather than erroring.
func TWaveBoundaries(qrs []model.Boundary, samples []float64, frequency float64, doFilter bool) []model.Boundary {
	windows := tWaveWindows(qrs, frequency)

	tWaves := make([]model.Boundary, 0, len(windows))
	for _, w := range windows {
		if w.start >= len(samples) {
			continue
		}
		end := w.end
		if end > len(samples) {
			end = len(samples)
		}
		segment := samples[w.start:end]
		if doFilter {
			segment = dspkit.Bandpass(segment, frequency)
		}

		derived := dspkit.Squaring(dspkit.Derivative(segment), true)
		endOffset := tWaveEndpoint(derived)

		tWaves = append(tWaves, model.NewMonophasic(w.start, w.start+endOffset))
	}
	return tWaves
}

// tWaveWindows builds the search window for each adjacent QRS pair per
// SPEC_FULL.md §4.4.
func tWaveWindows(qrs []model.Boundary, frequency float64) []twaveWindow {
	stOffset := secondsToSamples(0.04, frequency)

	windows := make([]twaveWindow, 0, len(qrs))
	for i := 0; i < len(qrs)-1; i++ {
		winStart := qrs[i].End + stOffset

		var hr float64
		switch {
		case i >= 4:
			hr = HeartRate(qrsStarts(qrs[i-4 : i+1]))
		case len(qrs) < 5:
			hr = HeartRate(qrsStarts(qrs))
		default:
			hr = HeartRate(qrsStarts(qrs[:5]))
		}

		length := qrs[i+1].Start - qrs[i].End

		var winEnd int
		switch {
		case hr > 0.7*frequency && length > secondsToSamples(0.5, frequency):
			winEnd = qrs[i].End + secondsToSamples(0.5, frequency)
		case length > int(0.7*hr):
			winEnd = qrs[i].End + int(0.7*hr)
		default:
			winEnd = qrs[i].End + int(0.7*float64(length))
		}

		if winEnd < winStart {
			continue
		}

		windows = append(windows, twaveWindow{start: winStart, end: winEnd})
	}
	return windows
}

func qrsStarts(qrs []model.Boundary) []int {
	starts := make([]int, len(qrs))
	for i, b := range qrs {
		starts[i] = b.Start
	}
	return starts
}

// tWaveEndpoint classifies the window's signed-squared derivative as
// monophasic or biphasic and returns the local endpoint index per
// SPEC_FULL.md §4.4 steps 1-4.
func tWaveEndpoint(derived []float64) int {
	if len(derived) == 0 {
		return 0
	}

	_, up := sliceMaxIndex(derived)
	_, down := sliceMinIndex(derived)
	peakSlope := math.Max(math.Abs(derived[up]), math.Abs(derived[down]))

	var lastPeak int
	if up < down {
		lastPeak = down
		if tail := derived[down:]; len(tail) > 0 {
			tailMax, tailMaxOffset := sliceMaxIndex(tail)
			if math.Abs(tailMax)*BiphasicFactor > peakSlope {
				lastPeak = down + tailMaxOffset
			}
		}
	} else {
		lastPeak = up
		if tail := derived[up:]; len(tail) > 0 {
			tailMin, tailMinOffset := sliceMinIndex(tail)
			if math.Abs(tailMin)*BiphasicFactor > peakSlope {
				lastPeak = up + tailMinOffset
			}
		}
	}

	threshold := derived[lastPeak] / 10

	end := lastPeak
	for i := lastPeak; i < len(derived); i++ {
		end = i
		if threshold > 0 {
			if derived[i] < threshold {
				break
			}
		} else if derived[i] > threshold {
			break
		}
	}

	return end
}
