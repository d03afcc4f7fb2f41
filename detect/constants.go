// Package detect implements the single-lead detection pipeline: the
// adaptive-threshold QRS detector (C3), the T-wave boundary finder (C4),
// the P-wave boundary finder (C5), the P-terminal-force quantifier (C6),
// and the heart-rate estimator (C8).
package detect

// Physiological constants, all in seconds unless noted. Names and
// values are taken verbatim from SPEC_FULL.md §6 / the original
// singlelead.py module this package is grounded on.
const (
	// QRInterval is the typical interval between Q-wave onset and the
	// R-wave, used to shift the detected R-wave start back to the
	// Q-wave start.
	QRInterval = 0.04

	// QRSRefractoryPeriod is the minimum physiological spacing between
	// QRS complexes.
	QRSRefractoryPeriod = 0.20

	// QRSWidthMax bounds a normal QRS duration; used as the moving
	// average window and boundary-refinement window width.
	QRSWidthMax = 0.12

	// PRIntervalMax bounds how far back of a QRS onset the P-wave search
	// window extends.
	PRIntervalMax = 0.22

	// PRIntervalMin is the shortest admissible P-wave search window; a
	// narrower window means a prior T-wave has crowded out the P-wave.
	PRIntervalMin = 0.12

	// PWaveWidthMax bounds the P-wave's positive-lobe search windows.
	PWaveWidthMax = 0.12

	// BiphasicFactor is the ratio a secondary slope peak must exceed,
	// relative to the primary peak, to classify a T-wave or P-wave as
	// biphasic rather than monophasic.
	BiphasicFactor = 1.5

	// qrsBaseCutoffFactor is the proportion of the local energy maximum
	// used as the initial and steady-state QRS detection threshold.
	qrsBaseCutoffFactor = 0.8

	// qrsLoweredCutoffFactor is the proportion of the current threshold
	// used when backtracking after a missed beat.
	qrsLoweredCutoffFactor = 0.5

	// qrsBacktrackFactor is the number of average inter-beat intervals
	// allowed to elapse before a backtrack scan is triggered.
	qrsBacktrackFactor = 1.8

	// pStartThresholdDivisor is the unexplained tuned constant the
	// P-wave start-point search divides the backward peak amplitude by.
	// Spec §9 flags it as an unresolved open question; it is kept as-is
	// rather than rederived.
	pStartThresholdDivisor = 1.35

	// defaultHeartRateBPM seeds the QRS detector's inter-beat estimate
	// before any beats have been found: the seed is
	// (defaultHeartRateBPM/60)*frequency samples per beat.
	defaultHeartRateBPM = 50.0
)

// secondsToSamples truncates seconds*frequency to an integer sample
// count. The source this package is grounded on truncates via Python's
// int() throughout rather than rounding; Go's int() conversion on a
// non-negative float64 truncates toward zero identically, so every
// duration-to-sample conversion in this package goes through this
// helper to keep that behavior in one place.
func secondsToSamples(seconds, frequency float64) int {
	return int(seconds * frequency)
}
