package detect

// HeartRate returns the mean inter-detection interval, in samples, over
// a list of detection indices: (max - min) / (count - 1). Callers
// wanting beats-per-minute divide the result by frequency to get
// seconds-per-beat, then invert and scale by 60.
//
// HeartRate requires at least two detections; callers are responsible
// for not invoking it on a shorter list (every call site in this
// package only does so after checking length).
func HeartRate(detections []int) float64 {
	lo, hi := detections[0], detections[0]
	for _, d := range detections {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return float64(hi-lo) / float64(len(detections)-1)
}
