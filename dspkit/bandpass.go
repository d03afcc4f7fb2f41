package dspkit

// Bandpass runs the noise-reduction pipeline shared by every downstream
// stage that opts into filtering: Savitzky–Golay smoothing to remove
// electromyogenic high-frequency noise, followed by a Butterworth
// highpass to remove baseline wander. Output length equals input
// length.
func Bandpass(samples []float64, frequency float64, opts ...Option) []float64 {
	cfg := applyOptions(opts...)
	smoothed := SmoothSavitzkyGolay(samples)
	return Highpass(smoothed, frequency, cfg.HighpassCutoff)
}
