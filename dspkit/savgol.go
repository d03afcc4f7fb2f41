package dspkit

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

const (
	savgolWindow = 31
	savgolOrder  = 3
)

var (
	savgolCoeffsOnce sync.Once
	savgolCoeffs     []float64
)

// SmoothSavitzkyGolay applies a fixed window-31, order-3 Savitzky–Golay
// smoothing filter with "nearest" boundary handling (edge samples are
// replicated to extend the window past the buffer ends), removing
// electromyogenic high-frequency noise. Output length equals input
// length.
//
// The convolution coefficients are solved once, via a Vandermonde
// least-squares fit (gonum.org/v1/gonum/mat), and cached for reuse
// across calls.
func SmoothSavitzkyGolay(samples []float64) []float64 {
	n := len(samples)
	out := ensureLen(nil, n)
	if n == 0 {
		return out
	}

	coeffs := savitzkyGolayCoefficients()
	half := savgolWindow / 2

	at := func(i int) float64 {
		switch {
		case i < 0:
			return samples[0]
		case i >= n:
			return samples[n-1]
		default:
			return samples[i]
		}
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		for k := -half; k <= half; k++ {
			sum += coeffs[k+half] * at(i+k)
		}
		out[i] = sum
	}

	return out
}

// savitzkyGolayCoefficients solves for the window-31, order-3
// Savitzky–Golay smoothing kernel: the coefficients that estimate the
// value of a degree-3 polynomial fit at the center of the window, for
// every possible alignment of the window. Equivalent in effect to
// scipy.signal.savgol_filter(window_length=31, polyorder=3).
func savitzkyGolayCoefficients() []float64 {
	savgolCoeffsOnce.Do(func() {
		half := savgolWindow / 2

		// Vandermonde design matrix: row i corresponds to relative
		// offset (i-half), column j to power j, for j = 0..order.
		a := mat.NewDense(savgolWindow, savgolOrder+1, nil)
		for i := 0; i < savgolWindow; i++ {
			x := float64(i - half)
			p := 1.0
			for j := 0; j <= savgolOrder; j++ {
				a.Set(i, j, p)
				p *= x
			}
		}

		var ata mat.Dense
		ata.Mul(a.T(), a)

		var ataInv mat.Dense
		if err := ataInv.Inverse(&ata); err != nil {
			// savgolWindow > savgolOrder always holds for the fixed
			// constants above, so the Vandermonde normal matrix is
			// always invertible; this is unreachable.
			panic("dspkit: savitzky-golay normal matrix is singular")
		}

		var pinvRow mat.Dense
		pinvRow.Mul(&ataInv, a.T())

		coeffs := make([]float64, savgolWindow)
		for i := 0; i < savgolWindow; i++ {
			// Row 0 of the pseudoinverse estimates p(0), the
			// zeroth-derivative value at the window center.
			coeffs[i] = pinvRow.At(0, i)
		}
		savgolCoeffs = coeffs
	})

	return savgolCoeffs
}
