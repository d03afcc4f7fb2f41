// Package fixtures synthesizes deterministic ECG-shaped waveforms for
// tests, standing in for the out-of-scope MUSE/JSON fixture readers.
// It is imported only from _test.go files; no production code in this
// module depends on it.
package fixtures

import (
	"math"
	"math/rand"

	"github.com/brody-taylor/p-terminal-force/model"
)

const defaultSeed int64 = 1

// Generator synthesizes deterministic 12-lead recordings from a shared
// sampling frequency and RNG seed.
type Generator struct {
	frequency float64
	seed      int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic RNG seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.seed = seed }
}

// NewGenerator creates a Generator sampling at frequency Hz.
func NewGenerator(frequency float64, opts ...Option) *Generator {
	g := &Generator{frequency: frequency, seed: defaultSeed}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BeatShape parameterizes a single synthetic beat's P/T-wave morphology.
type BeatShape int

const (
	// NormalSinus produces a monophasic P-wave and monophasic T-wave.
	NormalSinus BeatShape = iota
	// BiphasicP produces a biphasic P-wave (the left-atrial-enlargement
	// pattern the P-terminal-force measurement targets), monophasic T.
	BiphasicP
	// BiphasicT produces a biphasic T-wave, monophasic P.
	BiphasicT
)

// NSR synthesizes a 12-lead normal-sinus-rhythm recording of the given
// duration at heartRateBPM, with a small amount of deterministic white
// noise. Lead amplitudes are scaled per the standard 12-lead relative
// QRS magnitudes (limb leads mostly smaller than precordial leads).
func (g *Generator) NSR(durationSeconds float64, heartRateBPM float64, shape BeatShape) model.Recording {
	n := int(durationSeconds * g.frequency)
	beatPeriod := int(60.0 / heartRateBPM * g.frequency)

	leadScale := map[model.Lead]float64{
		model.LeadI:   0.5,
		model.LeadII:  1.0,
		model.LeadIII: 0.6,
		model.LeadAVR: -0.4,
		model.LeadAVL: 0.3,
		model.LeadAVF: 0.7,
		model.LeadV1:  0.8,
		model.LeadV2:  1.4,
		model.LeadV3:  1.8,
		model.LeadV4:  1.6,
		model.LeadV5:  1.2,
		model.LeadV6:  0.9,
	}

	leads := make(map[model.Lead][]float64, len(leadScale))
	rng := rand.New(rand.NewSource(g.seed))
	// Draw noise in fixed lead order so each lead's waveform depends
	// only on the seed, not on map iteration order.
	for lead := model.LeadI; lead <= model.LeadV6; lead++ {
		leads[lead] = g.beatTrain(n, beatPeriod, leadScale[lead], shape, rng)
	}

	return model.Recording{Frequency: g.frequency, Leads: leads}
}

// beatTrain lays down repeated beats at beatPeriod spacing, each built
// from gaussian(P) + gaussian(QRS) + gaussian(T) components, scaled by
// amplitude, plus low-amplitude deterministic noise.
func (g *Generator) beatTrain(n, beatPeriod int, amplitude float64, shape BeatShape, rng *rand.Rand) []float64 {
	out := make([]float64, n)

	prInterval := int(0.16 * g.frequency)
	qrsWidth := int(0.08 * g.frequency)
	qtInterval := int(0.36 * g.frequency)

	for beatStart := 0; beatStart < n; beatStart += beatPeriod {
		r := beatStart + prInterval + qrsWidth/2

		addGaussianComponents(out, r, prInterval, qrsWidth, qtInterval, amplitude, shape)
	}

	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * 0.01 * amplitude
	}
	return out
}

// addGaussianComponents overlays a P-wave, QRS spike, and T-wave onto
// out, centered relative to the R-wave index r.
func addGaussianComponents(out []float64, r, prInterval, qrsWidth, qtInterval int, amplitude float64, shape BeatShape) {
	pCenter := r - prInterval
	tCenter := r + qtInterval - qrsWidth/2

	switch shape {
	case BiphasicP:
		addGaussian(out, pCenter-int(0.02*float64(prInterval)), float64(prInterval)/8, 0.08*amplitude)
		addGaussian(out, pCenter+int(0.02*float64(prInterval)), float64(prInterval)/8, -0.08*amplitude)
	default:
		addGaussian(out, pCenter, float64(prInterval)/6, 0.12*amplitude)
	}

	addGaussian(out, r, float64(qrsWidth)/6, amplitude)

	switch shape {
	case BiphasicT:
		addGaussian(out, tCenter-qrsWidth, float64(qrsWidth), 0.25*amplitude)
		addGaussian(out, tCenter+qrsWidth, float64(qrsWidth), -0.2*amplitude)
	default:
		addGaussian(out, tCenter, float64(qrsWidth)*1.5, 0.3*amplitude)
	}
}

// addGaussian adds amplitude*exp(-(i-center)^2 / (2*sigma^2)) in place
// over the indices of out that fall within +/-4 sigma of center.
func addGaussian(out []float64, center int, sigma, amplitude float64) {
	if sigma <= 0 {
		return
	}
	lo := center - int(4*sigma)
	hi := center + int(4*sigma)
	if lo < 0 {
		lo = 0
	}
	if hi > len(out) {
		hi = len(out)
	}
	for i := lo; i < hi; i++ {
		d := float64(i - center)
		out[i] += amplitude * math.Exp(-(d*d)/(2*sigma*sigma))
	}
}
