// Package ecg is the public facade over the ECG waveform-boundary
// analysis core: type aliases over the shared model types, plus thin,
// validating wrappers around dspkit, detect, and consensus.
package ecg

import (
	"github.com/brody-taylor/p-terminal-force/consensus"
	"github.com/brody-taylor/p-terminal-force/detect"
	"github.com/brody-taylor/p-terminal-force/dspkit"
	"github.com/brody-taylor/p-terminal-force/model"
)

// Re-exported types; see package model for documentation.
type (
	Lead         = model.Lead
	Boundary     = model.Boundary
	BoundaryKind = model.BoundaryKind
	Recording    = model.Recording
	Error        = model.Error
	Kind         = model.Kind
)

// Re-exported constants.
const (
	Monophasic       = model.Monophasic
	Biphasic         = model.Biphasic
	KindInvalidInput = model.KindInvalidInput

	LeadI   = model.LeadI
	LeadII  = model.LeadII
	LeadIII = model.LeadIII
	LeadAVR = model.LeadAVR
	LeadAVL = model.LeadAVL
	LeadAVF = model.LeadAVF
	LeadV1  = model.LeadV1
	LeadV2  = model.LeadV2
	LeadV3  = model.LeadV3
	LeadV4  = model.LeadV4
	LeadV5  = model.LeadV5
	LeadV6  = model.LeadV6
)

// Physiological constants, re-exported from detect and consensus for
// external callers per SPEC_FULL.md §6.
const (
	QRInterval              = detect.QRInterval
	QRSRefractoryPeriod     = detect.QRSRefractoryPeriod
	QRSWidthMax             = detect.QRSWidthMax
	PRIntervalMax           = detect.PRIntervalMax
	PRIntervalMin           = detect.PRIntervalMin
	PWaveWidthMax           = detect.PWaveWidthMax
	BiphasicFactor          = detect.BiphasicFactor
	QRSConsensusThreshold   = consensus.QRSConsensusThreshold
	TWaveConsensusThreshold = consensus.TWaveConsensusThreshold
)

// ParseLead maps a lead name (case-insensitive) to its Lead constant.
func ParseLead(s string) (Lead, error) {
	return model.ParseLead(s)
}

// Bandpass runs the shared noise-reduction pipeline (C2): Savitzky-Golay
// smoothing followed by a Butterworth highpass.
func Bandpass(samples []float64, frequency float64) ([]float64, error) {
	if err := validate("Bandpass", samples, frequency); err != nil {
		return nil, err
	}
	return dspkit.Bandpass(samples, frequency), nil
}

// QRSBoundaries locates each QRS complex in a single lead (C3). doFilter
// selects whether samples are bandpass-filtered (C2) before detection;
// callers that already filtered the lead (e.g. before fanning it out to
// multiple single-lead operations) can pass false to skip the repeat.
func QRSBoundaries(samples []float64, frequency float64, doFilter bool) ([]Boundary, error) {
	if err := validate("QRSBoundaries", samples, frequency); err != nil {
		return nil, err
	}
	return detect.QRSBoundaries(samples, frequency, doFilter), nil
}

// TWaveBoundaries locates the T-wave following each adjacent QRS pair
// in a single lead (C4). See QRSBoundaries for doFilter.
func TWaveBoundaries(qrs []Boundary, samples []float64, frequency float64, doFilter bool) ([]Boundary, error) {
	if err := validate("TWaveBoundaries", samples, frequency); err != nil {
		return nil, err
	}
	return detect.TWaveBoundaries(qrs, samples, frequency, doFilter), nil
}

// PWaveBoundaries locates the P-wave preceding each QRS complex from the
// second onward in a single lead (C5). See QRSBoundaries for doFilter.
func PWaveBoundaries(qrs, tWaves []Boundary, samples []float64, frequency float64, doFilter bool) ([]Boundary, error) {
	if err := validate("PWaveBoundaries", samples, frequency); err != nil {
		return nil, err
	}
	return detect.PWaveBoundaries(qrs, tWaves, samples, frequency, doFilter), nil
}

// PTermMeasurements computes the P-terminal force for each P-wave (C6).
// See QRSBoundaries for doFilter.
func PTermMeasurements(samples []float64, frequency float64, pWaves []Boundary, doFilter bool) ([]float64, error) {
	if err := validate("PTermMeasurements", samples, frequency); err != nil {
		return nil, err
	}
	return detect.PTermMeasurements(samples, frequency, pWaves, doFilter), nil
}

// DetermineQRS fuses per-lead QRS detections into a consensus (C7).
func DetermineQRS(leads [][]float64, frequency float64) ([]Boundary, error) {
	if err := validateLeads("DetermineQRS", leads, frequency); err != nil {
		return nil, err
	}
	return consensus.DetermineQRS(leads, frequency), nil
}

// DetermineTWaves fuses per-lead T-wave detections into a consensus (C7).
func DetermineTWaves(leads [][]float64, frequency float64, qrs []Boundary) ([]Boundary, error) {
	if err := validateLeads("DetermineTWaves", leads, frequency); err != nil {
		return nil, err
	}
	return consensus.DetermineTWaves(leads, frequency, qrs), nil
}

// HeartRate returns the mean inter-detection interval, in samples, over
// at least two detection indices (C8).
func HeartRate(detections []int) (float64, error) {
	if len(detections) < 2 {
		return 0, model.InvalidInputf("HeartRate", "need at least 2 detections, got %d", len(detections))
	}
	return detect.HeartRate(detections), nil
}

func validate(op string, samples []float64, frequency float64) error {
	if err := model.ValidateSamples(op, samples); err != nil {
		return err
	}
	return model.ValidateFrequency(op, frequency)
}

func validateLeads(op string, leads [][]float64, frequency float64) error {
	if len(leads) == 0 {
		return model.InvalidInputf(op, "leads must not be empty")
	}
	for _, samples := range leads {
		if err := validate(op, samples, frequency); err != nil {
			return err
		}
	}
	return nil
}
