// Package consensus implements the multi-lead fusion layer (C7):
// running the single-lead detectors per lead, accumulating per-sample
// vote histograms, and extracting the boundaries a majority of leads
// agree on.
package consensus

import (
	"sync"

	"github.com/brody-taylor/p-terminal-force/detect"
	"github.com/brody-taylor/p-terminal-force/model"
)

// QRSConsensusThreshold and TWaveConsensusThreshold are the minimum
// fraction of leads that must report a detection for it to count
// toward the consensus.
const (
	QRSConsensusThreshold   = 0.5
	TWaveConsensusThreshold = 0.5
)

// DetermineQRS runs the single-lead QRS detector independently across
// leads and returns the consensus boundaries, with refractory
// consolidation applied. Per-lead detection runs concurrently; the
// vote histogram is only combined after every lead has finished, so no
// shared state is mutated concurrently.
func DetermineQRS(leads [][]float64, frequency float64) []model.Boundary {
	if len(leads) == 0 {
		return nil
	}
	n := len(leads[0])

	perLead := runPerLead(leads, func(samples []float64) []model.Boundary {
		return detect.QRSBoundaries(samples, frequency, true)
	})

	votes := tallyVotes(perLead, n)
	threshold := QRSConsensusThreshold * float64(len(leads))
	runs := extractRuns(votes, threshold)

	refractory := secondsToSamples(detect.QRSRefractoryPeriod, frequency)
	return consolidateRefractory(runs, refractory)
}

// DetermineTWaves runs the single-lead T-wave detector independently
// across leads, using the already-agreed qrs boundaries, and returns
// the consensus boundaries (no refractory consolidation).
func DetermineTWaves(leads [][]float64, frequency float64, qrs []model.Boundary) []model.Boundary {
	if len(leads) == 0 {
		return nil
	}
	n := len(leads[0])

	perLead := runPerLead(leads, func(samples []float64) []model.Boundary {
		return detect.TWaveBoundaries(qrs, samples, frequency, true)
	})

	votes := tallyVotes(perLead, n)
	threshold := TWaveConsensusThreshold * float64(len(leads))
	runs := extractRuns(votes, threshold)
	return runs
}

// runPerLead applies detector to every lead's samples concurrently and
// returns the results in lead order.
func runPerLead(leads [][]float64, detector func([]float64) []model.Boundary) [][]model.Boundary {
	results := make([][]model.Boundary, len(leads))
	var wg sync.WaitGroup
	for i, samples := range leads {
		wg.Add(1)
		go func(i int, samples []float64) {
			defer wg.Done()
			results[i] = detector(samples)
		}(i, samples)
	}
	wg.Wait()
	return results
}

// tallyVotes builds the per-sample vote histogram over length-n
// waveforms: every reported boundary increments its inclusive
// [start, end] span by one.
func tallyVotes(perLead [][]model.Boundary, n int) []int {
	votes := make([]int, n)
	for _, boundaries := range perLead {
		for _, b := range boundaries {
			start, end := b.Start, b.End
			if start < 0 {
				start = 0
			}
			if end >= n {
				end = n - 1
			}
			for i := start; i <= end; i++ {
				votes[i]++
			}
		}
	}
	return votes
}

// extractRuns finds every maximal contiguous run of indices whose vote
// count meets threshold.
func extractRuns(votes []int, threshold float64) []model.Boundary {
	var runs []model.Boundary
	start := -1
	for i, v := range votes {
		if float64(v) >= threshold {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			runs = append(runs, model.NewMonophasic(start, i-1))
			start = -1
		}
	}
	if start != -1 {
		runs = append(runs, model.NewMonophasic(start, len(votes)-1))
	}
	return runs
}

// consolidateRefractory merges adjacent consensus intervals whose
// starts fall within the refractory period, repeating until no pair
// violates it.
func consolidateRefractory(runs []model.Boundary, refractory int) []model.Boundary {
	for {
		merged := false
		for i := 1; i < len(runs); i++ {
			if runs[i-1].Start+refractory > runs[i].Start {
				runs[i-1] = model.NewMonophasic(runs[i-1].Start, runs[i].End)
				runs = append(runs[:i], runs[i+1:]...)
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}
	return runs
}

func secondsToSamples(seconds, frequency float64) int {
	return int(seconds * frequency)
}
