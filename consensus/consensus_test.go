package consensus

import (
	"testing"

	"github.com/brody-taylor/p-terminal-force/detect"
	"github.com/brody-taylor/p-terminal-force/fixtures"
	"github.com/brody-taylor/p-terminal-force/model"
)

const testFrequency = 500.0

func TestDetermineQRSMatchesSingleLeadOnHealthyRecording(t *testing.T) {
	gen := fixtures.NewGenerator(testFrequency)
	rec := gen.NSR(10, 75, fixtures.NormalSinus)
	_, leads := rec.LeadOrder()

	consensusQRS := DetermineQRS(leads, testFrequency)

	single := detect.QRSBoundaries(leads[0], testFrequency, true)

	if len(consensusQRS) < len(single)-2 || len(consensusQRS) > len(single)+2 {
		t.Fatalf("consensus found %d QRS complexes, single-lead found %d", len(consensusQRS), len(single))
	}
}

func TestDetermineQRSEmptyLeadsReturnsNil(t *testing.T) {
	if got := DetermineQRS(nil, testFrequency); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestExtractRunsMajorityThreshold(t *testing.T) {
	votes := []int{0, 1, 2, 2, 1, 0, 0, 3, 3, 3, 0}
	runs := extractRuns(votes, 2)

	want := []model.Boundary{
		model.NewMonophasic(2, 3),
		model.NewMonophasic(7, 9),
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(runs), len(want), runs)
	}
	for i, w := range want {
		if runs[i].Start != w.Start || runs[i].End != w.End {
			t.Errorf("runs[%d] = %+v, want %+v", i, runs[i], w)
		}
	}
}

func TestConsolidateRefractoryMergesCloseIntervals(t *testing.T) {
	runs := []model.Boundary{
		model.NewMonophasic(0, 5),
		model.NewMonophasic(8, 12),
		model.NewMonophasic(100, 110),
	}

	merged := consolidateRefractory(runs, 10)

	if len(merged) != 2 {
		t.Fatalf("got %d intervals, want 2: %+v", len(merged), merged)
	}
	if merged[0].Start != 0 || merged[0].End != 12 {
		t.Errorf("merged[0] = %+v, want Start=0 End=12", merged[0])
	}
	if merged[1].Start != 100 || merged[1].End != 110 {
		t.Errorf("merged[1] = %+v, want Start=100 End=110", merged[1])
	}
}
