package detect

import "testing"

func TestHeartRateEvenSpacing(t *testing.T) {
	indices := []int{10}
	for i := 0; i < 9; i++ {
		indices = append(indices, indices[len(indices)-1]+100)
	}

	rate := HeartRate(indices)
	if rate != 100 {
		t.Errorf("HeartRate = %v, want 100", rate)
	}
}

func TestHeartRateTwoDetections(t *testing.T) {
	rate := HeartRate([]int{50, 550})
	if rate != 500 {
		t.Errorf("HeartRate = %v, want 500", rate)
	}
}
