package model

import "testing"

func TestNewMonophasic(t *testing.T) {
	b := NewMonophasic(10, 20)
	if b.Kind != Monophasic || b.Start != 10 || b.End != 20 {
		t.Errorf("got %+v, want Kind=Monophasic Start=10 End=20", b)
	}
}

func TestNewBiphasic(t *testing.T) {
	b := NewBiphasic(10, 15, 20)
	if b.Kind != Biphasic || b.Start != 10 || b.Mid != 15 || b.End != 20 {
		t.Errorf("got %+v, want Kind=Biphasic Start=10 Mid=15 End=20", b)
	}
}

func TestRecordingLeadOrderIsDeterministic(t *testing.T) {
	rec := Recording{
		Frequency: 500,
		Leads: map[Lead][]float64{
			LeadV1: {1, 2, 3},
			LeadI:  {4, 5, 6},
			LeadII: {7, 8, 9},
		},
	}

	order, samples := rec.LeadOrder()
	wantOrder := []Lead{LeadI, LeadII, LeadV1}
	if len(order) != len(wantOrder) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(wantOrder))
	}
	for i, lead := range wantOrder {
		if order[i] != lead {
			t.Errorf("order[%d] = %v, want %v", i, order[i], lead)
		}
	}
	if samples[0][0] != 4 {
		t.Errorf("samples[0][0] = %v, want 4 (LeadI's waveform)", samples[0][0])
	}
}
