package engine

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseIdle, PhaseScanning, true},
		{PhaseIdle, PhaseFiring, false},
		{PhaseScanning, PhaseTargeting, true},
		{PhaseScanning, PhaseFiring, false},
		{PhaseTargeting, PhaseFiring, true},
		{PhaseTargeting, PhaseScanning, true},
		{PhaseTargeting, PhaseReloading, false},
		{PhaseFiring, PhaseReloading, true},
		{PhaseFiring, PhaseTargeting, false},
		{PhaseReloading, PhaseTargeting, true},
		{PhaseReloading, PhaseScanning, true},
		{PhaseReloading, PhaseFiring, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s): expected %v, got %v", tt.from, tt.to, tt.want, got)
		}
	}
	for _, p := range []Phase{PhaseScanning, PhaseTargeting, PhaseFiring, PhaseReloading} {
		if !CanTransition(p, PhaseIdle) {
			t.Errorf("Expected %s to allow stopping", p)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseReloading.String() != "Reloading" || Phase(42).String() != "Unknown" {
		t.Error("Expected phase names")
	}
}
