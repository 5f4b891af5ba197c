package util

import (
	"testing"
)

func TestLerpDoesNotClamp(t *testing.T) {
	if got := Lerp(0, 10, 1.5); got != 15 {
		t.Errorf("Lerp(0, 10, 1.5) = %v, want 15", got)
	}
	if got := Lerp(10, 0, 0.25); got != 7.5 {
		t.Errorf("Lerp(10, 0, 0.25) = %v, want 7.5", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-1, 0, 1, 0},
		{0.5, 0, 1, 0.5},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestHypot(t *testing.T) {
	if got := Hypot(300, 400); got != 500 {
		t.Errorf("Hypot(300, 400) = %v, want 500", got)
	}
	if got := DistanceFloat64(1, 1, 4, 5); got != 5 {
		t.Errorf("DistanceFloat64 = %v, want 5", got)
	}
}
