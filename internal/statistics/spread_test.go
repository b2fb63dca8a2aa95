package statistics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeSpreadEmpty(t *testing.T) {
	s := ComputeSpread(nil)
	if s.Count != 0 || s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("expected zero spread for empty input, got %+v", s)
	}
}

func TestComputeSpreadSingle(t *testing.T) {
	s := ComputeSpread([]float64{0.8})
	if s.Count != 1 {
		t.Errorf("expected count 1, got %d", s.Count)
	}
	if !almostEqual(s.Mean, 0.8) || !almostEqual(s.Min, 0.8) || !almostEqual(s.Max, 0.8) || !almostEqual(s.Median, 0.8) {
		t.Errorf("expected all stats 0.8, got %+v", s)
	}
	if s.StdDev != 0 {
		t.Errorf("expected zero stddev for a single score, got %g", s.StdDev)
	}
}

func TestComputeSpread(t *testing.T) {
	s := ComputeSpread([]float64{0.9, 0.5, 0.7, 0.3})

	if s.Count != 4 {
		t.Errorf("expected count 4, got %d", s.Count)
	}
	if !almostEqual(s.Mean, 0.6) {
		t.Errorf("expected mean 0.6, got %g", s.Mean)
	}
	if !almostEqual(s.Min, 0.3) || !almostEqual(s.Max, 0.9) {
		t.Errorf("expected min 0.3 and max 0.9, got %+v", s)
	}
	if !almostEqual(s.Median, 0.6) {
		t.Errorf("expected median 0.6, got %g", s.Median)
	}
	// Sample stddev of {0.3,0.5,0.7,0.9} is sqrt(0.2/3).
	if !almostEqual(s.StdDev, math.Sqrt(0.2/3)) {
		t.Errorf("unexpected stddev %g", s.StdDev)
	}
}

func TestComputeSpreadDoesNotMutateInput(t *testing.T) {
	scores := []float64{0.9, 0.1, 0.5}
	ComputeSpread(scores)
	if scores[0] != 0.9 || scores[1] != 0.1 || scores[2] != 0.5 {
		t.Errorf("input slice was reordered: %v", scores)
	}
}
