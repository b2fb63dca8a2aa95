// Package statistics summarizes the score distribution of a sweep so the
// report can say how far apart the combinations landed, not just which one
// won.
package statistics

import (
	"math"
	"sort"
)

// Spread describes the distribution of weighted scores across a sweep's
// combinations.
type Spread struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
}

// ComputeSpread summarizes scores. A zero-value Spread is returned for an
// empty input; StdDev is zero for a single score.
func ComputeSpread(scores []float64) Spread {
	n := len(scores)
	if n == 0 {
		return Spread{}
	}

	s := Spread{
		Count: n,
		Min:   scores[0],
		Max:   scores[0],
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(n)

	if n > 1 {
		ss := 0.0
		for _, v := range scores {
			d := v - s.Mean
			ss += d * d
		}
		s.StdDev = math.Sqrt(ss / float64(n-1))
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	mid := n / 2
	if n%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return s
}
