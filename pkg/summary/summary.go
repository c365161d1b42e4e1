// Package summary describes a list of integer counts.
package summary

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats is a descriptive summary of a sample.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe summarizes values. StdDev is the sample standard deviation and is
// zero for fewer than two values. An empty input gives a zero Stats.
func Describe(values []int64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	x := make([]float64, len(values))
	for i, v := range values {
		x[i] = float64(v)
	}

	s := Stats{
		N:   len(x),
		Min: floats.Min(x),
		Max: floats.Max(x),
	}
	if len(x) == 1 {
		s.Mean = x[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	return s
}
