// Package stats holds the small descriptive statistics used by the analysis
// handler, on top of gonum. Order statistics work on a sorted copy so callers'
// slices are never reordered.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// Median returns the middle value (mean of the two middle values for even n).
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	s := Sorted(xs)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, s, nil)
	}
	return stat.Mean(s[n/2-1:n/2+1], nil)
}

// StdDev is the sample standard deviation. Fewer than two values yield 0.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// Quartiles returns q1 = s[n/4] and q3 = s[3n/4] over the sorted values.
func Quartiles(xs []float64) (q1, q3 float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	s := Sorted(xs)
	n := len(s)
	return s[n/4], s[3*n/4]
}

// Sorted returns an ascending copy of xs.
func Sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Ints converts integer samples for the float helpers.
func Ints(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
