// Package calculator provides windowed statistics over price arrays.
//
// Every function is stateless: it takes a fixed slice plus window parameters
// and returns a result slice aligned to the input. Positions where the window
// exceeds the available history hold NaN; NaN never escapes this package
// except through the aligned slices, and Last converts it to an explicit
// absent value at the boundary.
package calculator

import "math"

// nanSlice returns a slice of length n filled with NaN.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// firstValid returns the index of the first non-NaN value, or -1.
func firstValid(vals []float64) int {
	for i, v := range vals {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}

// Last returns the final value of an aligned series as an optional,
// mapping NaN (window never warmed up) to nil.
func Last(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	v := vals[len(vals)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MeanValid averages the non-NaN values of an aligned series.
// Returns nil when no value is defined.
func MeanValid(vals []float64) *float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}
