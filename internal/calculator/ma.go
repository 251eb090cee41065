package calculator

import "math"

// SMA computes the simple moving average of vals over the trailing window.
// Leading NaN values in the input (an indicator derived from another
// indicator) shift the warm-up accordingly.
func SMA(vals []float64, window int) []float64 {
	out := nanSlice(len(vals))
	fv := firstValid(vals)
	if window <= 0 || fv < 0 || len(vals)-fv < window {
		return out
	}
	sum := 0.0
	for i := fv; i < len(vals); i++ {
		sum += vals[i]
		if i-fv >= window {
			sum -= vals[i-window]
		}
		if i-fv >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes the exponential moving average of vals over the window,
// seeded with the SMA of the first window values.
func EMA(vals []float64, window int) []float64 {
	out := nanSlice(len(vals))
	fv := firstValid(vals)
	if window <= 0 || fv < 0 || len(vals)-fv < window {
		return out
	}
	mult := 2.0 / float64(window+1)
	sum := 0.0
	for i := fv; i < fv+window; i++ {
		sum += vals[i]
	}
	prev := sum / float64(window)
	out[fv+window-1] = prev
	for i := fv + window; i < len(vals); i++ {
		prev = vals[i]*mult + prev*(1-mult)
		out[i] = prev
	}
	return out
}

// RollingStd computes the population standard deviation over the trailing
// window, aligned like SMA. Rounding can push the incremental variance
// slightly negative; it is clamped at zero.
func RollingStd(vals []float64, window int) []float64 {
	out := nanSlice(len(vals))
	fv := firstValid(vals)
	if window <= 0 || fv < 0 || len(vals)-fv < window {
		return out
	}
	sum, sumSq := 0.0, 0.0
	for i := fv; i < len(vals); i++ {
		v := vals[i]
		sum += v
		sumSq += v * v
		if i-fv >= window {
			old := vals[i-window]
			sum -= old
			sumSq -= old * old
		}
		if i-fv >= window-1 {
			mean := sum / float64(window)
			variance := sumSq/float64(window) - mean*mean
			out[i] = math.Sqrt(math.Max(variance, 0))
		}
	}
	return out
}
