package calculator

import "math"

// TrueRange computes the per-bar true range: the largest of high−low,
// |high−previous close| and |low−previous close|. The first bar has no
// previous close, so its true range is just high−low.
func TrueRange(highs, lows, closes []float64) []float64 {
	n := len(closes)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	out[0] = highs[0] - lows[0]
	for i := 1; i < n; i++ {
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		out[i] = math.Max(hl, math.Max(hc, lc))
	}
	return out
}

// ATR computes the Wilder-smoothed Average True Range: seeded with the SMA of
// the first window true ranges, then ATR = (prev×(window−1) + TR) / window.
// Defined from index window−1 onward.
func ATR(highs, lows, closes []float64, window int) []float64 {
	n := len(closes)
	out := nanSlice(n)
	if window <= 0 || n < window {
		return out
	}
	tr := TrueRange(highs, lows, closes)

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += tr[i]
	}
	prev := sum / float64(window)
	out[window-1] = prev

	p := float64(window)
	for i := window; i < n; i++ {
		prev = (prev*(p-1) + tr[i]) / p
		out[i] = prev
	}
	return out
}
