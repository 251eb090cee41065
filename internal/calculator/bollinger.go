package calculator

import "math"

// Bollinger computes the volatility envelope around SMA(window): middle is
// the SMA, upper/lower are middle ± mult × rolling standard deviation.
// A flat window collapses all three bands onto the same value.
func Bollinger(vals []float64, window int, mult float64) (upper, middle, lower []float64) {
	middle = SMA(vals, window)
	std := RollingStd(vals, window)

	upper = nanSlice(len(vals))
	lower = nanSlice(len(vals))
	for i := range vals {
		if !math.IsNaN(middle[i]) && !math.IsNaN(std[i]) {
			upper[i] = middle[i] + mult*std[i]
			lower[i] = middle[i] - mult*std[i]
		}
	}
	return upper, middle, lower
}
