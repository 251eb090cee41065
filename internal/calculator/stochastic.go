package calculator

// Stochastic computes the stochastic oscillator:
// %K = 100 × (close − lowest_low) / (highest_high − lowest_low) over the
// window, %D = SMA(%K, smooth). A zero high-low range (flat window) yields
// the midpoint 50 instead of dividing by zero.
func Stochastic(highs, lows, closes []float64, window, smooth int) (k, d []float64) {
	n := len(closes)
	k = nanSlice(n)
	if window <= 0 || n < window {
		d = nanSlice(n)
		return k, d
	}
	for i := window - 1; i < n; i++ {
		hh := highs[i]
		ll := lows[i]
		for j := i - window + 1; j < i; j++ {
			if highs[j] > hh {
				hh = highs[j]
			}
			if lows[j] < ll {
				ll = lows[j]
			}
		}
		if hh == ll {
			k[i] = 50.0
		} else {
			k[i] = 100.0 * (closes[i] - ll) / (hh - ll)
		}
	}
	d = SMA(k, smooth)
	return k, d
}
