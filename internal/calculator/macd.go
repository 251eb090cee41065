package calculator

import "math"

// MACD computes the Moving Average Convergence Divergence line, its signal
// line, and the histogram. The MACD line is EMA(fast) − EMA(slow), the signal
// is an EMA of the MACD line, and the histogram is their difference.
func MACD(vals []float64, fast, slow, signalWindow int) (macd, signal, histogram []float64) {
	emaFast := EMA(vals, fast)
	emaSlow := EMA(vals, slow)

	macd = nanSlice(len(vals))
	for i := range vals {
		if !math.IsNaN(emaFast[i]) && !math.IsNaN(emaSlow[i]) {
			macd[i] = emaFast[i] - emaSlow[i]
		}
	}

	signal = EMA(macd, signalWindow)

	histogram = nanSlice(len(vals))
	for i := range vals {
		if !math.IsNaN(macd[i]) && !math.IsNaN(signal[i]) {
			histogram[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, histogram
}
