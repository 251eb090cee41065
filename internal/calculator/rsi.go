package calculator

// RSI computes the Wilder-smoothed Relative Strength Index over the window.
// The first defined value sits at index window (window deltas are needed).
// A window with neither gains nor losses yields the neutral boundary 50.
func RSI(vals []float64, window int) []float64 {
	out := nanSlice(len(vals))
	if window <= 0 || len(vals) <= window {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := vals[i] - vals[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiValue(avgGain, avgLoss)

	p := float64(window)
	for i := window + 1; i < len(vals); i++ {
		change := vals[i] - vals[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0 // flat window
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
