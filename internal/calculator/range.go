package calculator

import (
	"errors"
	"math"
)

// Range scans the most recent n entries of highs/lows and returns the highest
// high and the lowest low. n <= 0 or n beyond the history scans everything.
func Range(highs, lows []float64, n int) (high, low float64, err error) {
	if len(highs) == 0 || len(highs) != len(lows) {
		return 0, 0, errors.New("no bars provided")
	}
	start := 0
	if n > 0 && len(highs) > n {
		start = len(highs) - n
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(highs); i++ {
		if highs[i] > high {
			high = highs[i]
		}
		if lows[i] < low {
			low = lows[i]
		}
	}
	return high, low, nil
}

// Mean averages vals. Errors on an empty slice rather than dividing by zero.
func Mean(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, errors.New("no values provided")
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), nil
}
