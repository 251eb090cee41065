package model

import "time"

// Bar represents a single OHLCV candlestick sample.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Series is an ordered sequence of bars with strictly increasing timestamps.
// The engine treats it as immutable input; interval spacing is not enforced.
type Series []Bar

// Empty reports whether the series holds no bars.
func (s Series) Empty() bool { return len(s) == 0 }

// Last returns the most recent bar. Callers must check Empty first.
func (s Series) Last() Bar { return s[len(s)-1] }

// Closes extracts the closing prices in order.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high prices in order.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low prices in order.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the traded volumes in order.
func (s Series) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Volume
	}
	return out
}
