// Package analyzer invokes the independent analysis units over one series
// and merges their outputs into a single report. The units themselves share
// no state; the merge is presentation glue.
package analyzer

import (
	"fmt"

	"github.com/secke/quantitative-financial-agent/internal/calculator"
	"github.com/secke/quantitative-financial-agent/internal/extrema"
	"github.com/secke/quantitative-financial-agent/internal/model"
	"github.com/secke/quantitative-financial-agent/internal/strategy"
	"github.com/secke/quantitative-financial-agent/internal/volatility"
)

// Options configures the window sizes and thresholds of every unit.
// SMAWindows and EMAWindows are positional: the canonical report keys
// (SMA_20, SMA_50, SMA_200, EMA_12, EMA_26) always refer to the first,
// second, and third configured window respectively.
type Options struct {
	RSIWindow        int
	MACDFast         int
	MACDSlow         int
	MACDSignal       int
	SMAWindows       []int
	EMAWindows       []int
	BollingerWindow  int
	BollingerStdDev  float64
	StochasticWindow int
	StochasticSmooth int
	ATRWindow        int
	ExtremaOrder     int
	MaxLevels        int
	RiskMedium       float64
	RiskHigh         float64
}

// DefaultOptions returns the reference configuration. The risk thresholds and
// extrema radius are fixed constants downstream callers depend on; they are
// defaults here, never recalibrated.
func DefaultOptions() Options {
	return Options{
		RSIWindow:        14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		SMAWindows:       []int{20, 50, 200},
		EMAWindows:       []int{12, 26},
		BollingerWindow:  20,
		BollingerStdDev:  2.0,
		StochasticWindow: 14,
		StochasticSmooth: 3,
		ATRWindow:        14,
		ExtremaOrder:     5,
		MaxLevels:        5,
		RiskMedium:       0.20,
		RiskHigh:         0.40,
	}
}

// Analyzer is a stateless façade over the analysis units. It is safe for
// concurrent use: every call operates only on its own inputs.
type Analyzer struct {
	opts Options
}

// New creates an Analyzer with the given options.
func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// Indicators computes the indicator set for the final bar of the series.
// Windows starved of history yield nil fields, never an error; only a fully
// empty series is an error.
func (a *Analyzer) Indicators(series model.Series) (*model.IndicatorSet, error) {
	if series.Empty() {
		return nil, model.ErrEmptySeries
	}
	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()

	set := &model.IndicatorSet{}

	set.RSI = calculator.Last(calculator.RSI(closes, a.opts.RSIWindow))

	macd, signal, histogram := calculator.MACD(closes, a.opts.MACDFast, a.opts.MACDSlow, a.opts.MACDSignal)
	set.MACD = calculator.Last(macd)
	set.MACDSignal = calculator.Last(signal)
	set.MACDHistogram = calculator.Last(histogram)

	smaFields := []**float64{&set.SMA20, &set.SMA50, &set.SMA200}
	for i, w := range a.opts.SMAWindows {
		if i >= len(smaFields) {
			break
		}
		*smaFields[i] = calculator.Last(calculator.SMA(closes, w))
	}

	emaFields := []**float64{&set.EMA12, &set.EMA26}
	for i, w := range a.opts.EMAWindows {
		if i >= len(emaFields) {
			break
		}
		*emaFields[i] = calculator.Last(calculator.EMA(closes, w))
	}

	upper, middle, lower := calculator.Bollinger(closes, a.opts.BollingerWindow, a.opts.BollingerStdDev)
	set.BBUpper = calculator.Last(upper)
	set.BBMiddle = calculator.Last(middle)
	set.BBLower = calculator.Last(lower)

	k, d := calculator.Stochastic(highs, lows, closes, a.opts.StochasticWindow, a.opts.StochasticSmooth)
	set.StochasticK = calculator.Last(k)
	set.StochasticD = calculator.Last(d)

	return set, nil
}

// Analyze runs all units for one symbol and merges the outputs.
// meta may be nil; its beta, when present, enriches the volatility report.
func (a *Analyzer) Analyze(symbol string, series model.Series, meta *model.Metadata) (*model.Report, error) {
	if series.Empty() {
		return nil, fmt.Errorf("%s: %w", symbol, model.ErrEmptySeries)
	}

	ind, err := a.Indicators(series)
	if err != nil {
		return nil, fmt.Errorf("indicators for %s: %w", symbol, err)
	}

	price := series.Last().Close
	signals := strategy.Evaluate(ind, price)

	levels, err := extrema.Levels(series, a.opts.ExtremaOrder, a.opts.MaxLevels)
	if err != nil {
		return nil, fmt.Errorf("levels for %s: %w", symbol, err)
	}

	var beta *float64
	if meta != nil {
		beta = meta.Beta
	}
	vol, err := volatility.Score(series, beta, volatility.Settings{
		ATRWindow:  a.opts.ATRWindow,
		RiskMedium: a.opts.RiskMedium,
		RiskHigh:   a.opts.RiskHigh,
	})
	if err != nil {
		return nil, fmt.Errorf("volatility for %s: %w", symbol, err)
	}

	return &model.Report{
		Symbol:     symbol,
		Date:       series.Last().Time,
		Summary:    summarize(series),
		Indicators: ind,
		Signals:    signals,
		Trend:      strategy.Trend(signals),
		Levels:     levels,
		Volatility: vol,
		Metadata:   meta,
	}, nil
}

// summarize derives the basic statistics block from the series itself.
func summarize(series model.Series) *model.Summary {
	last := series.Last()
	s := &model.Summary{
		CurrentPrice: last.Close,
		Volume:       last.Volume,
		DataPoints:   len(series),
	}
	if len(series) > 1 {
		prev := series[len(series)-2].Close
		s.PreviousClose = &prev
		change := last.Close - prev
		s.Change = &change
		if prev != 0 {
			pct := change / prev * 100
			s.ChangePercent = &pct
		}
	}
	if hi, lo, err := calculator.Range(series.Highs(), series.Lows(), 0); err == nil {
		s.PeriodHigh = hi
		s.PeriodLow = lo
	}
	if avg, err := calculator.Mean(series.Volumes()); err == nil {
		s.AverageVolume = avg
	}
	return s
}
