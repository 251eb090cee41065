// Package volatility scores return dispersion and range-based volatility for
// a price series and classifies it into a risk tier.
package volatility

import (
	"math"

	"github.com/secke/quantitative-financial-agent/internal/calculator"
	"github.com/secke/quantitative-financial-agent/internal/model"
)

// tradingDays is the annualization convention: sqrt(252) scales daily
// volatility to a yearly horizon.
const tradingDays = 252

// Settings holds the scorer's window and the fixed risk-tier thresholds.
// Thresholds are fractions of annualized volatility, not percentages.
type Settings struct {
	ATRWindow  int
	RiskMedium float64
	RiskHigh   float64
}

// DefaultSettings mirrors the reference behavior: ATR(14), MEDIUM above 20%
// annualized volatility, HIGH above 40%.
func DefaultSettings() Settings {
	return Settings{ATRWindow: 14, RiskMedium: 0.20, RiskHigh: 0.40}
}

// Returns computes the daily return series (close[i]/close[i-1] − 1).
// Entries with a zero previous close are skipped rather than divided through.
func Returns(closes []float64) []float64 {
	out := make([]float64, 0, len(closes))
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		out = append(out, closes[i]/closes[i-1]-1)
	}
	return out
}

// StdDev computes the population standard deviation of vals.
// A single value has zero dispersion; an empty slice has none at all.
func StdDev(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(vals))
	sd := math.Sqrt(variance)
	return &sd
}

// Score computes the volatility report for the series. beta is an externally
// supplied sensitivity and passes through untouched; the scorer never derives
// its own. A series shorter than two bars yields absent volatility fields and
// no risk tier. Insufficient data is representable, not coerced to zero.
func Score(series model.Series, beta *float64, s Settings) (*model.VolatilityReport, error) {
	if series.Empty() {
		return nil, model.ErrEmptySeries
	}

	rep := &model.VolatilityReport{Beta: beta}

	daily := StdDev(Returns(series.Closes()))
	if daily != nil {
		rep.DailyVolatility = daily
		annual := *daily * math.Sqrt(tradingDays)
		rep.AnnualVolatility = &annual
		rep.RiskTier = tier(annual, s)
	}

	atr := calculator.ATR(series.Highs(), series.Lows(), series.Closes(), s.ATRWindow)
	rep.ATRCurrent = calculator.Last(atr)
	rep.ATRAverage = calculator.MeanValid(atr)

	return rep, nil
}

func tier(annual float64, s Settings) model.RiskTier {
	switch {
	case annual > s.RiskHigh:
		return model.RiskHigh
	case annual > s.RiskMedium:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
