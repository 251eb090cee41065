package strategy

import "github.com/secke/quantitative-financial-agent/internal/model"

// Trend folds the signal bank into the overall trend label, evaluated in
// precedence order. Partial-condition cases deliberately fall through to
// NEUTRAL.
func Trend(signals model.SignalSet) model.TrendLabel {
	switch {
	case signals["price_above_sma50"] &&
		signals["macd_bullish_crossover"] &&
		!signals["rsi_overbought"]:
		return model.TrendBullish
	case !signals["price_above_sma50"] &&
		signals["macd_bearish_crossover"] &&
		!signals["rsi_oversold"]:
		return model.TrendBearish
	default:
		return model.TrendNeutral
	}
}
