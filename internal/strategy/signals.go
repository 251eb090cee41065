// Package strategy evaluates the boolean signal bank over the latest
// indicator row and folds a subset of the signals into a trend label.
package strategy

import "github.com/secke/quantitative-financial-agent/internal/model"

// Env is the input every rule sees: the latest indicator row plus the
// current closing price. Fields of Env.Ind may be nil for short histories;
// a rule whose inputs are absent is false.
type Env struct {
	Ind   *model.IndicatorSet
	Price float64
}

// Rule is one named predicate over the latest row. The bank is data, not
// control flow: adding a signal means appending a Rule, the trend fold
// stays untouched.
type Rule struct {
	Name string
	When func(Env) bool
}

// Rules is the fixed signal bank.
var Rules = []Rule{
	{"rsi_oversold", func(e Env) bool { return lt(e.Ind.RSI, 30) }},
	{"rsi_overbought", func(e Env) bool { return gt(e.Ind.RSI, 70) }},
	{"rsi_neutral", func(e Env) bool {
		return e.Ind.RSI != nil && *e.Ind.RSI >= 30 && *e.Ind.RSI <= 70
	}},

	{"macd_bullish_crossover", func(e Env) bool { return above(e.Ind.MACD, e.Ind.MACDSignal) }},
	{"macd_bearish_crossover", func(e Env) bool { return above(e.Ind.MACDSignal, e.Ind.MACD) }},

	{"price_above_sma20", func(e Env) bool { return priceAbove(e.Price, e.Ind.SMA20) }},
	{"price_above_sma50", func(e Env) bool { return priceAbove(e.Price, e.Ind.SMA50) }},
	{"price_above_sma200", func(e Env) bool { return priceAbove(e.Price, e.Ind.SMA200) }},
	{"golden_cross", func(e Env) bool { return above(e.Ind.SMA50, e.Ind.SMA200) }},
	{"death_cross", func(e Env) bool { return above(e.Ind.SMA200, e.Ind.SMA50) }},

	{"near_upper_band", func(e Env) bool {
		return e.Ind.BBUpper != nil && e.Price >= *e.Ind.BBUpper*0.98
	}},
	{"near_lower_band", func(e Env) bool {
		return e.Ind.BBLower != nil && e.Price <= *e.Ind.BBLower*1.02
	}},

	{"stoch_oversold", func(e Env) bool { return lt(e.Ind.StochasticK, 20) }},
	{"stoch_overbought", func(e Env) bool { return gt(e.Ind.StochasticK, 80) }},
}

// Evaluate runs every rule in the bank against the latest row.
func Evaluate(ind *model.IndicatorSet, price float64) model.SignalSet {
	env := Env{Ind: ind, Price: price}
	out := make(model.SignalSet, len(Rules))
	for _, r := range Rules {
		out[r.Name] = r.When(env)
	}
	return out
}

func lt(p *float64, threshold float64) bool {
	return p != nil && *p < threshold
}

func gt(p *float64, threshold float64) bool {
	return p != nil && *p > threshold
}

func above(a, b *float64) bool {
	return a != nil && b != nil && *a > *b
}

func priceAbove(price float64, p *float64) bool {
	return p != nil && price > *p
}
