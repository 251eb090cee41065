package strategy

import (
	"testing"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

func fp(v float64) *float64 { return &v }

func TestEvaluate_AllRulesNamed(t *testing.T) {
	signals := Evaluate(&model.IndicatorSet{}, 100)
	want := []string{
		"rsi_oversold", "rsi_overbought", "rsi_neutral",
		"macd_bullish_crossover", "macd_bearish_crossover",
		"price_above_sma20", "price_above_sma50", "price_above_sma200",
		"golden_cross", "death_cross",
		"near_upper_band", "near_lower_band",
		"stoch_oversold", "stoch_overbought",
	}
	if len(signals) != len(want) {
		t.Fatalf("expected %d signals, got %d", len(want), len(signals))
	}
	for _, name := range want {
		if _, ok := signals[name]; !ok {
			t.Errorf("missing signal %q", name)
		}
	}
}

func TestEvaluate_NilIndicatorsAreFalse(t *testing.T) {
	signals := Evaluate(&model.IndicatorSet{}, 100)
	for name, active := range signals {
		if active {
			t.Errorf("signal %q should be false with no indicator values", name)
		}
	}
}

func TestEvaluate_RSIBands(t *testing.T) {
	tests := []struct {
		rsi        float64
		oversold   bool
		overbought bool
		neutral    bool
	}{
		{25, true, false, false},
		{30, false, false, true},
		{50, false, false, true},
		{70, false, false, true},
		{75, false, true, false},
	}
	for _, tt := range tests {
		signals := Evaluate(&model.IndicatorSet{RSI: fp(tt.rsi)}, 100)
		if signals["rsi_oversold"] != tt.oversold {
			t.Errorf("rsi %.0f: oversold = %v, want %v", tt.rsi, signals["rsi_oversold"], tt.oversold)
		}
		if signals["rsi_overbought"] != tt.overbought {
			t.Errorf("rsi %.0f: overbought = %v, want %v", tt.rsi, signals["rsi_overbought"], tt.overbought)
		}
		if signals["rsi_neutral"] != tt.neutral {
			t.Errorf("rsi %.0f: neutral = %v, want %v", tt.rsi, signals["rsi_neutral"], tt.neutral)
		}
	}
}

func TestEvaluate_MACDCrossovers(t *testing.T) {
	signals := Evaluate(&model.IndicatorSet{MACD: fp(1.5), MACDSignal: fp(1.0)}, 100)
	if !signals["macd_bullish_crossover"] || signals["macd_bearish_crossover"] {
		t.Error("MACD above signal should be bullish only")
	}

	signals = Evaluate(&model.IndicatorSet{MACD: fp(0.5), MACDSignal: fp(1.0)}, 100)
	if signals["macd_bullish_crossover"] || !signals["macd_bearish_crossover"] {
		t.Error("MACD below signal should be bearish only")
	}

	// Exactly equal: neither crossover fires.
	signals = Evaluate(&model.IndicatorSet{MACD: fp(1.0), MACDSignal: fp(1.0)}, 100)
	if signals["macd_bullish_crossover"] || signals["macd_bearish_crossover"] {
		t.Error("equal MACD and signal should fire neither crossover")
	}
}

func TestEvaluate_MovingAverages(t *testing.T) {
	ind := &model.IndicatorSet{
		SMA20:  fp(95),
		SMA50:  fp(90),
		SMA200: fp(105),
	}
	signals := Evaluate(ind, 100)
	if !signals["price_above_sma20"] || !signals["price_above_sma50"] {
		t.Error("price 100 should sit above SMA20=95 and SMA50=90")
	}
	if signals["price_above_sma200"] {
		t.Error("price 100 should not sit above SMA200=105")
	}
	if signals["golden_cross"] {
		t.Error("SMA50 below SMA200 should not be a golden cross")
	}
	if !signals["death_cross"] {
		t.Error("SMA200 above SMA50 should be a death cross")
	}
}

func TestEvaluate_BollingerProximity(t *testing.T) {
	ind := &model.IndicatorSet{BBUpper: fp(100), BBLower: fp(80)}

	// 98 is within 2% of the upper band.
	if !Evaluate(ind, 98)["near_upper_band"] {
		t.Error("price within 2 percent of the upper band should be near_upper_band")
	}
	if Evaluate(ind, 90)["near_upper_band"] {
		t.Error("price well inside the bands should not be near_upper_band")
	}
	// 81.6 is within 2% above the lower band.
	if !Evaluate(ind, 81)["near_lower_band"] {
		t.Error("price within 2 percent of the lower band should be near_lower_band")
	}
	if Evaluate(ind, 90)["near_lower_band"] {
		t.Error("price well inside the bands should not be near_lower_band")
	}
}

func TestEvaluate_Stochastic(t *testing.T) {
	if !Evaluate(&model.IndicatorSet{StochasticK: fp(15)}, 100)["stoch_oversold"] {
		t.Error("stochastic 15 should be stoch_oversold")
	}
	if !Evaluate(&model.IndicatorSet{StochasticK: fp(85)}, 100)["stoch_overbought"] {
		t.Error("stochastic 85 should be stoch_overbought")
	}
	signals := Evaluate(&model.IndicatorSet{StochasticK: fp(50)}, 100)
	if signals["stoch_oversold"] || signals["stoch_overbought"] {
		t.Error("stochastic 50 should fire neither signal")
	}
}

func TestTrend_Bullish(t *testing.T) {
	signals := model.SignalSet{
		"price_above_sma50":      true,
		"macd_bullish_crossover": true,
		"rsi_overbought":         false,
	}
	if got := Trend(signals); got != model.TrendBullish {
		t.Errorf("expected BULLISH, got %s", got)
	}
}

func TestTrend_BullishVetoedByOverbought(t *testing.T) {
	signals := model.SignalSet{
		"price_above_sma50":      true,
		"macd_bullish_crossover": true,
		"rsi_overbought":         true,
	}
	if got := Trend(signals); got != model.TrendNeutral {
		t.Errorf("overbought RSI should veto the bullish case, got %s", got)
	}
}

func TestTrend_Bearish(t *testing.T) {
	signals := model.SignalSet{
		"price_above_sma50":      false,
		"macd_bearish_crossover": true,
		"rsi_oversold":           false,
	}
	if got := Trend(signals); got != model.TrendBearish {
		t.Errorf("expected BEARISH, got %s", got)
	}
}

func TestTrend_BearishVetoedByOversold(t *testing.T) {
	signals := model.SignalSet{
		"price_above_sma50":      false,
		"macd_bearish_crossover": true,
		"rsi_oversold":           true,
	}
	if got := Trend(signals); got != model.TrendNeutral {
		t.Errorf("oversold RSI should veto the bearish case, got %s", got)
	}
}

func TestTrend_PartialConditionsFallThrough(t *testing.T) {
	tests := []model.SignalSet{
		{},
		{"price_above_sma50": true},
		{"macd_bullish_crossover": true},
		{"macd_bearish_crossover": true, "price_above_sma50": true},
	}
	for i, signals := range tests {
		if got := Trend(signals); got != model.TrendNeutral {
			t.Errorf("case %d: expected NEUTRAL, got %s", i, got)
		}
	}
}
