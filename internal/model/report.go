package model

import "time"

// IndicatorSet holds the indicator values for the most recent bar.
// A nil field means the window exceeded the available history: a legitimate
// absence, never coerced to zero. JSON keys follow the canonical names used
// by downstream consumers.
type IndicatorSet struct {
	RSI           *float64 `json:"RSI"`
	MACD          *float64 `json:"MACD"`
	MACDSignal    *float64 `json:"MACD_signal"`
	MACDHistogram *float64 `json:"MACD_histogram"`
	SMA20         *float64 `json:"SMA_20"`
	SMA50         *float64 `json:"SMA_50"`
	SMA200        *float64 `json:"SMA_200"`
	EMA12         *float64 `json:"EMA_12"`
	EMA26         *float64 `json:"EMA_26"`
	BBUpper       *float64 `json:"BB_upper"`
	BBMiddle      *float64 `json:"BB_middle"`
	BBLower       *float64 `json:"BB_lower"`
	StochasticK   *float64 `json:"Stochastic_K"`
	StochasticD   *float64 `json:"Stochastic_D"`
}

// SignalSet maps signal names to their boolean state, derived purely from the
// latest IndicatorSet and price. A signal whose inputs are absent is false.
type SignalSet map[string]bool

// TrendLabel is the coarse classification folded from the signal bank.
type TrendLabel string

const (
	TrendBullish TrendLabel = "BULLISH"
	TrendBearish TrendLabel = "BEARISH"
	TrendNeutral TrendLabel = "NEUTRAL"
)

// RiskTier classifies annualized volatility against fixed thresholds.
// Empty when volatility could not be computed.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// LevelSet holds support/resistance levels derived from local price extrema.
// Resistance is sorted descending, support ascending. Nearest values are nil
// when no candidate sits on the required side of the current price.
type LevelSet struct {
	Resistance           []float64 `json:"resistance_levels"`
	Support              []float64 `json:"support_levels"`
	NearestResistance    *float64  `json:"nearest_resistance"`
	NearestSupport       *float64  `json:"nearest_support"`
	DistanceToResistance *float64  `json:"distance_to_resistance"`
	DistanceToSupport    *float64  `json:"distance_to_support"`
}

// VolatilityReport holds dispersion and range-based volatility measures.
type VolatilityReport struct {
	DailyVolatility  *float64 `json:"daily_volatility"`
	AnnualVolatility *float64 `json:"annual_volatility"`
	ATRCurrent       *float64 `json:"atr_current"`
	ATRAverage       *float64 `json:"atr_average"`
	Beta             *float64 `json:"beta,omitempty"`
	RiskTier         RiskTier `json:"risk_tier,omitempty"`
}

// Summary holds basic statistics over the analyzed series.
type Summary struct {
	CurrentPrice  float64  `json:"current_price"`
	PreviousClose *float64 `json:"previous_close,omitempty"`
	Change        *float64 `json:"change,omitempty"`
	ChangePercent *float64 `json:"change_percent,omitempty"`
	Volume        float64  `json:"volume"`
	AverageVolume float64  `json:"average_volume"`
	PeriodHigh    float64  `json:"period_high"`
	PeriodLow     float64  `json:"period_low"`
	DataPoints    int      `json:"data_points"`
}

// Report is the merged output of all analysis units for one symbol.
// It is a value object: built per call, owned by the caller, JSON-serializable.
type Report struct {
	Symbol     string            `json:"symbol"`
	Date       time.Time         `json:"date"`
	Summary    *Summary          `json:"summary"`
	Indicators *IndicatorSet     `json:"indicators"`
	Signals    SignalSet         `json:"signals"`
	Trend      TrendLabel        `json:"overall_trend"`
	Levels     *LevelSet         `json:"levels"`
	Volatility *VolatilityReport `json:"volatility"`
	Metadata   *Metadata         `json:"company,omitempty"`
}
