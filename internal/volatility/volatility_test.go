package volatility

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

func barsFromCloses(closes []float64) model.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	series := make(model.Series, len(closes))
	for i, c := range closes {
		series[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return series
}

func TestReturns(t *testing.T) {
	got := Returns([]float64{100, 110, 99})
	require.Len(t, got, 2)
	assert.InDelta(t, 0.10, got[0], 1e-9)
	assert.InDelta(t, -0.10, got[1], 1e-9)
}

func TestReturns_ZeroPreviousCloseSkipped(t *testing.T) {
	got := Returns([]float64{0, 100, 110})
	require.Len(t, got, 1)
	assert.InDelta(t, 0.10, got[0], 1e-9)
}

func TestStdDev(t *testing.T) {
	assert.Nil(t, StdDev(nil))

	single := StdDev([]float64{0.05})
	require.NotNil(t, single)
	assert.Zero(t, *single, "a single observation has zero dispersion")

	// Classic population example: sd of {2,4,4,4,5,5,7,9} is exactly 2.
	sd := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NotNil(t, sd)
	assert.InDelta(t, 2.0, *sd, 1e-9)
}

func TestScore_EmptySeries(t *testing.T) {
	_, err := Score(nil, nil, DefaultSettings())
	require.ErrorIs(t, err, model.ErrEmptySeries)
}

func TestScore_SingleBar(t *testing.T) {
	rep, err := Score(barsFromCloses([]float64{100}), nil, DefaultSettings())
	require.NoError(t, err)

	assert.Nil(t, rep.DailyVolatility, "one bar yields no returns")
	assert.Nil(t, rep.AnnualVolatility)
	assert.Nil(t, rep.ATRCurrent)
	assert.Nil(t, rep.ATRAverage)
	assert.Empty(t, rep.RiskTier, "no tier without volatility")
}

func TestScore_TwoBars(t *testing.T) {
	rep, err := Score(barsFromCloses([]float64{100, 110}), nil, DefaultSettings())
	require.NoError(t, err)

	// A single return has zero dispersion, which is still a defined value.
	require.NotNil(t, rep.DailyVolatility)
	assert.Zero(t, *rep.DailyVolatility)
	require.NotNil(t, rep.AnnualVolatility)
	assert.Zero(t, *rep.AnnualVolatility)
	assert.Equal(t, model.RiskLow, rep.RiskTier)

	assert.Nil(t, rep.ATRCurrent, "ATR(14) needs more history")
}

func TestScore_FlatSeries(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	rep, err := Score(barsFromCloses(closes), nil, DefaultSettings())
	require.NoError(t, err)

	require.NotNil(t, rep.DailyVolatility)
	assert.Zero(t, *rep.DailyVolatility)
	assert.Equal(t, model.RiskLow, rep.RiskTier)

	// high−low is a constant 2, so the Wilder ATR settles there.
	require.NotNil(t, rep.ATRCurrent)
	assert.InDelta(t, 2.0, *rep.ATRCurrent, 1e-9)
	require.NotNil(t, rep.ATRAverage)
	assert.InDelta(t, 2.0, *rep.ATRAverage, 1e-9)
}

func TestScore_TierBoundariesAreStrict(t *testing.T) {
	// Returns +10% then −10%: population sd is exactly 0.1, annualized
	// 0.1×sqrt(252).
	series := barsFromCloses([]float64{100, 110, 99})

	base, err := Score(series, nil, DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, base.AnnualVolatility)
	annual := *base.AnnualVolatility
	assert.InDelta(t, 0.1*math.Sqrt(252), annual, 1e-9)

	tests := []struct {
		name     string
		settings Settings
		want     model.RiskTier
	}{
		{"default thresholds classify high", DefaultSettings(), model.RiskHigh},
		{"exactly at high stays medium", Settings{ATRWindow: 14, RiskMedium: 1.0, RiskHigh: annual}, model.RiskMedium},
		{"exactly at medium stays low", Settings{ATRWindow: 14, RiskMedium: annual, RiskHigh: annual + 1}, model.RiskLow},
		{"above high", Settings{ATRWindow: 14, RiskMedium: 0.5, RiskHigh: 1.0}, model.RiskHigh},
		{"far thresholds stay low", Settings{ATRWindow: 14, RiskMedium: 2.0, RiskHigh: 3.0}, model.RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Score(series, nil, tt.settings)
			require.NoError(t, err)
			require.NotNil(t, rep.AnnualVolatility)
			assert.InDelta(t, annual, *rep.AnnualVolatility, 1e-9)
			assert.Equal(t, tt.want, rep.RiskTier)
		})
	}
}

func TestScore_BetaPassesThrough(t *testing.T) {
	beta := 1.23
	rep, err := Score(barsFromCloses([]float64{100, 101, 102}), &beta, DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, rep.Beta)
	assert.Equal(t, 1.23, *rep.Beta)

	rep, err = Score(barsFromCloses([]float64{100, 101, 102}), nil, DefaultSettings())
	require.NoError(t, err)
	assert.Nil(t, rep.Beta, "beta is never derived internally")
}
