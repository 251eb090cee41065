package notifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// FormatReport renders the merged analysis report as plain text.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s | %s ===\n", r.Symbol, r.Date.Format("2006-01-02")))

	if s := r.Summary; s != nil {
		b.WriteString(fmt.Sprintf("Price: %.2f", s.CurrentPrice))
		if s.ChangePercent != nil {
			b.WriteString(fmt.Sprintf(" (%+.2f%%)", *s.ChangePercent))
		}
		b.WriteString(fmt.Sprintf(" | Range: %.2f ~ %.2f | Bars: %d\n", s.PeriodLow, s.PeriodHigh, s.DataPoints))
	}

	b.WriteString(fmt.Sprintf("Trend: %s\n", r.Trend))

	if ind := r.Indicators; ind != nil {
		b.WriteString("\nIndicators:\n")
		writeIndicator(&b, "RSI", ind.RSI)
		writeIndicator(&b, "MACD", ind.MACD)
		writeIndicator(&b, "MACD signal", ind.MACDSignal)
		writeIndicator(&b, "SMA 20", ind.SMA20)
		writeIndicator(&b, "SMA 50", ind.SMA50)
		writeIndicator(&b, "SMA 200", ind.SMA200)
		writeIndicator(&b, "BB upper", ind.BBUpper)
		writeIndicator(&b, "BB lower", ind.BBLower)
		writeIndicator(&b, "Stoch %K", ind.StochasticK)
	}

	if active := activeSignals(r.Signals); len(active) > 0 {
		b.WriteString(fmt.Sprintf("\nActive signals: %s\n", strings.Join(active, ", ")))
	}

	if r.Levels != nil {
		b.WriteString("\n" + FormatLevels(r.Levels))
	}
	if r.Volatility != nil {
		b.WriteString("\n" + FormatVolatility(r.Volatility))
	}

	return b.String()
}

// FormatLevels renders the support/resistance block. Only the top three
// levels of each side appear here; the structured LevelSet keeps all of them.
func FormatLevels(ls *model.LevelSet) string {
	var b strings.Builder
	b.WriteString("Support/Resistance:\n")

	if ls.NearestResistance != nil {
		b.WriteString(fmt.Sprintf("  nearest resistance: %.2f", *ls.NearestResistance))
		if ls.DistanceToResistance != nil {
			b.WriteString(fmt.Sprintf(" (+%.2f%%)", *ls.DistanceToResistance))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  nearest resistance: none\n")
	}
	if ls.NearestSupport != nil {
		b.WriteString(fmt.Sprintf("  nearest support: %.2f", *ls.NearestSupport))
		if ls.DistanceToSupport != nil {
			b.WriteString(fmt.Sprintf(" (-%.2f%%)", *ls.DistanceToSupport))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("  nearest support: none\n")
	}

	b.WriteString(fmt.Sprintf("  resistance levels: %s\n", joinLevels(ls.Resistance, 3)))
	b.WriteString(fmt.Sprintf("  support levels: %s\n", joinLevels(ls.Support, 3)))
	return b.String()
}

// FormatVolatility renders the volatility block.
func FormatVolatility(v *model.VolatilityReport) string {
	var b strings.Builder
	b.WriteString("Volatility:\n")
	if v.DailyVolatility != nil && v.AnnualVolatility != nil {
		b.WriteString(fmt.Sprintf("  daily %.2f%% | annual %.2f%%\n",
			*v.DailyVolatility*100, *v.AnnualVolatility*100))
	} else {
		b.WriteString("  insufficient data\n")
	}
	if v.ATRCurrent != nil {
		b.WriteString(fmt.Sprintf("  ATR: %.2f", *v.ATRCurrent))
		if v.ATRAverage != nil {
			b.WriteString(fmt.Sprintf(" (avg %.2f)", *v.ATRAverage))
		}
		b.WriteString("\n")
	}
	if v.Beta != nil {
		b.WriteString(fmt.Sprintf("  beta: %.2f\n", *v.Beta))
	}
	if v.RiskTier != "" {
		b.WriteString(fmt.Sprintf("  risk: %s\n", v.RiskTier))
	}
	return b.String()
}

func writeIndicator(b *strings.Builder, name string, v *float64) {
	if v == nil {
		b.WriteString(fmt.Sprintf("  %-12s n/a\n", name))
		return
	}
	b.WriteString(fmt.Sprintf("  %-12s %.2f\n", name, *v))
}

func joinLevels(levels []float64, max int) string {
	if len(levels) == 0 {
		return "none"
	}
	if len(levels) > max {
		levels = levels[:max]
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("%.2f", l)
	}
	return strings.Join(parts, ", ")
}

func activeSignals(signals model.SignalSet) []string {
	var out []string
	for name, on := range signals {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
