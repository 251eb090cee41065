// Package extrema detects local price extrema and derives support and
// resistance levels from them.
package extrema

import (
	"sort"

	"github.com/secke/quantitative-financial-agent/internal/model"
)

// Maxima returns the indices i where vals[i] is strictly greater than every
// value within ±order positions. Only indices with a complete neighborhood
// qualify, so fewer than 2×order+1 values yield no extrema. Flat stretches
// never satisfy the strict inequality.
func Maxima(vals []float64, order int) []int {
	return relExtrema(vals, order, func(center, neighbor float64) bool {
		return center > neighbor
	})
}

// Minima returns the indices i where vals[i] is strictly lesser than every
// value within ±order positions.
func Minima(vals []float64, order int) []int {
	return relExtrema(vals, order, func(center, neighbor float64) bool {
		return center < neighbor
	})
}

func relExtrema(vals []float64, order int, cmp func(center, neighbor float64) bool) []int {
	var out []int
	if order <= 0 || len(vals) < 2*order+1 {
		return out
	}
	for i := order; i < len(vals)-order; i++ {
		ok := true
		for j := i - order; j <= i+order; j++ {
			if j == i {
				continue
			}
			if !cmp(vals[i], vals[j]) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Levels scans the closing prices for local extrema and selects support and
// resistance levels relative to the last close. Resistance candidates are
// sorted descending and truncated to maxLevels, support ascending likewise.
// Nearest resistance is the smallest candidate strictly above the current
// price, nearest support the largest strictly below; either may be absent.
func Levels(series model.Series, order, maxLevels int) (*model.LevelSet, error) {
	if series.Empty() {
		return nil, model.ErrEmptySeries
	}
	closes := series.Closes()
	current := series.Last().Close

	resistance := valuesAt(closes, Maxima(closes, order))
	support := valuesAt(closes, Minima(closes, order))

	sort.Sort(sort.Reverse(sort.Float64Slice(resistance)))
	sort.Float64s(support)
	if len(resistance) > maxLevels {
		resistance = resistance[:maxLevels]
	}
	if len(support) > maxLevels {
		support = support[:maxLevels]
	}

	ls := &model.LevelSet{
		Resistance: resistance,
		Support:    support,
	}

	for i := len(resistance) - 1; i >= 0; i-- {
		// descending order: the last candidate above price is the nearest
		if resistance[i] > current {
			r := resistance[i]
			ls.NearestResistance = &r
			break
		}
	}
	for i := len(support) - 1; i >= 0; i-- {
		// ascending order: the last candidate below price is the nearest
		if support[i] < current {
			s := support[i]
			ls.NearestSupport = &s
			break
		}
	}

	if current != 0 {
		if ls.NearestResistance != nil {
			d := (*ls.NearestResistance - current) / current * 100
			ls.DistanceToResistance = &d
		}
		if ls.NearestSupport != nil {
			d := (current - *ls.NearestSupport) / current * 100
			ls.DistanceToSupport = &d
		}
	}
	return ls, nil
}

func valuesAt(vals []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}
