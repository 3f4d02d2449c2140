// Package forecast projects next month's spending from the trailing three
// months of summaries.
package forecast

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// MinMonths is the number of distinct months needed for a forecast.
const MinMonths = 3

// Epsilon floors the confidence denominator so a zero-spend first month
// cannot divide by zero.
var Epsilon = decimal.RequireFromString("0.01")

var (
	two     = decimal.NewFromInt(2)
	three   = decimal.NewFromInt(3)
	hundred = decimal.NewFromInt(100)
)

// Forecast estimates next month's expenses. It reports false when fewer
// than MinMonths months of data exist.
//
// With the last three months m0, m1, m2 (oldest first):
//
//	average    = (m0 + m1 + m2) / 3
//	trend      = (m2 - m0) / 2
//	amount     = max(0, average + trend)
//	confidence = clamp(0, 100, round(100 - |(m2-m1) - (m1-m0)| / max(m0, ε) * 100))
func Forecast(summaries []model.MonthlySummary) (model.Forecast, bool) {
	if len(summaries) < MinMonths {
		return model.Forecast{}, false
	}

	sorted := append([]model.MonthlySummary(nil), summaries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Month < sorted[j].Month })

	var last [3]model.MonthlySummary
	copy(last[:], sorted[len(sorted)-3:])
	m0, m1, m2 := last[0].Expenses, last[1].Expenses, last[2].Expenses

	average := m0.Add(m1).Add(m2).Div(three)
	trend := m2.Sub(m0).Div(two)

	amount := average.Add(trend)
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	return model.Forecast{
		Amount:          amount,
		Confidence:      Confidence(m0, m1, m2),
		Average:         average,
		Trend:           trend,
		LastThreeMonths: last,
	}, true
}

// Confidence scores how steady three consecutive monthly totals are, from
// 0 (volatile) to 100 (constant trend).
func Confidence(m0, m1, m2 decimal.Decimal) int {
	variance := m2.Sub(m1).Sub(m1.Sub(m0)).Abs()
	maxVariance := decimal.Max(m0, Epsilon)

	score := hundred.Sub(variance.Div(maxVariance).Mul(hundred))
	if score.IsNegative() {
		score = decimal.Zero
	}
	if score.GreaterThan(hundred) {
		score = hundred
	}
	return int(score.Round(0).IntPart())
}
