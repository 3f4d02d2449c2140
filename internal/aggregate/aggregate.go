// Package aggregate derives monthly summaries, category distribution and
// savings rates from a flat transaction set. Everything is recomputed from
// scratch on each call.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// ZeroRate is reported wherever a percentage would divide by zero.
const ZeroRate = "0"

var hundred = decimal.NewFromInt(100)

// Summarize groups transactions by month, oldest month first.
func Summarize(txns []model.Transaction) []model.MonthlySummary {
	byMonth := make(map[string]*model.MonthlySummary)
	for _, t := range txns {
		key := t.MonthKey()
		s, ok := byMonth[key]
		if !ok {
			s = &model.MonthlySummary{
				Month:      key,
				Expenses:   decimal.Zero,
				Income:     decimal.Zero,
				Categories: make(map[model.Category]decimal.Decimal),
			}
			byMonth[key] = s
		}

		if t.IsExpense() {
			s.Expenses = s.Expenses.Add(t.Amount)
			s.Categories[t.Category] = s.Categories[t.Category].Add(t.Amount)
		} else {
			s.Income = s.Income.Add(t.Amount)
		}
	}

	out := make([]model.MonthlySummary, 0, len(byMonth))
	for _, s := range byMonth {
		s.Savings = s.Income.Sub(s.Expenses)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Distribution returns each category's share of total expenses, largest
// first. Equal amounts keep the order in which categories first appear.
func Distribution(txns []model.Transaction) []model.CategoryDistribution {
	var order []model.Category
	totals := make(map[model.Category]decimal.Decimal)
	total := decimal.Zero

	for _, t := range txns {
		if !t.IsExpense() {
			continue
		}
		if _, ok := totals[t.Category]; !ok {
			order = append(order, t.Category)
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	out := make([]model.CategoryDistribution, 0, len(order))
	for _, c := range order {
		out = append(out, model.CategoryDistribution{
			Category:   c,
			Amount:     totals[c],
			Percentage: percent(totals[c], total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	return out
}

// SavingsRates returns (income - expenses) / income per month.
func SavingsRates(summaries []model.MonthlySummary) []model.SavingsRate {
	out := make([]model.SavingsRate, len(summaries))
	for i, s := range summaries {
		out[i] = model.SavingsRate{Month: s.Month, Rate: percent(s.Savings, s.Income)}
	}
	return out
}

// percent formats part/whole*100 with one decimal, or ZeroRate when whole
// is not positive.
func percent(part, whole decimal.Decimal) string {
	if !whole.IsPositive() {
		return ZeroRate
	}
	return part.Div(whole).Mul(hundred).StringFixed(1)
}
