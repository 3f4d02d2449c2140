package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// TopCategoryCount is how many categories Overview reports.
const TopCategoryCount = 3

// Overview digests the whole period: totals, overall savings rate and the
// biggest spending categories.
func Overview(txns []model.Transaction) model.Overview {
	income, expenses := decimal.Zero, decimal.Zero
	months := make(map[string]bool)
	for _, t := range txns {
		months[t.MonthKey()] = true
		if t.IsExpense() {
			expenses = expenses.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}

	top := Distribution(txns)
	if len(top) > TopCategoryCount {
		top = top[:TopCategoryCount]
	}

	return model.Overview{
		TotalIncome:   income,
		TotalExpenses: expenses,
		SavingsRate:   percent(income.Sub(expenses), income),
		TopCategories: top,
		Months:        len(months),
	}
}

// SpendingTrend is the percent change in expenses from the first to the
// last summary. It reports false with fewer than two months or when the
// first month had no expenses.
func SpendingTrend(summaries []model.MonthlySummary) (string, bool) {
	if len(summaries) < 2 {
		return "", false
	}
	first := summaries[0].Expenses
	last := summaries[len(summaries)-1].Expenses
	if !first.IsPositive() {
		return "", false
	}
	return last.Sub(first).Div(first).Mul(hundred).StringFixed(1), true
}
