package model

import "github.com/shopspring/decimal"

// MonthlySummary is derived from the full transaction set on demand.
type MonthlySummary struct {
	Month      string // YYYY-MM
	Expenses   decimal.Decimal
	Income     decimal.Decimal
	Savings    decimal.Decimal // Income - Expenses
	Categories map[Category]decimal.Decimal
}

// CategoryDistribution is one category's share of total expenses.
type CategoryDistribution struct {
	Category   Category
	Amount     decimal.Decimal
	Percentage string // one decimal place
}

// SavingsRate is the share of a month's income that was not spent.
type SavingsRate struct {
	Month string
	Rate  string // one decimal place, "0" without income
}

// Forecast projects next month's expenses from the trailing three months.
type Forecast struct {
	Amount          decimal.Decimal
	Confidence      int // 0-100
	Average         decimal.Decimal
	Trend           decimal.Decimal
	LastThreeMonths [3]MonthlySummary
}

// Overview is the whole-period digest shown next to the charts.
type Overview struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	SavingsRate   string
	TopCategories []CategoryDistribution
	Months        int
}
