package model

import "github.com/shopspring/decimal"

// MonthLedger groups the transactions of one calendar month.
// Month is the human-readable label ("March 2024"); Transactions are
// sorted by date, newest first.
type MonthLedger struct {
	ID           string
	Month        string
	Transactions []Transaction
}

// Totals sums the ledger's income and expense amounts.
func (l MonthLedger) Totals() (income, expenses decimal.Decimal) {
	income, expenses = decimal.Zero, decimal.Zero
	for _, t := range l.Transactions {
		if t.IsExpense() {
			expenses = expenses.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	return income, expenses
}

// CategoryTotal sums expense amounts for one category.
func (l MonthLedger) CategoryTotal(c Category) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.Transactions {
		if t.IsExpense() && t.Category == c {
			total = total.Add(t.Amount)
		}
	}
	return total
}
