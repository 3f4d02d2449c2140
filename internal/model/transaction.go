package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the normalized calendar-day format used everywhere.
const DateFormat = "2006-01-02"

// MonthKeyFormat is the machine month key used by summaries ("2024-03").
const MonthKeyFormat = "2006-01"

// Kind tells income and expense transactions apart.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single statement row or manual entry.
// Amount is always positive; Kind carries the direction.
type Transaction struct {
	ID          string
	Date        time.Time       // UTC midnight
	Amount      decimal.Decimal // > 0
	Category    Category
	Kind        Kind
	Description string
}

// DateString renders the date as YYYY-MM-DD.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// MonthKey renders the calendar month as YYYY-MM.
func (t Transaction) MonthKey() string {
	return t.Date.Format(MonthKeyFormat)
}

// IsExpense reports whether the transaction counts towards spending.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// Day returns a normalized UTC midnight time for the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
