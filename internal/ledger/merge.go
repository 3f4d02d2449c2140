// Package ledger groups transactions into month ledgers and keeps them
// sorted, validated and stored.
package ledger

import (
	"sort"
	"time"

	"github.com/ledgerlens/ledgerlens/internal/id"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Merger folds new transactions into month ledgers.
type Merger struct {
	NewID func() string
}

// Merge folds txns into existing using random ledger ids.
func Merge(existing []model.MonthLedger, txns []model.Transaction) []model.MonthLedger {
	return Merger{}.Merge(existing, txns)
}

type monthKey struct {
	year  int
	month time.Month
}

// Merge returns a new ledger collection. Transactions join the existing
// ledger whose label names their month, or a new ledger for that month.
// Neither input is modified. Duplicates are kept: re-importing a statement
// appends its rows again.
func (m Merger) Merge(existing []model.MonthLedger, txns []model.Transaction) []model.MonthLedger {
	out := make([]model.MonthLedger, len(existing))
	for i, l := range existing {
		out[i] = model.MonthLedger{
			ID:           l.ID,
			Month:        l.Month,
			Transactions: append([]model.Transaction(nil), l.Transactions...),
		}
	}

	var order []monthKey
	groups := make(map[monthKey][]model.Transaction)
	for _, t := range txns {
		k := monthKey{t.Date.Year(), t.Date.Month()}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	for _, k := range order {
		group := groups[k]
		if i := findLedger(out, k); i >= 0 {
			out[i].Transactions = append(out[i].Transactions, group...)
			sortTransactions(out[i].Transactions)
			continue
		}
		fresh := append([]model.Transaction(nil), group...)
		sortTransactions(fresh)
		out = append(out, model.MonthLedger{
			ID:           m.newID(),
			Month:        FormatMonthLabel(k.year, k.month),
			Transactions: fresh,
		})
	}

	sortLedgers(out)
	return out
}

// Flatten returns every transaction across ledgers, ledger by ledger.
func Flatten(ledgers []model.MonthLedger) []model.Transaction {
	var n int
	for _, l := range ledgers {
		n += len(l.Transactions)
	}
	out := make([]model.Transaction, 0, n)
	for _, l := range ledgers {
		out = append(out, l.Transactions...)
	}
	return out
}

func (m Merger) newID() string {
	if m.NewID != nil {
		return m.NewID()
	}
	return id.NewLedgerID()
}

func findLedger(ledgers []model.MonthLedger, k monthKey) int {
	for i, l := range ledgers {
		year, month, err := ParseMonthLabel(l.Month)
		if err != nil {
			continue
		}
		if year == k.year && month == k.month {
			return i
		}
	}
	return -1
}

// sortTransactions orders newest first; same-day rows keep their order.
func sortTransactions(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}

// sortLedgers orders most recent month first. Ledgers with unreadable
// labels go last, in their original order.
func sortLedgers(ledgers []model.MonthLedger) {
	keys := make(map[string]int, len(ledgers))
	for _, l := range ledgers {
		if _, ok := keys[l.Month]; ok {
			continue
		}
		year, month, err := ParseMonthLabel(l.Month)
		if err != nil {
			keys[l.Month] = -1
			continue
		}
		keys[l.Month] = year*12 + int(month-1)
	}
	sort.SliceStable(ledgers, func(i, j int) bool {
		return keys[ledgers[i].Month] > keys[ledgers[j].Month]
	})
}
