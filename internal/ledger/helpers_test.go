package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func txn(id, date, amount string) model.Transaction {
	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:          id,
		Date:        d,
		Amount:      decimal.RequireFromString(amount),
		Category:    model.CategoryOther,
		Kind:        model.KindExpense,
		Description: "row " + id,
	}
}

func counterIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}

func labels(ledgers []model.MonthLedger) []string {
	out := make([]string, len(ledgers))
	for i, l := range ledgers {
		out[i] = l.Month
	}
	return out
}

// content strips ledger ids so collections can be compared by value.
func content(ledgers []model.MonthLedger) map[string][]string {
	out := make(map[string][]string, len(ledgers))
	for _, l := range ledgers {
		out[l.Month] = ids(l.Transactions)
	}
	return out
}
