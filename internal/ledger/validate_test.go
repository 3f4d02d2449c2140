package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func validLedgers() []model.MonthLedger {
	return []model.MonthLedger{
		{ID: "L1", Month: "March 2024", Transactions: []model.Transaction{
			txn("a", "2024-03-20", "10"),
			txn("b", "2024-03-02", "20"),
		}},
		{ID: "L2", Month: "February 2024", Transactions: []model.Transaction{
			txn("c", "2024-02-11", "30"),
		}},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validLedgers()))
	assert.Empty(t, Validate(nil))
}

func TestValidate_MergeOutputIsValid(t *testing.T) {
	got := Merge(nil, []model.Transaction{
		txn("a", "2024-03-05", "10"),
		txn("b", "2024-04-01", "20"),
		txn("c", "2024-03-20", "30"),
	})
	assert.Empty(t, Validate(got))
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ls []model.MonthLedger) []model.MonthLedger
		want   string
	}{
		{"non-positive amount", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[0].Transactions[0].Amount = decimal.Zero
			return ls
		}, "not positive"},
		{"outside month", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[1].Transactions[0] = txn("c", "2024-03-01", "30")
			return ls
		}, "outside ledger month"},
		{"duplicate id", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[1].Transactions[0].ID = "a"
			return ls
		}, "id already used"},
		{"missing id", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[1].Transactions[0].ID = ""
			return ls
		}, "missing id"},
		{"unsorted", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[0].Transactions[0], ls[0].Transactions[1] = ls[0].Transactions[1], ls[0].Transactions[0]
			return ls
		}, "not sorted"},
		{"unknown category", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[0].Transactions[0].Category = "Gambling"
			return ls
		}, "unknown category"},
		{"unknown kind", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[0].Transactions[0].Kind = "refund"
			return ls
		}, "unknown kind"},
		{"bad label", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[1].Month = "Feb 24"
			return ls
		}, "not parseable"},
		{"duplicate month", func(ls []model.MonthLedger) []model.MonthLedger {
			return append(ls, model.MonthLedger{ID: "L3", Month: "March 2024", Transactions: []model.Transaction{txn("z", "2024-03-01", "1")}})
		}, "month already covered"},
		{"empty ledger", func(ls []model.MonthLedger) []model.MonthLedger {
			ls[1].Transactions = nil
			return ls
		}, "no transactions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.mutate(validLedgers()))
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0].Error(), tt.want)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Ledger: "March 2024", TransactionID: "a", Description: "boom"}
	assert.Equal(t, `ledger "March 2024" [a]: boom`, e.Error())

	e = ValidationError{Ledger: "March 2024", Description: "boom"}
	assert.Equal(t, `ledger "March 2024": boom`, e.Error())
}
