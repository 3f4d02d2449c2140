package ledger

import (
	"fmt"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// ValidationError describes a single ledger invariant violation.
type ValidationError struct {
	Ledger        string // month label
	TransactionID string
	Description   string
}

func (e ValidationError) Error() string {
	if e.TransactionID == "" {
		return fmt.Sprintf("ledger %q: %s", e.Ledger, e.Description)
	}
	return fmt.Sprintf("ledger %q [%s]: %s", e.Ledger, e.TransactionID, e.Description)
}

// Validate checks month ledgers against the data model invariants.
func Validate(ledgers []model.MonthLedger) []ValidationError {
	var errs []ValidationError

	months := make(map[monthKey]string)
	ids := make(map[string]string)

	for _, l := range ledgers {
		year, month, err := ParseMonthLabel(l.Month)
		labelOK := err == nil
		if !labelOK {
			errs = append(errs, ValidationError{Ledger: l.Month, Description: "month label is not parseable"})
		} else {
			k := monthKey{year, month}
			if other, dup := months[k]; dup {
				errs = append(errs, ValidationError{
					Ledger:      l.Month,
					Description: fmt.Sprintf("month already covered by ledger %s", other),
				})
			}
			months[k] = l.ID
		}

		if len(l.Transactions) == 0 {
			errs = append(errs, ValidationError{Ledger: l.Month, Description: "ledger has no transactions"})
		}

		for i, t := range l.Transactions {
			fail := func(format string, args ...any) {
				errs = append(errs, ValidationError{
					Ledger:        l.Month,
					TransactionID: t.ID,
					Description:   fmt.Sprintf(format, args...),
				})
			}

			if !t.Amount.IsPositive() {
				fail("amount %s is not positive", t.Amount)
			}
			if labelOK && (t.Date.Year() != year || t.Date.Month() != month) {
				fail("date %s outside ledger month", t.DateString())
			}
			if !t.Kind.Valid() {
				fail("unknown kind %q", t.Kind)
			}
			if !t.Category.Valid() {
				fail("unknown category %q", t.Category)
			}
			if t.ID == "" {
				fail("missing id")
			} else if other, dup := ids[t.ID]; dup {
				fail("id already used in ledger %q", other)
			} else {
				ids[t.ID] = l.Month
			}
			if i > 0 && t.Date.After(l.Transactions[i-1].Date) {
				fail("transactions not sorted newest first")
			}
		}
	}

	return errs
}
