package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Header is the CSV header for ledgers.csv.
const Header = "ledger_id,month,id,date,amount,kind,category,description"

const (
	numFields   = 8
	colLedgerID = 0
	colMonth    = 1
	colID       = 2
	colDate     = 3
	colAmount   = 4
	colKind     = 5
	colCategory = 6
	colDesc     = 7
)

// ReadLedgers reads ledgers.csv. Rows are grouped by ledger_id in order of
// first appearance; row order within a ledger is preserved.
func ReadLedgers(r io.Reader) ([]model.MonthLedger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var ledgers []model.MonthLedger
	index := make(map[string]int)
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ledgerID := rec[colLedgerID]
		pos, ok := index[ledgerID]
		if !ok {
			pos = len(ledgers)
			index[ledgerID] = pos
			ledgers = append(ledgers, model.MonthLedger{ID: ledgerID, Month: rec[colMonth]})
		} else if ledgers[pos].Month != rec[colMonth] {
			return nil, fmt.Errorf("row %d: ledger %s has month %q, expected %q", i+2, ledgerID, rec[colMonth], ledgers[pos].Month)
		}
		ledgers[pos].Transactions = append(ledgers[pos].Transactions, txn)
	}
	return ledgers, nil
}

// WriteLedgers writes ledgers.csv (including header), one row per transaction.
func WriteLedgers(w io.Writer, ledgers []model.MonthLedger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, l := range ledgers {
		for _, txn := range l.Transactions {
			if err := cw.Write(MarshalTransaction(l, txn)); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a ledger transaction to a CSV row.
func MarshalTransaction(l model.MonthLedger, txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colLedgerID] = l.ID
	row[colMonth] = l.Month
	row[colID] = txn.ID
	row[colDate] = txn.DateString()
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colKind] = string(txn.Kind)
	row[colCategory] = string(txn.Category)
	row[colDesc] = txn.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	kind := model.Kind(record[colKind])
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("parsing kind %q: unknown kind", record[colKind])
	}

	return model.Transaction{
		ID:          record[colID],
		Date:        date,
		Amount:      amount,
		Category:    model.Category(record[colCategory]),
		Kind:        kind,
		Description: record[colDesc],
	}, nil
}
