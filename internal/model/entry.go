package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidEntry marks a manual entry that was rejected before reaching a ledger.
var ErrInvalidEntry = errors.New("invalid entry")

// EntryParams holds the raw user input for a manual transaction.
type EntryParams struct {
	Amount      string
	Category    string
	Date        string // YYYY-MM-DD
	Kind        Kind   // defaults to expense
	Description string
}

// NewEntry validates manual input and builds a Transaction with the given id.
func NewEntry(id string, p EntryParams) (Transaction, error) {
	amountStr := strings.TrimSpace(p.Amount)
	if amountStr == "" || strings.TrimSpace(p.Category) == "" || strings.TrimSpace(p.Date) == "" {
		return Transaction{}, fmt.Errorf("%w: amount, category and date are required", ErrInvalidEntry)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", "."))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: parsing amount %q: %v", ErrInvalidEntry, p.Amount, err)
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidEntry, amount)
	}

	category := Category(strings.TrimSpace(p.Category))
	if !category.Valid() {
		return Transaction{}, fmt.Errorf("%w: unknown category %q", ErrInvalidEntry, p.Category)
	}

	date, err := time.Parse(DateFormat, strings.TrimSpace(p.Date))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: parsing date %q: %v", ErrInvalidEntry, p.Date, err)
	}

	kind := p.Kind
	if kind == "" {
		kind = KindExpense
	}
	if !kind.Valid() {
		return Transaction{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidEntry, p.Kind)
	}

	return Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Description: strings.TrimSpace(p.Description),
	}, nil
}
