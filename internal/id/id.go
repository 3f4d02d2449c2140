package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	datePrefixFormat = "2006-01-02"
	datePrefixLen    = len(datePrefixFormat)
	suffixLen        = 12
)

// NewTransactionID returns an id like "2024-03-15-9f1c2ab04d7e".
func NewTransactionID(date time.Time) string {
	return FormatTransactionID(date, randomSuffix())
}

// FormatTransactionID joins a date prefix and a suffix.
func FormatTransactionID(date time.Time, suffix string) string {
	return date.Format(datePrefixFormat) + "-" + suffix
}

// ParseTransactionID splits "2024-03-15-9f1c2ab04d7e" into its date and suffix.
func ParseTransactionID(id string) (date time.Time, suffix string, err error) {
	if len(id) < datePrefixLen+2 || id[datePrefixLen] != '-' {
		return time.Time{}, "", fmt.Errorf("invalid transaction ID format: %q", id)
	}

	date, err = time.Parse(datePrefixFormat, id[:datePrefixLen])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid date in transaction ID %q: %w", id, err)
	}
	return date, id[datePrefixLen+1:], nil
}

// NewLedgerID returns a random ledger id.
func NewLedgerID() string {
	return uuid.NewString()
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
}
