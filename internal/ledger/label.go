package ledger

import (
	"fmt"
	"strings"
	"time"
)

const labelFormat = "January 2006"

// FormatMonthLabel returns the human-readable ledger label, e.g. "March 2024".
func FormatMonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(labelFormat)
}

// ParseMonthLabel parses a label produced by FormatMonthLabel.
func ParseMonthLabel(label string) (year int, month time.Month, err error) {
	t, err := time.Parse(labelFormat, strings.TrimSpace(label))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	return t.Year(), t.Month(), nil
}

// LabelFor returns the label of the month containing date.
func LabelFor(date time.Time) string {
	return FormatMonthLabel(date.Year(), date.Month())
}
