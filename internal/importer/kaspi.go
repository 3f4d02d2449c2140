package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/id"
	"github.com/ledgerlens/ledgerlens/internal/model"
)

// CenturyBase is added to two-digit statement years: "24" means 2024.
// Statements dated before 2000 are not supported.
const CenturyBase = 2000

const (
	kaspiDateFormat = "02.01.06"
	spaceClass      = `\s\x{00A0}\x{202F}`
)

// Default Kaspi.kz statement vocabulary.
var (
	DefaultHeaderMarkers = []string{"Дата", "Сумма", "Операция", "Детали"}
	DefaultIncomeKeyword = "Пополнение"
	DefaultCurrency      = "₸"
)

var (
	// ErrHeaderNotFound means no line carried every header marker.
	ErrHeaderNotFound = errors.New("statement header not found")
	// ErrNoTransactions means the header was found but no row was usable.
	ErrNoTransactions = errors.New("no transactions recognized")
)

// ParseError is the diagnostic returned alongside an empty result.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s statement: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var kaspiDate = regexp.MustCompile(`\d{2}\.\d{2}\.\d{2}`)

// KaspiParser extracts transactions from Kaspi.kz plain-text statement exports.
// Rows look like "15.03.24  - 1 234,56 ₸  Покупка  COFFEE HOUSE".
type KaspiParser struct {
	HeaderMarkers []string
	IncomeKeyword string
	Currency      string
	Classifier    *classify.Classifier
	NewID         func(date time.Time) string
	Logger        *slog.Logger
}

// NewKaspiParser returns a parser with the default vocabulary.
// A nil classifier uses the default rule table.
func NewKaspiParser(c *classify.Classifier) *KaspiParser {
	if c == nil {
		c = classify.Default()
	}
	return &KaspiParser{
		HeaderMarkers: DefaultHeaderMarkers,
		IncomeKeyword: DefaultIncomeKeyword,
		Currency:      DefaultCurrency,
		Classifier:    c,
		NewID:         id.NewTransactionID,
	}
}

// Format returns the parser name.
func (p *KaspiParser) Format() string { return "kaspi" }

// Parse reads a whole statement. Unusable rows are skipped; when nothing is
// usable the result is empty and the error says why.
func (p *KaspiParser) Parse(text string) ([]model.Transaction, error) {
	lines := strings.Split(text, "\n")

	header := p.findHeader(lines)
	if header < 0 {
		return nil, &ParseError{Format: p.Format(), Err: ErrHeaderNotFound}
	}

	amountRe, err := p.amountPattern()
	if err != nil {
		return nil, &ParseError{Format: p.Format(), Err: err}
	}

	seen := make(map[string]bool)
	var txns []model.Transaction
	for i, line := range lines[header+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		txn, reason := p.parseRow(line, amountRe)
		if reason != "" {
			p.logger().Debug("skipping statement row", "line", header+i+2, "reason", reason)
			continue
		}
		txn.ID = p.uniqueID(txn.Date, seen)
		txns = append(txns, txn)
	}

	if len(txns) == 0 {
		return nil, &ParseError{Format: p.Format(), Err: ErrNoTransactions}
	}
	return txns, nil
}

func (p *KaspiParser) findHeader(lines []string) int {
	for i, line := range lines {
		if containsAll(line, p.HeaderMarkers) {
			return i
		}
	}
	return -1
}

func (p *KaspiParser) amountPattern() (*regexp.Regexp, error) {
	if p.Currency == "" {
		return nil, errors.New("currency symbol not configured")
	}
	pattern := `([+-]?[` + spaceClass + `]*\d[\d` + spaceClass + `]*,\d{2})[` + spaceClass + `]*` + regexp.QuoteMeta(p.Currency)
	return regexp.Compile(pattern)
}

// parseRow returns a transaction without ID, or a non-empty skip reason.
func (p *KaspiParser) parseRow(line string, amountRe *regexp.Regexp) (model.Transaction, string) {
	loc := kaspiDate.FindStringIndex(line)
	if loc == nil {
		return model.Transaction{}, "no date"
	}
	date, err := parseKaspiDate(line[loc[0]:loc[1]])
	if err != nil {
		return model.Transaction{}, err.Error()
	}

	rest := line[loc[1]:]
	m := amountRe.FindStringSubmatchIndex(rest)
	if m == nil {
		return model.Transaction{}, "no amount"
	}
	amount, err := parseKaspiAmount(rest[m[2]:m[3]])
	if err != nil {
		return model.Transaction{}, err.Error()
	}
	if amount.IsZero() {
		return model.Transaction{}, "zero amount"
	}

	desc := rest[m[1]:]
	if i := strings.Index(desc, p.Currency); i >= 0 {
		desc = desc[:i]
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return model.Transaction{}, "empty description"
	}

	kind := model.KindExpense
	if p.IncomeKeyword != "" && strings.Contains(line, p.IncomeKeyword) {
		kind = model.KindIncome
	}

	return model.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    p.Classifier.Classify(desc),
		Kind:        kind,
		Description: desc,
	}, ""
}

func (p *KaspiParser) uniqueID(date time.Time, seen map[string]bool) string {
	newID := p.NewID
	if newID == nil {
		newID = id.NewTransactionID
	}
	txnID := newID(date)
	for n := 2; seen[txnID]; n++ {
		txnID = fmt.Sprintf("%s-%d", newID(date), n)
	}
	seen[txnID] = true
	return txnID
}

func (p *KaspiParser) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// parseKaspiDate turns "15.03.24" into 2024-03-15.
func parseKaspiDate(s string) (time.Time, error) {
	d, err := time.Parse(kaspiDateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	// time.Parse maps 69-99 to the 1900s; statements always mean CenturyBase.
	return model.Day(CenturyBase+d.Year()%100, d.Month(), d.Day()), nil
}

// parseKaspiAmount turns "- 1 234,56" into 1234.56. The sign is dropped.
func parseKaspiAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return amount.Abs(), nil
}

func containsAll(line string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !strings.Contains(line, m) {
			return false
		}
	}
	return true
}
