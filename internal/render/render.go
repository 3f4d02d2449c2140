// Package render formats ledgers and derived figures for the terminal.
package render

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

// Confidence thresholds for colouring forecasts.
const (
	HighConfidence   = 70
	MediumConfidence = 40
)

// Renderer formats output in one display currency.
type Renderer struct {
	Currency string // ISO 4217 code
}

// New returns a Renderer for the given currency code.
func New(currency string) *Renderer {
	return &Renderer{Currency: currency}
}

// Money formats an amount in the renderer's currency. Unknown codes fall
// back to a plain two-decimal number followed by the code.
func (r *Renderer) Money(amount decimal.Decimal) string {
	cur := money.GetCurrency(r.Currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + r.Currency
	}
	factor := decimal.New(1, int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), cur.Code).Display()
}

// Ledgers renders one row per month ledger with its totals.
func (r *Renderer) Ledgers(ledgers []model.MonthLedger) (string, error) {
	data := pterm.TableData{{"Month", "Transactions", "Income", "Expenses"}}
	for _, l := range ledgers {
		income, expenses := l.Totals()
		data = append(data, []string{
			l.Month,
			strconv.Itoa(len(l.Transactions)),
			r.Money(income),
			r.Money(expenses),
		})
	}
	return table(data)
}

// Transactions renders a flat transaction list.
func (r *Renderer) Transactions(txns []model.Transaction) (string, error) {
	data := pterm.TableData{{"Date", "Kind", "Category", "Amount", "Description"}}
	for _, t := range txns {
		data = append(data, []string{
			t.DateString(),
			string(t.Kind),
			string(t.Category),
			r.Money(t.Amount),
			t.Description,
		})
	}
	return table(data)
}

// Summaries renders monthly income, expenses and savings.
func (r *Renderer) Summaries(summaries []model.MonthlySummary) (string, error) {
	data := pterm.TableData{{"Month", "Income", "Expenses", "Savings"}}
	for _, s := range summaries {
		data = append(data, []string{
			s.Month,
			r.Money(s.Income),
			r.Money(s.Expenses),
			r.Money(s.Savings),
		})
	}
	return table(data)
}

// Distribution renders category shares of total expenses.
func (r *Renderer) Distribution(dist []model.CategoryDistribution) (string, error) {
	data := pterm.TableData{{"Category", "Amount", "Share"}}
	for _, d := range dist {
		data = append(data, []string{string(d.Category), r.Money(d.Amount), d.Percentage + "%"})
	}
	return table(data)
}

// SavingsRates renders the monthly savings rate.
func (r *Renderer) SavingsRates(rates []model.SavingsRate) (string, error) {
	data := pterm.TableData{{"Month", "Savings rate"}}
	for _, s := range rates {
		data = append(data, []string{s.Month, s.Rate + "%"})
	}
	return table(data)
}

// Forecast renders the projection and the months it was based on.
func (r *Renderer) Forecast(f model.Forecast) (string, error) {
	data := pterm.TableData{{"Month", "Expenses"}}
	for _, s := range f.LastThreeMonths {
		data = append(data, []string{s.Month, r.Money(s.Expenses)})
	}
	t, err := table(data)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%sNext month: %s (confidence %s)\nAverage: %s, trend: %s per month\n",
		t, r.Money(f.Amount), Confidence(f.Confidence), r.Money(f.Average), r.Money(f.Trend)), nil
}

// Overview renders the whole-period digest. trend is omitted when ok is false.
func (r *Renderer) Overview(o model.Overview, trend string, ok bool) (string, error) {
	out := fmt.Sprintf("Months: %d\nTotal income: %s\nTotal expenses: %s\nSavings rate: %s%%\n",
		o.Months, r.Money(o.TotalIncome), r.Money(o.TotalExpenses), o.SavingsRate)
	if ok {
		out += fmt.Sprintf("Spending trend: %s%%\n", trend)
	}
	if len(o.TopCategories) == 0 {
		return out, nil
	}
	t, err := r.Distribution(o.TopCategories)
	if err != nil {
		return "", err
	}
	return out + "Top categories:\n" + t, nil
}

// Confidence colours a 0-100 score: green when high, yellow when medium,
// red otherwise.
func Confidence(score int) string {
	text := strconv.Itoa(score) + "%"
	switch {
	case score >= HighConfidence:
		return color.New(color.FgGreen, color.Bold).Sprint(text)
	case score >= MediumConfidence:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgRed).Sprint(text)
	}
}

func table(data pterm.TableData) (string, error) {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return out + "\n", nil
}
