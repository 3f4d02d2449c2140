package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/ledgerlens/internal/model"
)

func expense(date, amount string, c model.Category) model.Transaction {
	return entry(date, amount, c, model.KindExpense)
}

func income(date, amount string) model.Transaction {
	return entry(date, amount, model.CategoryIncome, model.KindIncome)
}

func entry(date, amount string, c model.Category, k model.Kind) model.Transaction {
	d, err := time.Parse(model.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:       date + "-" + amount,
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Category: c,
		Kind:     k,
	}
}

func TestSummarize(t *testing.T) {
	txns := []model.Transaction{
		expense("2024-03-05", "200", model.CategoryFoodDining),
		income("2024-02-01", "5000"),
		expense("2024-02-10", "1000", model.CategoryShopping),
		expense("2024-03-07", "300.50", model.CategoryFoodDining),
		expense("2024-03-09", "100", model.CategoryTransportation),
		income("2024-03-02", "4000"),
	}

	got := Summarize(txns)
	require.Len(t, got, 2)

	feb, mar := got[0], got[1]
	assert.Equal(t, "2024-02", feb.Month)
	assert.Equal(t, "2024-03", mar.Month)

	assert.Equal(t, "1000", feb.Expenses.String())
	assert.Equal(t, "5000", feb.Income.String())
	assert.Equal(t, "4000", feb.Savings.String())

	assert.Equal(t, "600.5", mar.Expenses.String())
	assert.Equal(t, "3399.5", mar.Savings.String())
	assert.Equal(t, "500.5", mar.Categories[model.CategoryFoodDining].String())
	assert.Equal(t, "100", mar.Categories[model.CategoryTransportation].String())
	assert.NotContains(t, mar.Categories, model.CategoryIncome)
}

func TestSummarize_Invariants(t *testing.T) {
	txns := []model.Transaction{
		expense("2024-01-03", "10.10", model.CategoryGroceries),
		expense("2024-01-04", "20.20", model.CategoryGroceries),
		expense("2024-01-05", "5", model.CategoryHealthcare),
		income("2024-01-06", "100"),
		expense("2023-12-31", "7.77", model.CategoryOther),
	}

	sumExpenses := decimal.Zero
	for _, s := range Summarize(txns) {
		var cats decimal.Decimal
		for _, v := range s.Categories {
			cats = cats.Add(v)
		}
		assert.True(t, cats.Equal(s.Expenses), "category totals sum to expenses for %s", s.Month)
		assert.True(t, s.Savings.Equal(s.Income.Sub(s.Expenses)))
		sumExpenses = sumExpenses.Add(s.Expenses)
	}
	assert.Equal(t, "43.07", sumExpenses.String())
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestDistribution(t *testing.T) {
	txns := []model.Transaction{
		expense("2024-03-01", "100", model.CategoryFoodDining),
		income("2024-03-02", "9999"),
		expense("2024-03-03", "300", model.CategoryShopping),
		expense("2024-03-04", "100", model.CategoryFoodDining),
		expense("2024-03-05", "200", model.CategoryTransportation),
		expense("2024-04-01", "100", model.CategoryHealthcare),
	}

	got := Distribution(txns)
	require.Len(t, got, 4)

	assert.Equal(t, model.CategoryShopping, got[0].Category)
	assert.Equal(t, "37.5", got[0].Percentage)

	// Food and Transportation tie at 200; Food appeared first.
	assert.Equal(t, model.CategoryFoodDining, got[1].Category)
	assert.Equal(t, "200", got[1].Amount.String())
	assert.Equal(t, "25.0", got[1].Percentage)
	assert.Equal(t, model.CategoryTransportation, got[2].Category)

	assert.Equal(t, model.CategoryHealthcare, got[3].Category)
	assert.Equal(t, "12.5", got[3].Percentage)

	for _, d := range got {
		assert.NotEqual(t, model.CategoryIncome, d.Category)
	}
}

func TestDistribution_OneDecimal(t *testing.T) {
	got := Distribution([]model.Transaction{
		expense("2024-03-01", "1", model.CategoryFoodDining),
		expense("2024-03-02", "2", model.CategoryShopping),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "66.7", got[0].Percentage)
	assert.Equal(t, "33.3", got[1].Percentage)
}

func TestDistribution_NoExpenses(t *testing.T) {
	assert.Empty(t, Distribution(nil))
	assert.Empty(t, Distribution([]model.Transaction{income("2024-03-01", "500")}))
}

func TestSavingsRates(t *testing.T) {
	summaries := Summarize([]model.Transaction{
		income("2024-01-01", "1000"),
		expense("2024-01-02", "250", model.CategoryOther),
		expense("2024-02-02", "250", model.CategoryOther),
		income("2024-03-01", "100"),
		expense("2024-03-02", "150", model.CategoryOther),
	})

	got := SavingsRates(summaries)
	assert.Equal(t, []model.SavingsRate{
		{Month: "2024-01", Rate: "75.0"},
		{Month: "2024-02", Rate: ZeroRate},
		{Month: "2024-03", Rate: "-50.0"},
	}, got)
}

func TestOverview(t *testing.T) {
	txns := []model.Transaction{
		income("2024-01-01", "2000"),
		expense("2024-01-02", "400", model.CategoryShopping),
		expense("2024-01-03", "100", model.CategoryFoodDining),
		expense("2024-02-03", "300", model.CategoryTransportation),
		expense("2024-02-04", "50", model.CategoryHealthcare),
		income("2024-03-01", "2000"),
	}

	o := Overview(txns)
	assert.Equal(t, "4000", o.TotalIncome.String())
	assert.Equal(t, "850", o.TotalExpenses.String())
	assert.Equal(t, "78.8", o.SavingsRate)
	assert.Equal(t, 3, o.Months)

	require.Len(t, o.TopCategories, TopCategoryCount)
	assert.Equal(t, model.CategoryShopping, o.TopCategories[0].Category)
	assert.Equal(t, model.CategoryTransportation, o.TopCategories[1].Category)
	assert.Equal(t, model.CategoryFoodDining, o.TopCategories[2].Category)
}

func TestOverview_Empty(t *testing.T) {
	o := Overview(nil)
	assert.True(t, o.TotalIncome.IsZero())
	assert.Equal(t, ZeroRate, o.SavingsRate)
	assert.Empty(t, o.TopCategories)
	assert.Zero(t, o.Months)
}

func TestSpendingTrend(t *testing.T) {
	summaries := Summarize([]model.Transaction{
		expense("2024-01-01", "1000", model.CategoryOther),
		expense("2024-02-01", "1100", model.CategoryOther),
		expense("2024-03-01", "1200", model.CategoryOther),
	})

	got, ok := SpendingTrend(summaries)
	require.True(t, ok)
	assert.Equal(t, "20.0", got)

	_, ok = SpendingTrend(summaries[:1])
	assert.False(t, ok)

	zeroFirst := Summarize([]model.Transaction{
		income("2024-01-01", "10"),
		expense("2024-02-01", "10", model.CategoryOther),
	})
	_, ok = SpendingTrend(zeroFirst)
	assert.False(t, ok)
}
