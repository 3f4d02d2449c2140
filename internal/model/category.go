package model

// Category is a label from the closed spending taxonomy.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGroceries      Category = "Groceries"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryOnlineServices Category = "Online Services"
	CategoryEntertainment  Category = "Entertainment"
	CategoryEducation      Category = "Education"
	CategoryUtilities      Category = "Utilities"
	CategoryTransfers      Category = "Transfers"
	CategoryIncome         Category = "Income"
	CategoryOther          Category = "Other"
)

var categories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransportation,
	CategoryShopping,
	CategoryHealthcare,
	CategoryOnlineServices,
	CategoryEntertainment,
	CategoryEducation,
	CategoryUtilities,
	CategoryTransfers,
	CategoryIncome,
	CategoryOther,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c belongs to the taxonomy.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
