package classify

import "github.com/ledgerlens/ledgerlens/internal/model"

// DefaultRules returns the built-in merchant table for Kaspi statements.
// Order matters: earlier keywords shadow later ones.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "SMALL", Category: model.CategoryGroceries},
		{Keyword: "Avtobys", Category: model.CategoryTransportation},
		{Keyword: "GALMART", Category: model.CategoryShopping},
		{Keyword: "Pharmacom", Category: model.CategoryHealthcare},
		{Keyword: "PAYPAL", Category: model.CategoryOnlineServices},
		{Keyword: "Dodopizza", Category: model.CategoryFoodDining},
		{Keyword: "COFFEE", Category: model.CategoryFoodDining},
		{Keyword: "KOFEYNYA", Category: model.CategoryFoodDining},
		{Keyword: "Chaplin", Category: model.CategoryEntertainment},
		{Keyword: "WILDBERRIES", Category: model.CategoryShopping},
		{Keyword: "MINISO", Category: model.CategoryShopping},
		{Keyword: "it university", Category: model.CategoryEducation},
		{Keyword: "Burger King", Category: model.CategoryFoodDining},
		{Keyword: "Activ", Category: model.CategoryUtilities},
		{Keyword: "MEGA", Category: model.CategoryShopping},
		{Keyword: "FARMACIA", Category: model.CategoryHealthcare},
		{Keyword: "Перевод", Category: model.CategoryTransfers},
		{Keyword: "Пополнение", Category: model.CategoryIncome},
	}
}
