package models

import "time"

// ShoppingCategories is the fixed set of categories items group under
var ShoppingCategories = []string{
	"Produce",
	"Dairy",
	"Meat",
	"Bakery",
	"Pantry",
	"Beverages",
	"Frozen",
	"Other",
}

// IsValidCategory reports whether category is one of the known
// shopping categories
func IsValidCategory(category string) bool {
	for _, c := range ShoppingCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ShoppingItem represents one entry on the shared shopping list
type ShoppingItem struct {
	ID          int64
	FamilyID    int64
	Name        string
	Quantity    string
	Category    string
	AddedBy     int64
	IsCompleted bool
	CreatedAt   time.Time
}
