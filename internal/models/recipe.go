package models

import "github.com/shopspring/decimal"

// Recipe is a dish the household can select for the week.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string

	// Name is the display name. Unique across recipes, compared case-insensitively.
	Name string

	// Ingredients are the recipe lines in the order they were entered.
	Ingredients []Ingredient

	// CreatedAt is the Unix timestamp when the recipe was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64
}

// Ingredient is one line of a recipe.
type Ingredient struct {
	// Name is the ingredient as it appears on the shopping list (e.g., "Carrots").
	Name string

	// Section is the store section the ingredient is bought in (e.g., "Vegetables").
	Section string

	// Quantity is the amount needed. Zero means 1.
	Quantity decimal.Decimal

	// Unit is the measure for Quantity. Empty means UnitPiece.
	Unit Unit
}

// QuantityOrDefault returns the quantity, or 1 when it was left unset.
func (i Ingredient) QuantityOrDefault() decimal.Decimal {
	if i.Quantity.IsZero() {
		return decimal.NewFromInt(1)
	}
	return i.Quantity
}
