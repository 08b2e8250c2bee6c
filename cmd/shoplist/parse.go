package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/pkg/api"
)

// splitArticle splits "SECTION/NAME=VALUE" at the first slash and the last
// equals sign. value is empty when there is no equals sign.
func splitArticle(raw string) (section, name, value string, err error) {
	section, rest, ok := strings.Cut(raw, "/")
	if !ok {
		return "", "", "", fmt.Errorf("%q: expected SECTION/NAME", raw)
	}
	name = rest
	if i := strings.LastIndex(rest, "="); i >= 0 {
		name, value = rest[:i], rest[i+1:]
	}
	section, name = strings.TrimSpace(section), strings.TrimSpace(name)
	if section == "" || name == "" {
		return "", "", "", fmt.Errorf("%q: section and name are required", raw)
	}
	return section, name, strings.TrimSpace(value), nil
}

// parseItem reads SECTION/NAME[=QTY]. The quantity defaults to 1.
func parseItem(raw string) (api.FreeItem, error) {
	section, name, value, err := splitArticle(raw)
	if err != nil {
		return api.FreeItem{}, err
	}
	qty := decimal.NewFromInt(1)
	if value != "" {
		if qty, err = decimal.NewFromString(value); err != nil {
			return api.FreeItem{}, fmt.Errorf("%q: invalid quantity %q", raw, value)
		}
	}
	return api.FreeItem{Section: section, Name: name, Quantity: qty}, nil
}

// parseStock reads SECTION/NAME=QTY[UNIT], e.g. Dairy/Milk=1.5L.
func parseStock(raw string) (api.StockItem, error) {
	section, name, value, err := splitArticle(raw)
	if err != nil {
		return api.StockItem{}, err
	}
	if value == "" {
		return api.StockItem{}, fmt.Errorf("%q: expected SECTION/NAME=QTY[UNIT]", raw)
	}
	qty, unit, err := parseAmount(raw, value)
	if err != nil {
		return api.StockItem{}, err
	}
	return api.StockItem{Section: section, Name: name, Quantity: qty, Unit: string(unit)}, nil
}

// parseIngredient reads SECTION/NAME[=QTY[UNIT]]. Without an amount the
// server applies its defaults of one piece.
func parseIngredient(raw string) (api.Ingredient, error) {
	section, name, value, err := splitArticle(raw)
	if err != nil {
		return api.Ingredient{}, err
	}
	ing := api.Ingredient{Section: section, Name: name}
	if value == "" {
		return ing, nil
	}
	qty, unit, err := parseAmount(raw, value)
	if err != nil {
		return api.Ingredient{}, err
	}
	ing.Quantity, ing.Unit = qty, string(unit)
	return ing, nil
}

// parseAmount reads QTY[UNIT] from value; raw is only used in errors.
func parseAmount(raw, value string) (decimal.Decimal, models.Unit, error) {
	number, unitToken := splitQuantity(value)
	qty, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Decimal{}, "", fmt.Errorf("%q: invalid quantity %q", raw, value)
	}
	unit, err := models.ParseUnit(strings.TrimSpace(unitToken))
	if err != nil {
		return decimal.Decimal{}, "", fmt.Errorf("%q: %w", raw, err)
	}
	return qty, unit, nil
}

// splitQuantity separates the leading number of "500g" from its unit.
func splitQuantity(s string) (number, unit string) {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-') {
		i++
	}
	return s[:i], s[i:]
}
