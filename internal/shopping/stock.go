package shopping

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
)

type stockKey struct {
	name    string
	section string
}

type stockEntry struct {
	quantity decimal.Decimal
	unit     models.Unit
}

// indexStock totals stock per (name, section). Entries in the same unit add
// up; an entry in another unit replaces what was recorded so far.
func indexStock(stock Grouping) map[stockKey]stockEntry {
	sections := make([]string, 0, len(stock))
	for section := range stock {
		sections = append(sections, section)
	}
	slices.Sort(sections)

	index := make(map[stockKey]stockEntry)
	for _, section := range sections {
		for _, item := range stock[section] {
			qty := item.Quantity
			if qty.IsZero() {
				qty = decimal.NewFromInt(1)
			}
			unit := item.Unit.OrDefault()
			key := stockKey{name: strings.ToLower(item.Name), section: section}

			if cur, ok := index[key]; ok && cur.unit == unit {
				cur.quantity = cur.quantity.Add(qty)
				index[key] = cur
				continue
			}
			index[key] = stockEntry{quantity: qty, unit: unit}
		}
	}
	return index
}

// SubtractStock removes owned quantities from a built list. An item fully
// covered by stock is dropped. An item whose stock is recorded in a different
// unit is kept unchanged, since units are never converted. Sections left
// empty are omitted.
func SubtractStock(list List, stock Grouping) List {
	index := indexStock(stock)

	var result List
	for _, section := range list {
		var items []Item
		for _, item := range section.Items {
			owned, ok := index[stockKey{name: strings.ToLower(item.Name), section: section.Section}]
			if !ok || owned.unit != item.Unit.OrDefault() {
				items = append(items, item)
				continue
			}
			remaining := item.Quantity.Sub(owned.quantity)
			if remaining.IsPositive() {
				item.Quantity = remaining
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			result = append(result, SectionItems{Section: section.Section, Items: items})
		}
	}
	return result
}
