package shopping

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
)

// Occurrence is one demand for an ingredient from one source: a recipe line,
// a checked catalogue article or an owned stock entry.
type Occurrence struct {
	Name     string
	Section  string
	Quantity decimal.Decimal
	Unit     models.Unit
}

// Item is the merged result for one (name, unit) pair within a section.
type Item struct {
	Name     string
	Quantity decimal.Decimal
	Unit     models.Unit
}

// Grouping maps a section name to its items. Section order is not meaningful.
type Grouping map[string][]Item

// SectionItems is one section of a List.
type SectionItems struct {
	Section string
	Items   []Item
}

// List is a shopping list ordered by section, then by item name.
type List []SectionItems

// Len returns the total number of items across sections.
func (l List) Len() int {
	n := 0
	for _, s := range l {
		n += len(s.Items)
	}
	return n
}

// Grouping returns the list as an unordered Grouping.
func (l List) Grouping() Grouping {
	g := make(Grouping, len(l))
	for _, s := range l {
		g[s.Section] = s.Items
	}
	return g
}

// withDefaults fills the quantity and unit an upstream form may have left blank.
func (o Occurrence) withDefaults() Occurrence {
	if o.Quantity.IsZero() {
		o.Quantity = decimal.NewFromInt(1)
	}
	o.Unit = o.Unit.OrDefault()
	return o
}
