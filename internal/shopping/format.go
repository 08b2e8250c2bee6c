package shopping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
)

// FormatItem renders an item for display: "Bread", "Eggs (x6)", "Carrots (450g)".
func FormatItem(name string, quantity decimal.Decimal, unit models.Unit) string {
	if unit.OrDefault() == models.UnitPiece {
		if quantity.Equal(decimal.NewFromInt(1)) {
			return name
		}
		return fmt.Sprintf("%s (x%s)", name, quantity.String())
	}
	return fmt.Sprintf("%s (%s%s)", name, quantity.String(), unit)
}

// String implements fmt.Stringer using FormatItem.
func (i Item) String() string {
	return FormatItem(i.Name, i.Quantity, i.Unit)
}
