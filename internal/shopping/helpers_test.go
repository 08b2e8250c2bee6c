package shopping

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
)

func qty(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func occ(name, section string, quantity int64, unit models.Unit) Occurrence {
	return Occurrence{Name: name, Section: section, Quantity: qty(quantity), Unit: unit}
}

func item(name string, quantity int64, unit models.Unit) Item {
	return Item{Name: name, Quantity: qty(quantity), Unit: unit}
}

// assertItems compares items by name, unit and exact decimal quantity.
func assertItems(t *testing.T, got, want []Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d items %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Name != want[i].Name || got[i].Unit != want[i].Unit || !got[i].Quantity.Equal(want[i].Quantity) {
			t.Errorf("item %d = %s %s %s, want %s %s %s", i,
				got[i].Name, got[i].Quantity, got[i].Unit,
				want[i].Name, want[i].Quantity, want[i].Unit)
		}
	}
}

func sectionNames(l List) []string {
	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Section
	}
	return names
}
