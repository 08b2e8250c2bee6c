package shopping

import (
	"testing"

	"github.com/mmynk/shoplist/internal/models"
)

func TestSubtractStock(t *testing.T) {
	tests := []struct {
		name  string
		list  List
		stock Grouping
		want  List
	}{
		{
			name:  "partial cover reduces quantity",
			list:  List{{Section: "Dairy", Items: []Item{item("Milk", 2, models.UnitLitre)}}},
			stock: Grouping{"Dairy": {item("Milk", 1, models.UnitLitre)}},
			want:  List{{Section: "Dairy", Items: []Item{item("Milk", 1, models.UnitLitre)}}},
		},
		{
			name:  "full cover drops item and section",
			list:  List{{Section: "Dairy", Items: []Item{item("Milk", 1, models.UnitLitre)}}},
			stock: Grouping{"Dairy": {item("Milk", 2, models.UnitLitre)}},
			want:  nil,
		},
		{
			name:  "exact cover drops item",
			list:  List{{Section: "Dairy", Items: []Item{item("Milk", 1, models.UnitLitre), item("Eggs", 6, models.UnitPiece)}}},
			stock: Grouping{"Dairy": {item("milk", 1, models.UnitLitre)}},
			want:  List{{Section: "Dairy", Items: []Item{item("Eggs", 6, models.UnitPiece)}}},
		},
		{
			name:  "different unit leaves item untouched",
			list:  List{{Section: "Dairy", Items: []Item{item("Milk", 1, models.UnitLitre)}}},
			stock: Grouping{"Dairy": {item("Milk", 2000, models.UnitMillilitre)}},
			want:  List{{Section: "Dairy", Items: []Item{item("Milk", 1, models.UnitLitre)}}},
		},
		{
			name:  "stock in another section does not apply",
			list:  List{{Section: "Fish", Items: []Item{item("Salmon", 2, models.UnitPiece)}}},
			stock: Grouping{"Frozen": {item("Salmon", 2, models.UnitPiece)}},
			want:  List{{Section: "Fish", Items: []Item{item("Salmon", 2, models.UnitPiece)}}},
		},
		{
			name: "same-unit stock entries add up",
			list: List{{Section: "Vegetables", Items: []Item{item("Carrots", 1000, models.UnitGram)}}},
			stock: Grouping{"Vegetables": {
				item("Carrots", 300, models.UnitGram),
				item("Carrots", 200, models.UnitGram),
			}},
			want: List{{Section: "Vegetables", Items: []Item{item("Carrots", 500, models.UnitGram)}}},
		},
		{
			name: "later entry in another unit replaces earlier stock",
			list: List{{Section: "Vegetables", Items: []Item{item("Carrots", 1000, models.UnitGram)}}},
			stock: Grouping{"Vegetables": {
				item("Carrots", 300, models.UnitGram),
				item("Carrots", 1, models.UnitKilogram),
			}},
			want: List{{Section: "Vegetables", Items: []Item{item("Carrots", 1000, models.UnitGram)}}},
		},
		{
			name: "only the matching unit line is reduced",
			list: List{{Section: "Dairy", Items: []Item{
				item("Milk", 1, models.UnitLitre),
				item("Milk", 500, models.UnitMillilitre),
			}}},
			stock: Grouping{"Dairy": {item("Milk", 200, models.UnitMillilitre)}},
			want: List{{Section: "Dairy", Items: []Item{
				item("Milk", 1, models.UnitLitre),
				item("Milk", 300, models.UnitMillilitre),
			}}},
		},
		{
			name:  "no stock keeps the list",
			list:  List{{Section: "Bakery", Items: []Item{item("Bread", 1, models.UnitPiece)}}},
			stock: nil,
			want:  List{{Section: "Bakery", Items: []Item{item("Bread", 1, models.UnitPiece)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubtractStock(tt.list, tt.stock)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sections %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i].Section != tt.want[i].Section {
					t.Errorf("section %d = %s, want %s", i, got[i].Section, tt.want[i].Section)
				}
				assertItems(t, got[i].Items, tt.want[i].Items)
			}
		})
	}
}

func TestSubtractStock_NeverNegative(t *testing.T) {
	list := BuildList(Merge([]Occurrence{
		occ("Rice", "Salty Grocery", 500, models.UnitGram),
		occ("Pasta", "Salty Grocery", 1, models.UnitKilogram),
		occ("Tomatoes", "Vegetables", 4, models.UnitPiece),
	}), nil)
	stock := Grouping{
		"Salty Grocery": {item("Rice", 2000, models.UnitGram), item("Pasta", 500, models.UnitGram)},
		"Vegetables":    {item("Tomatoes", 1, models.UnitPiece)},
	}

	got := SubtractStock(list, stock)
	for _, section := range got {
		for _, it := range section.Items {
			if !it.Quantity.IsPositive() {
				t.Errorf("%s has non-positive quantity %s", it.Name, it.Quantity)
			}
		}
	}
	if got.Len() != 2 {
		t.Errorf("got %d items, want Pasta and Tomatoes: %v", got.Len(), got)
	}
}

func TestSubtractStock_DoesNotMutateInput(t *testing.T) {
	list := List{{Section: "Dairy", Items: []Item{item("Milk", 2, models.UnitLitre)}}}
	SubtractStock(list, Grouping{"Dairy": {item("Milk", 1, models.UnitLitre)}})

	if !list[0].Items[0].Quantity.Equal(qty(2)) {
		t.Errorf("input list modified: %s", list[0].Items[0].Quantity)
	}
}
