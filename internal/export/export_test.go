package export

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/shopping"
)

var testDate = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

func sampleDocument() Document {
	return Document{
		Date:    testDate,
		Recipes: []string{"Soup", "Pancakes"},
		List: shopping.List{
			{Section: "Vegetables", Items: []shopping.Item{
				{Name: "Carrots", Quantity: decimal.NewFromInt(500), Unit: models.UnitGram},
				{Name: "Leek", Quantity: decimal.NewFromInt(1), Unit: models.UnitPiece},
			}},
			{Section: "Dairy", Items: []shopping.Item{
				{Name: "Eggs", Quantity: decimal.NewFromInt(6), Unit: models.UnitPiece},
				{Name: "Milk", Quantity: decimal.RequireFromString("0.5"), Unit: models.UnitLitre},
			}},
		},
	}
}

// largeDocument has one section holding n pieces.
func largeDocument(n int) Document {
	items := make([]shopping.Item, n)
	for i := range items {
		items[i] = shopping.Item{Name: fmt.Sprintf("Article %03d", i), Quantity: decimal.NewFromInt(1), Unit: models.UnitPiece}
	}
	return Document{Date: testDate, List: shopping.List{{Section: "Misc", Items: items}}}
}
