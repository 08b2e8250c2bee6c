package shopping

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/shoplist/internal/models"
)

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		quantity decimal.Decimal
		unit     models.Unit
		want     string
	}{
		{"single piece is just the name", "Bread", qty(1), models.UnitPiece, "Bread"},
		{"several pieces", "Eggs", qty(6), models.UnitPiece, "Eggs (x6)"},
		{"empty unit counts as piece", "Leeks", qty(3), "", "Leeks (x3)"},
		{"grams", "Carrots", qty(450), models.UnitGram, "Carrots (450g)"},
		{"one litre keeps its unit", "Milk", qty(1), models.UnitLitre, "Milk (1L)"},
		{"fractional quantity", "Cream", decimal.RequireFromString("1.50"), models.UnitLitre, "Cream (1.5L)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatItem(tt.item, tt.quantity, tt.unit); got != tt.want {
				t.Errorf("FormatItem() = %q, want %q", got, tt.want)
			}
		})
	}
}
