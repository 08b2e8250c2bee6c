package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/shoplist/internal/storage/sqlite"
)

const sample = `
sections:
  - name: Vegetables
    articles: [Leeks, carrots, Carrots]
  - name: Dairy
    articles: [Milk]
recipes:
  - name: Leek soup
    ingredients:
      - {name: Leeks, section: Vegetables, quantity: 3}
      - {name: Cream, section: Dairy, quantity: 20, unit: cl}
      - {name: Croutons, section: Bakery}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(f.Sections) != 2 || len(f.Recipes) != 1 {
		t.Fatalf("parsed %d sections and %d recipes", len(f.Sections), len(f.Recipes))
	}
	if f.Recipes[0].Ingredients[1].Unit != "cl" {
		t.Errorf("unit = %q, want cl", f.Recipes[0].Ingredients[1].Unit)
	}

	bad := `
recipes:
  - name: Punch
    ingredients:
      - {name: Rum, section: Beverages, quantity: 1, unit: gallon}
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Error("Expected error for unknown unit")
	}
}

func TestApply(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "shoplist-seed-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	store, err := sqlite.New(filepath.Join(tempDir, "seed.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	res, err := Apply(ctx, store, f)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !res.CatalogueSeeded || res.RecipesCreated != 1 {
		t.Errorf("first Apply = %+v", res)
	}
	// Cream goes into Dairy, Croutons opens a Bakery section; Leeks exists.
	if res.ArticlesInserted != 2 {
		t.Errorf("ArticlesInserted = %d, want 2", res.ArticlesInserted)
	}

	cat, err := store.GetCatalogue(ctx)
	if err != nil {
		t.Fatalf("GetCatalogue failed: %v", err)
	}
	veg := cat.Find("Vegetables")
	if veg == nil || len(veg.Articles) != 2 || veg.Articles[0] != "carrots" || veg.Articles[1] != "Leeks" {
		t.Errorf("Vegetables = %+v, want [carrots Leeks]", veg)
	}
	if cat.Find("Bakery") == nil {
		t.Error("Expected Bakery section created from recipe ingredient")
	}

	recipe, err := store.FindRecipeByName(ctx, "leek soup")
	if err != nil {
		t.Fatalf("FindRecipeByName failed: %v", err)
	}
	if got := recipe.Ingredients[1].Quantity.String(); got != "20" {
		t.Errorf("Cream quantity = %s, want 20", got)
	}

	again, err := Apply(ctx, store, f)
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if again != (Result{}) {
		t.Errorf("second Apply = %+v, want no changes", again)
	}
}
