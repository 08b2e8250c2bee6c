package shopping

import (
	"slices"
	"testing"

	"github.com/mmynk/shoplist/internal/models"
)

func TestAddArticle(t *testing.T) {
	cat := models.Catalogue{
		{Name: "Vegetables", Articles: []string{"Carrots", "Leeks"}},
	}

	if !AddArticle(&cat, "beets", "Vegetables") {
		t.Fatal("expected beets to be inserted")
	}
	if want := []string{"beets", "Carrots", "Leeks"}; !slices.Equal(cat[0].Articles, want) {
		t.Errorf("articles = %v, want %v", cat[0].Articles, want)
	}

	if AddArticle(&cat, "CARROTS", "Vegetables") {
		t.Error("existing article with other case should be a no-op")
	}

	if !AddArticle(&cat, "Cumin", "Spices") {
		t.Fatal("expected new section to be created")
	}
	if len(cat) != 2 || cat[1].Name != "Spices" || !slices.Equal(cat[1].Articles, []string{"Cumin"}) {
		t.Errorf("catalogue = %v, want Spices section with Cumin", cat)
	}
}

func TestAddArticle_Idempotent(t *testing.T) {
	cat := models.Catalogue{{Name: "Dairy", Articles: []string{"Milk"}}}

	first := AddArticle(&cat, "Butter", "Dairy")
	snapshot := slices.Clone(cat[0].Articles)
	second := AddArticle(&cat, "Butter", "Dairy")

	if !first || second {
		t.Errorf("first = %v, second = %v, want true then false", first, second)
	}
	if !slices.Equal(cat[0].Articles, snapshot) {
		t.Errorf("second call changed articles: %v -> %v", snapshot, cat[0].Articles)
	}
}

func TestAddArticle_SectionMatchIsExact(t *testing.T) {
	cat := models.Catalogue{{Name: "Dairy", Articles: []string{"Milk"}}}

	AddArticle(&cat, "Milk", "dairy")
	if len(cat) != 2 {
		t.Errorf("lowercase section name should create a new section, got %v", cat)
	}
}
