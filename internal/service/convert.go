package service

import (
	"fmt"
	"strings"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/shopping"
	"github.com/mmynk/shoplist/pkg/api"
)

func recipeToAPI(r *models.Recipe) api.Recipe {
	ingredients := make([]api.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = api.Ingredient{
			Name:     ing.Name,
			Section:  ing.Section,
			Quantity: ing.QuantityOrDefault(),
			Unit:     string(ing.Unit.OrDefault()),
		}
	}
	return api.Recipe{
		Id:          r.ID,
		Name:        r.Name,
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ingredientsFromAPI validates and normalizes recipe lines: names and sections
// are trimmed and required, quantities must not be negative, units must be
// known.
func ingredientsFromAPI(in []api.Ingredient) ([]models.Ingredient, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("a recipe needs at least one ingredient")
	}
	out := make([]models.Ingredient, len(in))
	for i, ing := range in {
		name := strings.TrimSpace(ing.Name)
		section := strings.TrimSpace(ing.Section)
		if name == "" {
			return nil, fmt.Errorf("ingredient %d: name is required", i+1)
		}
		if section == "" {
			return nil, fmt.Errorf("ingredient %q: section is required", name)
		}
		if ing.Quantity.IsNegative() {
			return nil, fmt.Errorf("ingredient %q: quantity must not be negative", name)
		}
		unit, err := models.ParseUnit(ing.Unit)
		if err != nil {
			return nil, fmt.Errorf("ingredient %q: %w", name, err)
		}
		out[i] = models.Ingredient{Name: name, Section: section, Quantity: ing.Quantity, Unit: unit}
	}
	return out, nil
}

func catalogueToAPI(cat models.Catalogue) []api.Section {
	sections := make([]api.Section, len(cat))
	for i, s := range cat {
		articles := s.Articles
		if articles == nil {
			articles = []string{}
		}
		sections[i] = api.Section{Name: s.Name, Articles: articles}
	}
	return sections
}

func listToAPI(list shopping.List) []api.ListSection {
	sections := make([]api.ListSection, len(list))
	for i, s := range list {
		items := make([]api.ListItem, len(s.Items))
		for j, item := range s.Items {
			items[j] = api.ListItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Unit:     string(item.Unit),
				Display:  item.String(),
			}
		}
		sections[i] = api.ListSection{Name: s.Section, Items: items}
	}
	return sections
}

// freeItemsFromAPI groups catalogue picks by section. Free items are pieces.
func freeItemsFromAPI(in []api.FreeItem) (shopping.Grouping, error) {
	g := make(shopping.Grouping)
	for _, it := range in {
		name, section, err := requireArticle(it.Name, it.Section)
		if err != nil {
			return nil, err
		}
		if it.Quantity.IsNegative() {
			return nil, fmt.Errorf("item %q: quantity must not be negative", name)
		}
		g[section] = append(g[section], shopping.Item{Name: name, Quantity: it.Quantity, Unit: models.UnitPiece})
	}
	return g, nil
}

func stockFromAPI(in []api.StockItem) (shopping.Grouping, error) {
	g := make(shopping.Grouping)
	for _, it := range in {
		name, section, err := requireArticle(it.Name, it.Section)
		if err != nil {
			return nil, err
		}
		if it.Quantity.IsNegative() {
			return nil, fmt.Errorf("stock %q: quantity must not be negative", name)
		}
		unit, err := models.ParseUnit(it.Unit)
		if err != nil {
			return nil, fmt.Errorf("stock %q: %w", name, err)
		}
		g[section] = append(g[section], shopping.Item{Name: name, Quantity: it.Quantity, Unit: unit})
	}
	return g, nil
}

func requireArticle(name, section string) (string, string, error) {
	name = strings.TrimSpace(name)
	section = strings.TrimSpace(section)
	if name == "" {
		return "", "", fmt.Errorf("article name is required")
	}
	if section == "" {
		return "", "", fmt.Errorf("article %q: section is required", name)
	}
	return name, section, nil
}
