// Package seed loads a YAML description of the store catalogue and starter
// recipes and applies it to a storage.Store.
//
//	sections:
//	  - name: Vegetables
//	    articles: [Carrots, Leeks]
//	recipes:
//	  - name: Leek soup
//	    ingredients:
//	      - {name: Leeks, section: Vegetables, quantity: 3}
//	      - {name: Cream, section: Dairy, quantity: 20, unit: cl}
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/shopping"
	"github.com/mmynk/shoplist/internal/storage"
)

// File is the YAML document layout.
type File struct {
	Sections []Section `yaml:"sections"`
	Recipes  []Recipe  `yaml:"recipes"`
}

// Section is a catalogue section in the seed file.
type Section struct {
	Name     string   `yaml:"name"`
	Articles []string `yaml:"articles"`
}

// Recipe is a starter recipe in the seed file.
type Recipe struct {
	Name        string       `yaml:"name"`
	Ingredients []Ingredient `yaml:"ingredients"`
}

// Ingredient is one recipe line. Quantity and unit may be omitted.
type Ingredient struct {
	Name     string  `yaml:"name"`
	Section  string  `yaml:"section"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit"`
}

// Result summarizes what Apply changed.
type Result struct {
	CatalogueSeeded  bool
	RecipesCreated   int
	ArticlesInserted int
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document and validates units.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for _, r := range f.Recipes {
		if r.Name == "" {
			return nil, errors.New("seed recipe without a name")
		}
		for _, ing := range r.Ingredients {
			if _, err := models.ParseUnit(ing.Unit); err != nil {
				return nil, fmt.Errorf("recipe %q, ingredient %q: %w", r.Name, ing.Name, err)
			}
		}
	}
	return &f, nil
}

// Apply writes the seed into the store. The catalogue is written only when
// the store has none yet; recipes are created only when no recipe with the
// same name exists. Every created recipe's ingredients are registered in the
// catalogue. Applying the same seed twice changes nothing the second time.
func Apply(ctx context.Context, store storage.Store, f *File) (Result, error) {
	var res Result

	cat, err := store.GetCatalogue(ctx)
	if err != nil {
		return res, err
	}
	modified := false
	if len(cat) == 0 && len(f.Sections) > 0 {
		for _, s := range f.Sections {
			if cat.Find(s.Name) == nil {
				cat = append(cat, models.Section{Name: s.Name, Articles: []string{}})
			}
			for _, a := range s.Articles {
				shopping.AddArticle(&cat, a, s.Name)
			}
		}
		res.CatalogueSeeded = true
		modified = true
	}

	for _, r := range f.Recipes {
		_, err := store.FindRecipeByName(ctx, r.Name)
		if err == nil {
			slog.Debug("Seed recipe already present", "name", r.Name)
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return res, err
		}

		recipe := toRecipe(r)
		if err := store.CreateRecipe(ctx, recipe); err != nil {
			return res, fmt.Errorf("failed to seed recipe %q: %w", r.Name, err)
		}
		res.RecipesCreated++

		for _, ing := range recipe.Ingredients {
			if shopping.AddArticle(&cat, ing.Name, ing.Section) {
				res.ArticlesInserted++
				modified = true
			}
		}
	}

	if modified {
		if err := store.SaveCatalogue(ctx, cat); err != nil {
			return res, err
		}
	}

	slog.Info("Seed applied",
		"catalogue_seeded", res.CatalogueSeeded,
		"recipes_created", res.RecipesCreated,
		"articles_inserted", res.ArticlesInserted,
	)
	return res, nil
}

func toRecipe(r Recipe) *models.Recipe {
	recipe := &models.Recipe{Name: r.Name}
	for _, ing := range r.Ingredients {
		// Parse already validated the unit.
		unit, _ := models.ParseUnit(ing.Unit)
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:     ing.Name,
			Section:  ing.Section,
			Quantity: decimal.NewFromFloat(ing.Quantity),
			Unit:     unit,
		})
	}
	return recipe
}
