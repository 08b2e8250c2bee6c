package api

import "github.com/shopspring/decimal"

// Ingredient is one recipe line. Quantity defaults to 1 and Unit to "piece".
type Ingredient struct {
	Name     string          `json:"name"`
	Section  string          `json:"section"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
}

type Recipe struct {
	Id          string       `json:"id"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	CreatedAt   int64        `json:"created_at"`
	UpdatedAt   int64        `json:"updated_at"`
}

type ListRecipesRequest struct{}

type ListRecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

type GetRecipeRequest struct {
	Id string `json:"id"`
}

type GetRecipeResponse struct {
	Recipe Recipe `json:"recipe"`
}

// SaveRecipeRequest creates a recipe when Id is empty and edits it otherwise.
type SaveRecipeRequest struct {
	Id          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

type SaveRecipeResponse struct {
	Recipe Recipe `json:"recipe"`
	// CatalogueUpdated is true when new ingredients were added to the catalogue.
	CatalogueUpdated bool `json:"catalogue_updated"`
}

type DeleteRecipeRequest struct {
	Id string `json:"id"`
}

type DeleteRecipeResponse struct{}

type Section struct {
	Name     string   `json:"name"`
	Articles []string `json:"articles"`
}

type GetCatalogueRequest struct{}

type GetCatalogueResponse struct {
	Sections []Section `json:"sections"`
}

type AddArticleRequest struct {
	Section string `json:"section"`
	Name    string `json:"name"`
}

type AddArticleResponse struct {
	Inserted bool `json:"inserted"`
}

// FreeItem is an article checked in the catalogue. Free items are always pieces.
type FreeItem struct {
	Section  string          `json:"section"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// StockItem is an article already at home.
type StockItem struct {
	Section  string          `json:"section"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
}

// ListRequest describes a shopping list to compute: the selected recipe
// names, extra catalogue items and owned stock.
type ListRequest struct {
	Recipes []string    `json:"recipes"`
	Items   []FreeItem  `json:"items"`
	Stock   []StockItem `json:"stock"`
}

type ListItem struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Display  string          `json:"display"`
}

type ListSection struct {
	Name  string     `json:"name"`
	Items []ListItem `json:"items"`
}

type BuildListResponse struct {
	Sections []ListSection `json:"sections"`
	// Recipes are the selected names that matched a stored recipe.
	Recipes    []string `json:"recipes"`
	TotalItems int      `json:"total_items"`
}

type ExportNotionResponse struct {
	Url    string `json:"url"`
	Blocks int    `json:"blocks"`
}

type ExportDocumentResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
