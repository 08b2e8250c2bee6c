// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/shoplist/internal/models"
)

var (
	// ErrNotFound is returned when a recipe does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned when a recipe name is already taken.
	// Names compare after Unicode lower-casing, so "Épinards" equals "épinards".
	ErrDuplicateName = errors.New("name already exists")
)

// Store defines the interface for recipe and catalogue storage.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// ListRecipes returns every recipe, sorted by name ignoring case.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe retrieves a recipe by its ID.
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// FindRecipeByName retrieves a recipe by name, ignoring case.
	FindRecipeByName(ctx context.Context, name string) (*models.Recipe, error)

	// CreateRecipe persists a new recipe.
	// The recipe.ID and CreatedAt fields are populated by the store.
	CreateRecipe(ctx context.Context, recipe *models.Recipe) error

	// UpdateRecipe replaces the name and ingredients of an existing recipe.
	UpdateRecipe(ctx context.Context, recipe *models.Recipe) error

	// SaveRecipe creates the recipe when its ID is empty and updates it
	// otherwise. When cat is non-nil it replaces the catalogue in the same
	// transaction, so either both writes land or neither does.
	SaveRecipe(ctx context.Context, recipe *models.Recipe, cat models.Catalogue) error

	// DeleteRecipe removes a recipe by ID.
	DeleteRecipe(ctx context.Context, id string) error

	// GetCatalogue returns the sections in their stored order.
	GetCatalogue(ctx context.Context) (models.Catalogue, error)

	// SaveCatalogue replaces the whole catalogue.
	SaveCatalogue(ctx context.Context, cat models.Catalogue) error

	// Close releases any resources held by the store.
	Close() error
}
