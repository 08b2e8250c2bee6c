// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer; one connection keeps writes serialized
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ListRecipes returns all recipes with their ingredients, sorted by name.
func (s *SQLiteStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM recipes ORDER BY name_key, name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	rows.Close()

	for i := range recipes {
		ingredients, err := s.getIngredients(ctx, recipes[i].ID)
		if err != nil {
			return nil, err
		}
		recipes[i].Ingredients = ingredients
	}

	return recipes, nil
}

// GetRecipe retrieves a recipe by ID, including its ingredients.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	return s.getRecipe(ctx, "SELECT id, name, created_at, updated_at FROM recipes WHERE id = ?", id)
}

// FindRecipeByName retrieves a recipe by name, ignoring case.
func (s *SQLiteStore) FindRecipeByName(ctx context.Context, name string) (*models.Recipe, error) {
	return s.getRecipe(ctx, "SELECT id, name, created_at, updated_at FROM recipes WHERE name_key = ?", nameKey(name))
}

func (s *SQLiteStore) getRecipe(ctx context.Context, query, arg string) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := s.db.QueryRowContext(ctx, query, arg).
		Scan(&recipe.ID, &recipe.Name, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recipe %s: %w", arg, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	recipe.Ingredients, err = s.getIngredients(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *SQLiteStore) getIngredients(ctx context.Context, recipeID string) ([]models.Ingredient, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, section, quantity, unit FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position",
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []models.Ingredient
	for rows.Next() {
		var ing models.Ingredient
		var unit string
		if err := rows.Scan(&ing.Name, &ing.Section, &ing.Quantity, &unit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ing.Unit = models.Unit(unit)
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingredients: %w", err)
	}
	return ingredients, nil
}

// CreateRecipe persists a new recipe and its ingredients.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return s.saveRecipe(ctx, recipe, nil, true)
}

// UpdateRecipe replaces the name and ingredients of an existing recipe.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		return fmt.Errorf("recipe without ID: %w", storage.ErrNotFound)
	}
	return s.saveRecipe(ctx, recipe, nil, false)
}

// SaveRecipe creates the recipe when its ID is empty and updates it
// otherwise. A non-nil cat replaces the catalogue in the same transaction.
func (s *SQLiteStore) SaveRecipe(ctx context.Context, recipe *models.Recipe, cat models.Catalogue) error {
	return s.saveRecipe(ctx, recipe, cat, recipe.ID == "")
}

func (s *SQLiteStore) saveRecipe(ctx context.Context, recipe *models.Recipe, cat models.Catalogue, create bool) (err error) {
	if create && recipe.ID == "" {
		// A rolled back insert leaves the recipe unsaved.
		defer func() {
			if err != nil {
				recipe.ID = ""
			}
		}()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if create {
		err = insertRecipe(ctx, tx, recipe)
	} else {
		err = updateRecipe(ctx, tx, recipe)
	}
	if err != nil {
		return err
	}

	if cat != nil {
		if err := writeCatalogue(ctx, tx, cat); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertRecipe(ctx context.Context, tx *sql.Tx, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.CreatedAt == 0 {
		recipe.CreatedAt = time.Now().Unix()
	}
	recipe.UpdatedAt = recipe.CreatedAt

	_, err := tx.ExecContext(ctx,
		"INSERT INTO recipes (id, name, name_key, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		recipe.ID, recipe.Name, nameKey(recipe.Name), recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return wrapConstraint(err, recipe.Name, "failed to insert recipe")
	}
	return insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients)
}

func updateRecipe(ctx context.Context, tx *sql.Tx, recipe *models.Recipe) error {
	recipe.UpdatedAt = time.Now().Unix()

	result, err := tx.ExecContext(ctx,
		"UPDATE recipes SET name = ?, name_key = ?, updated_at = ? WHERE id = ?",
		recipe.Name, nameKey(recipe.Name), recipe.UpdatedAt, recipe.ID,
	)
	if err != nil {
		return wrapConstraint(err, recipe.Name, "failed to update recipe")
	}
	if err := requireRow(result, recipe.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", recipe.ID); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}
	if err := insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients); err != nil {
		return err
	}

	if err := tx.QueryRowContext(ctx, "SELECT created_at FROM recipes WHERE id = ?", recipe.ID).Scan(&recipe.CreatedAt); err != nil {
		return fmt.Errorf("failed to read recipe: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe and its ingredients.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete ingredients: %w", err)
	}
	result, err := tx.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if err := requireRow(result, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sql.Tx, recipeID string, ingredients []models.Ingredient) error {
	for i, ing := range ingredients {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (recipe_id, position, name, section, quantity, unit) VALUES (?, ?, ?, ?, ?, ?)",
			recipeID, i, ing.Name, ing.Section, ing.QuantityOrDefault().String(), string(ing.Unit.OrDefault()),
		)
		if err != nil {
			return fmt.Errorf("failed to insert ingredient: %w", err)
		}
	}
	return nil
}

func requireRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// nameKey is the case-folded form names are compared by, the same folding
// the shopping engine applies.
func nameKey(name string) string {
	return strings.ToLower(name)
}

// wrapConstraint maps a UNIQUE violation on the recipe name to storage.ErrDuplicateName.
func wrapConstraint(err error, name, msg string) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("recipe %q: %w", name, storage.ErrDuplicateName)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
