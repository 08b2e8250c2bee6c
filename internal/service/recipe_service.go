package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/shopping"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
)

var _ api.RecipeServiceHandler = (*RecipeService)(nil)

// RecipeService implements the Connect RecipeService
type RecipeService struct {
	store storage.Store
}

// NewRecipeService creates a new RecipeService with the given storage backend.
func NewRecipeService(store storage.Store) *RecipeService {
	return &RecipeService{store: store}
}

// ListRecipes returns every recipe, sorted by name.
func (s *RecipeService) ListRecipes(ctx context.Context, req *connect.Request[api.ListRecipesRequest]) (*connect.Response[api.ListRecipesResponse], error) {
	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		slog.Error("ListRecipes failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]api.Recipe, len(recipes))
	for i := range recipes {
		out[i] = recipeToAPI(&recipes[i])
	}

	slog.Debug("ListRecipes successful", "count", len(out))
	return connect.NewResponse(&api.ListRecipesResponse{Recipes: out}), nil
}

// GetRecipe retrieves a recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, req *connect.Request[api.GetRecipeRequest]) (*connect.Response[api.GetRecipeResponse], error) {
	recipe, err := s.store.GetRecipe(ctx, req.Msg.Id)
	if err != nil {
		slog.Error("GetRecipe failed", "recipe_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetRecipeResponse{Recipe: recipeToAPI(recipe)}), nil
}

// SaveRecipe creates a recipe, or replaces one when an ID is given. Every
// ingredient is registered in the catalogue under its section.
func (s *RecipeService) SaveRecipe(ctx context.Context, req *connect.Request[api.SaveRecipeRequest]) (*connect.Response[api.SaveRecipeResponse], error) {
	slog.Info("SaveRecipe request received",
		"recipe_id", req.Msg.Id,
		"name", req.Msg.Name,
		"ingredients_count", len(req.Msg.Ingredients),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument(fmt.Errorf("recipe name is required"))
	}
	ingredients, err := ingredientsFromAPI(req.Msg.Ingredients)
	if err != nil {
		return nil, invalidArgument(err)
	}

	existing, err := s.store.FindRecipeByName(ctx, name)
	switch {
	case err == nil && existing.ID != req.Msg.Id:
		return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("a recipe named %q already exists", existing.Name))
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		slog.Error("SaveRecipe: failed to look up name", "name", name, "error", err)
		return nil, toConnectError(err)
	}

	cat, err := s.registerIngredients(ctx, ingredients)
	if err != nil {
		slog.Error("SaveRecipe: failed to load catalogue", "error", err)
		return nil, toConnectError(err)
	}

	recipe := &models.Recipe{ID: req.Msg.Id, Name: name, Ingredients: ingredients}
	if err := s.store.SaveRecipe(ctx, recipe, cat); err != nil {
		slog.Error("SaveRecipe failed", "recipe_id", recipe.ID, "error", err)
		return nil, toConnectError(err)
	}

	updated := cat != nil
	slog.Info("Recipe saved", "recipe_id", recipe.ID, "catalogue_updated", updated)

	return connect.NewResponse(&api.SaveRecipeResponse{
		Recipe:           recipeToAPI(recipe),
		CatalogueUpdated: updated,
	}), nil
}

// registerIngredients adds the ingredients to the stored catalogue. It
// returns nil when every ingredient was already listed.
func (s *RecipeService) registerIngredients(ctx context.Context, ingredients []models.Ingredient) (models.Catalogue, error) {
	cat, err := s.store.GetCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	modified := false
	for _, ing := range ingredients {
		if shopping.AddArticle(&cat, ing.Name, ing.Section) {
			modified = true
		}
	}
	if !modified {
		return nil, nil
	}
	return cat, nil
}

// DeleteRecipe removes a recipe. Its ingredients stay in the catalogue.
func (s *RecipeService) DeleteRecipe(ctx context.Context, req *connect.Request[api.DeleteRecipeRequest]) (*connect.Response[api.DeleteRecipeResponse], error) {
	slog.Info("DeleteRecipe request received", "recipe_id", req.Msg.Id)

	if err := s.store.DeleteRecipe(ctx, req.Msg.Id); err != nil {
		slog.Error("DeleteRecipe failed", "recipe_id", req.Msg.Id, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Recipe deleted", "recipe_id", req.Msg.Id)
	return connect.NewResponse(&api.DeleteRecipeResponse{}), nil
}
