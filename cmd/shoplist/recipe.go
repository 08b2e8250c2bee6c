package main

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/pkg/api"
)

func newRecipeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Create, edit or delete a recipe",
	}
	cmd.AddCommand(newRecipeSaveCmd(a), newRecipeDeleteCmd(a))
	return cmd
}

func newRecipeSaveCmd(a *app) *cobra.Command {
	var (
		id          string
		ingredients []string
	)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Create a recipe, or replace the one with the same name",
		Long: `Save a recipe. An existing recipe whose name matches (ignoring case) is
replaced; pass --id to rename one. Every ingredient is added to the
catalogue under its section.

` + SubtitleStyle.Render("Example:") + `
  shoplist recipe save "Leek soup" -i Vegetables/Leeks=3 -i Dairy/Cream=20cl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &api.SaveRecipeRequest{Id: id, Name: args[0]}
			for _, raw := range ingredients {
				ing, err := parseIngredient(raw)
				if err != nil {
					return fmt.Errorf("invalid --ingredient: %w", err)
				}
				req.Ingredients = append(req.Ingredients, ing)
			}

			if req.Id == "" {
				existing, err := a.findRecipe(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if existing != nil {
					req.Id = existing.Id
				}
			}

			resp, err := a.recipes().SaveRecipe(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return fmt.Errorf("failed to save recipe: %w", err)
			}

			r := resp.Msg.Recipe
			fmt.Fprintln(a.out, SuccessStyle.Render("✓ ")+fmt.Sprintf("Saved %s (%d ingredients)", r.Name, len(r.Ingredients)))
			if resp.Msg.CatalogueUpdated {
				fmt.Fprintln(a.out, SubtitleStyle.Render("  New articles were added to the catalogue"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ID of the recipe to replace")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "ingredient as SECTION/NAME[=QTY[UNIT]] (repeatable)")
	cmd.MarkFlagRequired("ingredient")
	return cmd
}

func newRecipeDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME|ID",
		Short: "Delete a recipe; its articles stay in the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, name := args[0], args[0]
			existing, err := a.findRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if existing != nil {
				id, name = existing.Id, existing.Name
			}

			if _, err := a.recipes().DeleteRecipe(cmd.Context(), connect.NewRequest(&api.DeleteRecipeRequest{Id: id})); err != nil {
				if connect.CodeOf(err) == connect.CodeNotFound {
					return fmt.Errorf("no recipe named %q", args[0])
				}
				return fmt.Errorf("failed to delete recipe: %w", err)
			}

			fmt.Fprintln(a.out, SuccessStyle.Render("✓ ")+"Deleted "+name)
			return nil
		},
	}
}

// findRecipe returns the stored recipe called name, ignoring case, or nil.
func (a *app) findRecipe(ctx context.Context, name string) (*api.Recipe, error) {
	resp, err := a.recipes().ListRecipes(ctx, connect.NewRequest(&api.ListRecipesRequest{}))
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	name = strings.TrimSpace(name)
	for i, r := range resp.Msg.Recipes {
		if strings.EqualFold(r.Name, name) {
			return &resp.Msg.Recipes[i], nil
		}
	}
	return nil, nil
}
