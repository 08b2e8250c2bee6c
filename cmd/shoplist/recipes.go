package main

import (
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/pkg/api"
)

func newRecipesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List stored recipes and their ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.recipes().ListRecipes(cmd.Context(), connect.NewRequest(&api.ListRecipesRequest{}))
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}

			recipes := resp.Msg.Recipes
			fmt.Fprintln(a.out, TitleStyle.Render(fmt.Sprintf("Recipes (%d)", len(recipes))))
			if len(recipes) == 0 {
				fmt.Fprintln(a.out, SubtitleStyle.Render("  No recipes yet. Try: shoplist seed FILE"))
				return nil
			}
			for _, r := range recipes {
				names := make([]string, len(r.Ingredients))
				for i, ing := range r.Ingredients {
					names[i] = ing.Name
				}
				fmt.Fprintf(a.out, "  • %s %s\n", r.Name, SubtitleStyle.Render("("+strings.Join(names, ", ")+")"))
			}
			return nil
		},
	}
}

func newCatalogueCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "catalogue",
		Aliases: []string{"catalog"},
		Short:   "Show the store sections and their articles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.catalogue().GetCatalogue(cmd.Context(), connect.NewRequest(&api.GetCatalogueRequest{}))
			if err != nil {
				return fmt.Errorf("failed to load catalogue: %w", err)
			}

			fmt.Fprintln(a.out, TitleStyle.Render("Catalogue"))
			for _, s := range resp.Msg.Sections {
				fmt.Fprintf(a.out, "  %s %s\n", SectionStyle.Render(s.Name), SubtitleStyle.Render(fmt.Sprintf("(%d)", len(s.Articles))))
				if len(s.Articles) > 0 {
					fmt.Fprintf(a.out, "    %s\n", strings.Join(s.Articles, ", "))
				}
			}
			return nil
		},
	}
}

func newAddArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-article SECTION NAME",
		Short: "Add an article to a catalogue section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.catalogue().AddArticle(cmd.Context(), connect.NewRequest(&api.AddArticleRequest{
				Section: args[0],
				Name:    args[1],
			}))
			if err != nil {
				return fmt.Errorf("failed to add article: %w", err)
			}

			if resp.Msg.Inserted {
				fmt.Fprintln(a.out, SuccessStyle.Render("✓ ")+fmt.Sprintf("Added %s to %s", args[1], args[0]))
			} else {
				fmt.Fprintln(a.out, SubtitleStyle.Render(fmt.Sprintf("%s is already listed in %s", args[1], args[0])))
			}
			return nil
		},
	}
}
