package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/internal/config"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/logging"
)

const defaultServerURL = "http://localhost:8080"

// app carries what the commands share: where output goes and how to reach
// the server.
type app struct {
	out        io.Writer
	serverURL  string
	dbPath     string
	httpClient *http.Client
	verbose    bool
}

func (a *app) recipes() api.RecipeServiceClient {
	return api.NewRecipeServiceClient(a.httpClient, a.serverURL)
}

func (a *app) catalogue() api.CatalogueServiceClient {
	return api.NewCatalogueServiceClient(a.httpClient, a.serverURL)
}

func (a *app) shopping() api.ShoppingServiceClient {
	return api.NewShoppingServiceClient(a.httpClient, a.serverURL)
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, httpClient: http.DefaultClient}

	dbDefault := "./data/shoplist.db"
	if cfg, err := config.Load(); err == nil {
		dbDefault = cfg.DBPath
	}
	serverDefault := defaultServerURL
	if v := os.Getenv("SHOPLIST_URL"); v != "" {
		serverDefault = v
	}

	root := &cobra.Command{
		Use:   "shoplist",
		Short: "Plan the week's meals and build the shopping list",
		Long: TitleStyle.Render("shoplist") + SubtitleStyle.Render(" - weekly shopping lists from recipes") + `

Recipes and the store catalogue live on the shoplist server. Pick recipes,
add extra articles, subtract what is already at home, and get a list
ordered the way you walk through the store.

` + SubtitleStyle.Render("Examples:") + `
  shoplist recipes                                 List stored recipes
  shoplist recipe save Soup -i Vegetables/Leeks=3  Create or edit a recipe
  shoplist build --recipe Soup --item Bakery/Bread Build a list
  shoplist notion --recipe Soup                    Send the list to Notion`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.LevelFromEnv()
			if a.verbose {
				level = slog.LevelDebug
			} else if level < slog.LevelWarn {
				level = slog.LevelWarn
			}
			logging.Configure(logging.Options{Level: level, Output: cmd.ErrOrStderr()})
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.serverURL, "server", serverDefault, "shoplist server URL (env SHOPLIST_URL)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRecipesCmd(a),
		newRecipeCmd(a),
		newCatalogueCmd(a),
		newAddArticleCmd(a),
		newBuildCmd(a),
		newNotionCmd(a),
		newSeedCmd(a, dbDefault),
	)
	return root
}
