package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/internal/storage/seed"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
)

func newSeedCmd(a *app, dbDefault string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed FILE",
		Short: "Load a YAML catalogue and starter recipes into the database",
		Long: `Seed writes directly to the SQLite database, so it can run before the
server starts. The catalogue is only written when it is empty, and recipes
that already exist are left untouched, so seeding twice changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(args[0])
			if err != nil {
				return err
			}

			store, err := sqlite.New(a.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := seed.Apply(cmd.Context(), store, f)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, SuccessStyle.Render("✓ ")+fmt.Sprintf("Seeded %s", a.dbPath))
			if res.CatalogueSeeded {
				fmt.Fprintln(a.out, "  catalogue written")
			}
			fmt.Fprintf(a.out, "  %d recipes created, %d articles added\n", res.RecipesCreated, res.ArticlesInserted)
			return nil
		},
	}
	cmd.Flags().StringVar(&a.dbPath, "db", dbDefault, "SQLite database path (env DB_PATH)")
	return cmd
}
