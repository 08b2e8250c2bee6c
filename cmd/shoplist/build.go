package main

import (
	"fmt"

	"connectrpc.com/connect"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mmynk/shoplist/pkg/api"
)

const renderWidth = 80

// listFlags are the selection flags shared by build and notion.
type listFlags struct {
	recipes []string
	items   []string
	stock   []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.recipes, "recipe", "r", nil, "recipe to include (repeatable)")
	cmd.Flags().StringArrayVarP(&f.items, "item", "i", nil, "extra article as SECTION/NAME[=QTY] (repeatable)")
	cmd.Flags().StringArrayVarP(&f.stock, "stock", "s", nil, "owned article as SECTION/NAME=QTY[UNIT] (repeatable)")
}

func (f *listFlags) request() (*api.ListRequest, error) {
	req := &api.ListRequest{Recipes: f.recipes}
	for _, raw := range f.items {
		item, err := parseItem(raw)
		if err != nil {
			return nil, err
		}
		req.Items = append(req.Items, item)
	}
	for _, raw := range f.stock {
		item, err := parseStock(raw)
		if err != nil {
			return nil, err
		}
		req.Stock = append(req.Stock, item)
	}
	return req, nil
}

func newBuildCmd(a *app) *cobra.Command {
	var (
		flags listFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the shopping list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			resp, err := a.shopping().ExportDocument(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return fmt.Errorf("failed to build list: %w", err)
			}

			content := resp.Msg.Content
			if !plain {
				if content, err = renderMarkdown(content, renderWidth); err != nil {
					return err
				}
			}
			fmt.Fprint(a.out, content)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw Markdown instead of rendering it")
	return cmd
}

func newNotionCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "notion",
		Short: "Build the shopping list and send it to Notion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			resp, err := a.shopping().ExportNotion(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return fmt.Errorf("failed to export to Notion: %w", err)
			}

			fmt.Fprintln(a.out, SuccessStyle.Render("✓ ")+fmt.Sprintf("Notion page created (%d blocks)", resp.Msg.Blocks))
			fmt.Fprintln(a.out, "  "+resp.Msg.Url)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// renderMarkdown styles md for the terminal.
func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render list: %w", err)
	}
	return out, nil
}
