package cli

import (
	"fmt"

	"github.com/attune-cli/attune/internal/catalog"
	"github.com/attune-cli/attune/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the intervention template catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(app),
		newCatalogShowCmd(app),
		newCatalogValidateCmd(app),
	)
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog templates in selection order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Print(formatter.FormatTemplateList(app.Catalog.Templates()))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Show one template in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := app.Catalog.Template(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			cmd.Print(formatter.FormatTemplate(t))
			return nil
		},
	}
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog directory without loading it into the app",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := catalog.Load(dir); err != nil {
				return err
			}
			if dir == "" {
				cmd.Println(formatter.StyleGreen.Render("Built-in catalog is valid."))
				return nil
			}
			cmd.Println(formatter.StyleGreen.Render(fmt.Sprintf("Catalog %q is valid.", dir)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Catalog directory (defaults to built-ins only)")
	return cmd
}
