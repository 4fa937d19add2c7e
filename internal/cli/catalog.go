package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/panelwright/wallplan/internal/project"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the panel products available for planning",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := project.LoadCatalog(project.DefaultCatalogPath())
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tWIDTH\tTHICKNESS\tMATERIAL\tAPPLICATION")
		for _, p := range cat.Products {
			fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\t%s\t%s\n",
				p.ID, p.Name, p.Width, p.Thickness, p.Material, p.Application)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
