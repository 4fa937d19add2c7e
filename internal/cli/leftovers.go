package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/panelwright/wallplan/internal/model"
	"github.com/panelwright/wallplan/internal/project"
)

var leftoversCmd = &cobra.Command{
	Use:   "leftovers",
	Short: "Manage the persisted leftover inventory",
}

var leftoversShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the leftover pieces available for future runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		leftovers, err := project.LoadLeftovers(project.DefaultLeftoversPath())
		if err != nil {
			return fmt.Errorf("failed to load leftover inventory: %w", err)
		}
		if len(leftovers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No leftovers in inventory.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTHICKNESS\tLONGER\tSHORTER\tLEFT EDGE\tRIGHT EDGE")
		for _, l := range leftovers {
			fmt.Fprintf(tw, "%s\t%.0f\t%.0f\t%.0f\t%s\t%s\n",
				l.ID, l.WallThickness, l.LongerFace, l.ShorterFace, l.LeftEdge, l.RightEdge)
		}
		return tw.Flush()
	},
}

var leftoversClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the leftover inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := project.SaveLeftovers(project.DefaultLeftoversPath(), []model.Leftover{}); err != nil {
			return fmt.Errorf("failed to clear leftover inventory: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Leftover inventory cleared.")
		return nil
	},
}

var leftoversAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a leftover piece to the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		thickness, _ := cmd.Flags().GetFloat64("thickness")
		longer, _ := cmd.Flags().GetFloat64("longer")
		shorter, _ := cmd.Flags().GetFloat64("shorter")
		mitred, _ := cmd.Flags().GetBool("mitred")

		if thickness <= 0 || longer <= 0 {
			return fmt.Errorf("thickness and longer face must be positive")
		}
		if shorter <= 0 {
			shorter = longer
		}
		leftEdge := model.EdgeStraight
		if mitred {
			leftEdge = model.EdgeCut45
		}

		leftovers, err := project.LoadLeftovers(project.DefaultLeftoversPath())
		if err != nil {
			return fmt.Errorf("failed to load leftover inventory: %w", err)
		}
		l := model.NewLeftover(thickness, longer, shorter, leftEdge, model.EdgeStraight)
		leftovers = append(leftovers, l)
		if err := project.SaveLeftovers(project.DefaultLeftoversPath(), leftovers); err != nil {
			return fmt.Errorf("failed to save leftover inventory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added leftover %s (%.0f/%.0f mm, thickness %.0f)\n",
			l.ID, l.LongerFace, l.ShorterFace, l.WallThickness)
		return nil
	},
}

var leftoversImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge leftovers from a JSON file into the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := project.LoadLeftovers(project.DefaultLeftoversPath())
		if err != nil {
			return fmt.Errorf("failed to load leftover inventory: %w", err)
		}
		merged, err := project.ImportLeftovers(args[0], existing)
		if err != nil {
			return fmt.Errorf("failed to import leftovers: %w", err)
		}
		if err := project.SaveLeftovers(project.DefaultLeftoversPath(), merged); err != nil {
			return fmt.Errorf("failed to save leftover inventory: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Inventory now holds %d leftovers.\n", len(merged))
		return nil
	},
}

func init() {
	leftoversAddCmd.Flags().Float64("thickness", 0, "wall thickness in mm")
	leftoversAddCmd.Flags().Float64("longer", 0, "longer face width in mm")
	leftoversAddCmd.Flags().Float64("shorter", 0, "shorter face width in mm (default: same as longer)")
	leftoversAddCmd.Flags().Bool("mitred", false, "left edge carries a 45-degree bevel")

	leftoversCmd.AddCommand(leftoversShowCmd)
	leftoversCmd.AddCommand(leftoversClearCmd)
	leftoversCmd.AddCommand(leftoversAddCmd)
	leftoversCmd.AddCommand(leftoversImportCmd)
	rootCmd.AddCommand(leftoversCmd)
}
