package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/panelwright/wallplan/internal/engine"
	"github.com/panelwright/wallplan/internal/model"
	"github.com/panelwright/wallplan/internal/project"
)

var planCmd = &cobra.Command{
	Use:   "plan <project-file>",
	Short: "Cut all walls in a project and print the panel manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		p, err := project.LoadProject(path)
		if err != nil {
			return err
		}
		if len(p.Walls) == 0 {
			return fmt.Errorf("project %q has no walls", p.Name)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		planner := engine.NewPlanner(p.Settings)
		planner.Logger = logger()

		seed, _ := cmd.Flags().GetBool("seed-leftovers")
		if seed {
			leftovers, err := project.LoadLeftovers(project.DefaultLeftoversPath())
			if err != nil {
				return fmt.Errorf("failed to load leftover inventory: %w", err)
			}
			planner.Seed = leftovers
		}

		var result model.PlanResult
		if len(p.Intersections) > 0 {
			result = planner.PlanWithIntersections(p.Walls, p.Intersections)
		} else {
			result = planner.Plan(p.Walls)
		}

		printResult(cmd.OutOrStdout(), result)

		if save, _ := cmd.Flags().GetBool("save"); save {
			p.Result = &result
			if err := project.SaveProject(path, p); err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nResult saved to %s\n", path)
		}

		if cfg.KeepLeftovers {
			if err := project.SaveLeftovers(project.DefaultLeftoversPath(), result.Leftovers); err != nil {
				return fmt.Errorf("failed to persist leftover inventory: %w", err)
			}
		}

		if len(result.WallErrors) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("save", false, "write the plan result back into the project file")
	planCmd.Flags().Bool("seed-leftovers", false, "start from the persisted leftover inventory")
	rootCmd.AddCommand(planCmd)
}

// printResult writes the manifest, analysis counters, and any wall errors
// as aligned text tables.
func printResult(out io.Writer, result model.PlanResult) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WALL\tTYPE\tWIDTH\tLENGTH\tJOINT\tNOTE")
	for _, rec := range result.Manifest {
		p := rec.Panel
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\t%s\t%s\n",
			rec.WallID, p.Kind, p.EffectiveWidth(), rec.Length, p.JointType, p.Note)
	}
	tw.Flush()

	a := result.Analysis
	fmt.Fprintf(out, "\nFull panels:        %d\n", a.FullPanels)
	fmt.Fprintf(out, "Cut panels:         %d\n", a.CutPanels)
	fmt.Fprintf(out, "Leftover panels:    %d\n", a.LeftoverPanels)
	fmt.Fprintf(out, "Opened for cutting: %d\n", a.FullPanelsUsedForCutting)
	fmt.Fprintf(out, "Total panels:       %d\n", a.TotalPanels)
	fmt.Fprintf(out, "Leftovers in pool:  %d\n", len(result.Leftovers))

	if len(result.WallErrors) > 0 {
		fmt.Fprintln(out, "\nRejected walls:")
		for _, we := range result.WallErrors {
			fmt.Fprintf(out, "  %s: %s\n", we.WallID, we.Message)
		}
	}
}
