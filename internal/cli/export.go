package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelwright/wallplan/internal/engine"
	"github.com/panelwright/wallplan/internal/export"
	"github.com/panelwright/wallplan/internal/model"
	"github.com/panelwright/wallplan/internal/project"
)

var exportCmd = &cobra.Command{
	Use:   "export <project-file>",
	Short: "Export a planned project to PDF, CSV, XLSX, or QR labels",
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

		// Plan on the fly if the project has no stored result.
		result := p.Result
		if result == nil {
			planner := engine.NewPlanner(p.Settings)
			planner.Logger = logger()
			r := planner.Plan(p.Walls)
			result = &r
		}

		format, _ := cmd.Flags().GetString("format")
		format = strings.ToLower(format)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			base := strings.TrimSuffix(path, filepath.Ext(path))
			out = base + extensionFor(format)
		}

		switch format {
		case "pdf":
			err = export.ExportPDF(out, p.Walls, *result)
		case "csv":
			err = export.ExportCSV(out, *result)
		case "xlsx":
			err = export.ExportXLSX(out, *result)
		case "labels":
			err = export.ExportLabels(out, *result)
		default:
			return fmt.Errorf("unknown format %q (expected pdf, csv, xlsx, or labels)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, out)
		return nil
	},
}

var exportLeftoversCmd = &cobra.Command{
	Use:   "export-leftovers <output-file>",
	Short: "Export the persisted leftover inventory as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leftovers, err := project.LoadLeftovers(project.DefaultLeftoversPath())
		if err != nil {
			return fmt.Errorf("failed to load leftover inventory: %w", err)
		}
		result := model.PlanResult{Leftovers: leftovers}
		if err := export.ExportLeftoversCSV(args[0], result); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d leftovers to %s\n", len(leftovers), args[0])
		return nil
	},
}

// extensionFor maps an export format to its file extension.
func extensionFor(format string) string {
	switch format {
	case "csv":
		return ".csv"
	case "xlsx":
		return ".xlsx"
	case "labels":
		return "-labels.pdf"
	default:
		return ".pdf"
	}
}

func init() {
	exportCmd.Flags().StringP("format", "f", "pdf", "output format: pdf, csv, xlsx, or labels")
	exportCmd.Flags().String("out", "", "output file (default: project name with format extension)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportLeftoversCmd)
}
