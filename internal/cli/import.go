package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelwright/wallplan/internal/importer"
	"github.com/panelwright/wallplan/internal/model"
	"github.com/panelwright/wallplan/internal/project"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import walls from a CSV, Excel, or DXF file into a project",
	Long: "Import reads wall segments from a CSV or Excel table (start_x, start_y,\n" +
		"end_x, end_y, and optional thickness, height, application columns) or from\n" +
		"the LINE and LWPOLYLINE entities of a DXF floor plan.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		defaults := importer.DefaultsFrom(cfg)
		if t, _ := cmd.Flags().GetFloat64("thickness"); t > 0 {
			defaults.Thickness = t
		}
		if h, _ := cmd.Flags().GetFloat64("height"); h > 0 {
			defaults.Height = h
		}
		if ceiling, _ := cmd.Flags().GetBool("ceiling"); ceiling {
			defaults.Application = model.ApplicationCeiling
		}

		var result importer.ImportResult
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".txt":
			result = importer.ImportCSV(path, defaults)
		case ".xlsx":
			result = importer.ImportExcel(path, defaults)
		case ".dxf":
			result = importer.ImportDXF(path, defaults)
		default:
			return fmt.Errorf("unsupported file type %q (expected .csv, .xlsx, or .dxf)", filepath.Ext(path))
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e)
		}
		if len(result.Walls) == 0 {
			return fmt.Errorf("no walls imported from %s", path)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			base := strings.TrimSuffix(path, filepath.Ext(path))
			out = base + project.FileExtension
		}

		p := model.NewProject()
		p.Walls = result.Walls
		cfg.ApplyToSettings(&p.Settings)

		if err := project.SaveProject(out, p); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d walls into %s\n", len(result.Walls), out)
		return nil
	},
}

func init() {
	importCmd.Flags().String("out", "", "output project file (default: input name with "+project.FileExtension+")")
	importCmd.Flags().Float64("thickness", 0, "wall thickness in mm for files without a thickness column")
	importCmd.Flags().Float64("height", 0, "wall height in mm for files without a height column")
	importCmd.Flags().Bool("ceiling", false, "import segments as ceiling surfaces")
	rootCmd.AddCommand(importCmd)
}
