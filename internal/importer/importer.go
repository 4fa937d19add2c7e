// Package importer provides CSV, Excel, and DXF import functionality for
// wall layouts. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/panelwright/wallplan/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Walls    []model.Wall
	Errors   []string
	Warnings []string
}

// Defaults supplies values for columns the imported file does not carry.
type Defaults struct {
	Thickness   float64
	Height      float64
	Application model.ApplicationType
}

// DefaultsFrom builds import defaults from the application config.
func DefaultsFrom(cfg model.AppConfig) Defaults {
	return Defaults{
		Thickness:   cfg.DefaultThickness,
		Height:      cfg.DefaultWallHeight,
		Application: model.ApplicationWall,
	}
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	StartX      int
	StartY      int
	EndX        int
	EndY        int
	Thickness   int
	Height      int
	Application int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"start_x":     {"start_x", "startx", "x1", "sx", "from_x", "start x"},
	"start_y":     {"start_y", "starty", "y1", "sy", "from_y", "start y"},
	"end_x":       {"end_x", "endx", "x2", "ex", "to_x", "end x"},
	"end_y":       {"end_y", "endy", "y2", "ey", "to_y", "end y"},
	"thickness":   {"thickness", "thick", "t", "wall_thickness", "width"},
	"height":      {"height", "h", "wall_height", "length"},
	"application": {"application", "app", "type", "kind", "surface"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		StartX:      -1,
		StartY:      -1,
		EndX:        -1,
		EndY:        -1,
		Thickness:   -1,
		Height:      -1,
		Application: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "start_x":
						if mapping.StartX == -1 {
							mapping.StartX = i
						}
					case "start_y":
						if mapping.StartY == -1 {
							mapping.StartY = i
						}
					case "end_x":
						if mapping.EndX == -1 {
							mapping.EndX = i
						}
					case "end_y":
						if mapping.EndY == -1 {
							mapping.EndY = i
						}
					case "thickness":
						if mapping.Thickness == -1 {
							mapping.Thickness = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "application":
						if mapping.Application == -1 {
							mapping.Application = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// StartX, StartY, EndX, EndY, Thickness, Height, Application
		return ColumnMapping{
			StartX:      0,
			StartY:      1,
			EndX:        2,
			EndY:        3,
			Thickness:   4,
			Height:      5,
			Application: 6,
		}, false
	}

	return mapping, true
}

// parseApplication converts an application string to a model.ApplicationType.
// It returns the value and a boolean indicating whether the string was recognized.
func parseApplication(s string) (model.ApplicationType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "w", "":
		return model.ApplicationWall, true
	case "ceiling", "c":
		return model.ApplicationCeiling, true
	default:
		return model.ApplicationWall, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCoord reads a required numeric cell.
func parseCoord(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	return v, ""
}

// parseRow extracts a Wall from a row using the given column mapping.
// Returns the wall, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, defaults Defaults, rowLabel string) (model.Wall, string, string) {
	sx, errMsg := parseCoord(row, mapping.StartX, "start_x", rowLabel)
	if errMsg != "" {
		return model.Wall{}, errMsg, ""
	}
	sy, errMsg := parseCoord(row, mapping.StartY, "start_y", rowLabel)
	if errMsg != "" {
		return model.Wall{}, errMsg, ""
	}
	ex, errMsg := parseCoord(row, mapping.EndX, "end_x", rowLabel)
	if errMsg != "" {
		return model.Wall{}, errMsg, ""
	}
	ey, errMsg := parseCoord(row, mapping.EndY, "end_y", rowLabel)
	if errMsg != "" {
		return model.Wall{}, errMsg, ""
	}

	thickness := defaults.Thickness
	if s := getCell(row, mapping.Thickness); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Wall{}, fmt.Sprintf("%s: Invalid thickness '%s'", rowLabel, s), ""
		}
		thickness = v
	}

	height := defaults.Height
	if s := getCell(row, mapping.Height); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.Wall{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, s), ""
		}
		height = v
	}

	w := model.NewWall(model.Point2D{X: sx, Y: sy}, model.Point2D{X: ex, Y: ey}, thickness, height)
	w.Application = defaults.Application

	// Optional application column
	var warning string
	if s := getCell(row, mapping.Application); s != "" {
		app, ok := parseApplication(s)
		if ok {
			w.Application = app
		} else {
			warning = fmt.Sprintf("%s: Unknown application '%s', defaulting to wall", rowLabel, s)
		}
	}

	if err := w.Validate(); err != nil {
		return model.Wall{}, fmt.Sprintf("%s: %v", rowLabel, err), ""
	}

	return w, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports walls from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string, defaults Defaults) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", defaults, result.Warnings)
	return result
}

// ImportCSVFromReader imports walls from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune, defaults Defaults) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", defaults, nil)
}

// ImportExcel imports walls from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string, defaults Defaults) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", defaults, nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into walls.
func importFromRows(rows [][]string, rowPrefix string, defaults Defaults, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.StartX == -1 {
			missing = append(missing, "start_x")
		}
		if mapping.StartY == -1 {
			missing = append(missing, "start_y")
		}
		if mapping.EndX == -1 {
			missing = append(missing, "end_x")
		}
		if mapping.EndY == -1 {
			missing = append(missing, "end_y")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if the first row is numeric (positional mapping)
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
				// First column is not numeric - might be an unrecognized header.
				// Skip it as a header but use positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		wall, errMsg, warning := parseRow(row, mapping, defaults, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Walls = append(result.Walls, wall)
	}

	return result
}
