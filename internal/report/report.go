// =============================================================================
// xml-suite - Validation Report Writer
// =============================================================================
//
// This module writes validation results as an XLSX workbook, the artifact
// format the filter maintainers actually circulate. The workbook has two
// sheets:
//
//   Summary - run metadata and error/warning counts
//   Problems - one row per validation problem, with file, path, field,
//              rule, value, and message columns
//
// =============================================================================

package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lootworks/xml-suite/internal/types"
)

// Sheet names in the generated workbook.
const (
	summarySheet  = "Summary"
	problemsSheet = "Problems"
)

// problemHeaders are the column headers of the Problems sheet.
var problemHeaders = []string{"Severity", "File", "Path", "Field", "Rule", "Value", "Message"}

// WriteXLSX writes a validation result to an XLSX workbook at path.
func WriteXLSX(result *types.ValidationResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if err := writeSummary(f, result); err != nil {
		return err
	}
	if err := writeProblems(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report to %s: %w", path, err)
	}

	return nil
}

// writeSummary fills the Summary sheet.
func writeSummary(f *excelize.File, result *types.ValidationResult) error {
	rows := [][]interface{}{
		{"xml-suite validation report"},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
		{},
		{"Files validated", result.FilesValidated},
		{"Errors", result.ErrorCount},
		{"Warnings", result.WarningCount},
		{"Valid", result.IsValid},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
	}

	return nil
}

// writeProblems fills the Problems sheet, one row per problem.
func writeProblems(f *excelize.File, result *types.ValidationResult) error {
	if _, err := f.NewSheet(problemsSheet); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	header := make([]interface{}, len(problemHeaders))
	for i, h := range problemHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(problemsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	for i, problem := range result.Errors {
		row := []interface{}{
			problem.Severity,
			problem.File,
			problem.Path,
			problem.Field,
			problem.Rule,
			problem.Value,
			problem.Message,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if err := f.SetSheetRow(problemsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
	}

	return nil
}
