package verification

import (
	"fmt"
	"strings"

	"data-verifier/core/reconcile"

	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the single sheet of every exported workbook.
	SheetName = "Verification Result"

	// ResultColumnName is the trailing status column appended after the
	// source columns.
	ResultColumnName = "Verification_Result"

	mismatchFillColor = "FFFF00"
	missingFillColor  = "FFCCCC"

	// maxReportRows caps exported result rows so the sheet stays within
	// the XLSX row limit after the header.
	maxReportRows = excelize.TotalRows - 1
)

// BuildReportWorkbook renders a run into a highlighted workbook. The sheet
// carries the source columns plus a trailing status column; mismatched
// cells are filled yellow, rows missing from either side are filled light
// red. Rows present only in the target are rebuilt from the target dataset
// through the column mapping and appended after the source-ordered results.
func BuildReportWorkbook(source, target reconcile.Dataset, mapping reconcile.Mapping, report *reconcile.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name result sheet: %w", err)
	}

	headers := make([]any, 0, len(source.Columns)+1)
	for _, c := range source.Columns {
		headers = append(headers, c)
	}
	headers = append(headers, ResultColumnName)
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	mismatchStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{mismatchFillColor}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mismatch style: %w", err)
	}
	missingStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{missingFillColor}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create missing style: %w", err)
	}

	// 1-based sheet column per source column name, for targeted mismatch
	// highlighting.
	colOf := make(map[string]int, len(source.Columns))
	for i, c := range source.Columns {
		colOf[c] = i + 1
	}

	results := report.Results
	if len(results) > maxReportRows {
		results = results[:maxReportRows]
	}

	width := len(source.Columns) + 1
	for i, r := range results {
		rowNum := i + 2
		values := make([]any, width)

		switch r.Status {
		case reconcile.StatusMissingInSource:
			// The row has no source counterpart; project the target row
			// back into source columns through the mapping.
			targetRow := target.Rows[r.TargetIndex]
			for _, p := range mapping.Pairs {
				if col, ok := colOf[p.Source]; ok {
					values[col-1] = targetRow[p.Target]
				}
			}
		default:
			sourceRow := source.Rows[r.SourceIndex]
			for j, c := range source.Columns {
				values[j] = sourceRow[c]
			}
		}
		values[width-1] = resultLabel(r)

		start, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, start, &values); err != nil {
			return nil, fmt.Errorf("failed to write result row %d: %w", rowNum, err)
		}

		switch r.Status {
		case reconcile.StatusMismatch:
			for _, name := range r.MismatchedColumns() {
				col, ok := colOf[name]
				if !ok {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(col, rowNum)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(SheetName, cell, cell, mismatchStyle); err != nil {
					return nil, fmt.Errorf("failed to style cell %s: %w", cell, err)
				}
			}
		case reconcile.StatusMissingInTarget, reconcile.StatusMissingInSource:
			end, err := excelize.CoordinatesToCellName(width, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(SheetName, start, end, missingStyle); err != nil {
				return nil, fmt.Errorf("failed to style row %d: %w", rowNum, err)
			}
		}
	}

	return f, nil
}

// resultLabel renders the status cell text. Mismatches name the offending
// columns so the row is actionable without scanning for highlights.
func resultLabel(r reconcile.RowResult) string {
	if r.Status == reconcile.StatusMismatch {
		return "Mismatch: " + strings.Join(r.MismatchedColumns(), ", ")
	}
	return string(r.Status)
}
