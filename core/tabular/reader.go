package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"data-verifier/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ReadFile parses an extract based on the file extension. XLSX files are
// read from their first sheet; .csv and .txt files are parsed as
// comma-separated text, which matches how the operational exports are
// produced.
func ReadFile(filename string, r io.Reader) (reconcile.Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".csv", ".txt":
		return ReadCSV(r)
	default:
		return reconcile.Dataset{}, fmt.Errorf("unsupported file type %q (expected .xlsx, .csv or .txt)", filepath.Ext(filename))
	}
}

// ReadCSV parses comma-separated text with the first row as header.
func ReadCSV(r io.Reader) (reconcile.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // data rows may be ragged
	reader.TrimLeadingSpace = false

	records, err := reader.ReadAll()
	if err != nil {
		return reconcile.Dataset{}, fmt.Errorf("failed to parse csv: %w", err)
	}

	return fromRecords(records)
}

// ReadXLSX parses the first sheet of an XLSX workbook with the first row as
// header. Cell values arrive as excelize's formatted strings; the engine's
// normalizer handles everything from there.
func ReadXLSX(r io.Reader) (reconcile.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return reconcile.Dataset{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return reconcile.Dataset{}, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return reconcile.Dataset{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return fromRecords(records)
}

// fromRecords builds a dataset from raw records, consuming the header row.
func fromRecords(records [][]string) (reconcile.Dataset, error) {
	if len(records) == 0 {
		return reconcile.Dataset{}, fmt.Errorf("file is empty: no header row")
	}

	columns, err := headerColumns(records[0])
	if err != nil {
		return reconcile.Dataset{}, err
	}

	rows := make([]reconcile.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(reconcile.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return reconcile.Dataset{Columns: columns, Rows: rows}, nil
}

func headerColumns(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))

	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("header column %d is blank", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("header column %q appears more than once", name)
		}
		seen[name] = true
		columns[i] = name
	}

	return columns, nil
}
