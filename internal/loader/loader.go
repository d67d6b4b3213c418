// Package loader reads tabular files into datasets. It supports Excel
// workbooks via excelize and plain CSV files; the first non-empty row of a
// sheet is taken as the header.
package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"exceldiffy/internal/dataset"
)

// ReadWorkbookSheet loads one sheet of an .xlsx workbook into a dataset.
// An empty sheet name selects the first sheet in the workbook.
func ReadWorkbookSheet(path, sheet string) (*dataset.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	ds, err := fromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	slog.Debug("loaded workbook sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", ds.Len()),
		slog.Int("columns", len(ds.Columns())))
	return ds, nil
}

// ReadCSV loads a CSV file into a dataset. The first record is the header.
func ReadCSV(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	ds, err := fromRows(records)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", path, err)
	}

	slog.Debug("loaded csv file",
		slog.String("path", path),
		slog.Int("rows", ds.Len()),
		slog.Int("columns", len(ds.Columns())))
	return ds, nil
}

// fromRows turns raw string rows into a dataset. The first row containing a
// non-empty cell becomes the header; columns with empty header cells are
// skipped. Data rows shorter than the header read as Missing in the tail.
func fromRows(rows [][]string) (*dataset.Dataset, error) {
	headerIdx := -1
	for i, row := range rows {
		if hasContent(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row found")
	}

	header := rows[headerIdx]
	// columnAt maps cell position to column name; empty names are skipped.
	columnAt := make(map[int]string, len(header))
	var columns []string
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		columnAt[i] = name
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("header row has no column names")
	}

	ds := dataset.New(columns)
	for _, raw := range rows[headerIdx+1:] {
		if !hasContent(raw) {
			continue
		}
		row := make(dataset.Row, len(columns))
		for i, name := range columnAt {
			if i < len(raw) {
				row[name] = ParseCell(raw[i])
			} else {
				row[name] = dataset.Missing()
			}
		}
		ds.Append(row)
	}
	return ds, nil
}

// ParseCell converts one raw cell into a Value: empty cells are Missing,
// cells that parse as a float (after stripping thousands separators) are
// Number, everything else is Text.
func ParseCell(raw string) dataset.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return dataset.Missing()
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return dataset.Number(f)
	}
	return dataset.Text(s)
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
