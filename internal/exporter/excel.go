package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"exceldiffy/internal/comparator"
	"exceldiffy/internal/dataset"
)

// maxSheetNameLen is the sheet name limit imposed by the xlsx format.
const maxSheetNameLen = 31

// resultHeaders builds the fixed five-column header row for a compare column.
func resultHeaders(column string) []string {
	return []string{
		"key",
		column + "_before",
		column + "_after",
		"absolute_change",
		"pct_change",
	}
}

// ExcelWriter persists comparison results as one workbook with one sheet per
// compare column.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates an Excel writer. A nil logger falls back to
// slog.Default().
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// Write saves the result mapping to an .xlsx file at path, one sheet per
// compare column in sorted column order. Numeric cells are written as
// numbers and undefined changes as blank cells. With no results no file is
// created.
func (w *ExcelWriter) Write(results map[string]*comparator.Result, path string) error {
	if len(results) == 0 {
		w.logger.Warn("no comparison results to export", slog.String("path", path))
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	columns := make([]string, 0, len(results))
	for column := range results {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	f := excelize.NewFile()
	defer f.Close()

	for i, column := range columns {
		sheet := sheetName(column)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("failed to rename sheet %q: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
			}
		}
		if err := writeResultSheet(f, sheet, results[column]); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("exported comparison results",
		slog.String("path", path),
		slog.Int("sheets", len(columns)))
	return nil
}

func writeResultSheet(f *excelize.File, sheet string, res *comparator.Result) error {
	headers := resultHeaders(res.Column)
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i, rec := range res.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			rec.Key,
			cellValue(rec.Before),
			cellValue(rec.After),
			changeValue(rec.AbsoluteChange),
			changeValue(rec.PctChange),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	// Presentation only: widen the columns so keys and deltas are readable.
	return f.SetColWidth(sheet, "A", "E", 18)
}

func cellValue(v dataset.Value) interface{} {
	if f, ok := v.Float(); ok {
		return f
	}
	if v.IsMissing() {
		return nil
	}
	return v.String()
}

func changeValue(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

// sheetName makes a compare-column name safe for use as an xlsx sheet name:
// characters the format forbids become underscores and the result is
// truncated to 31 characters.
func sheetName(column string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, column)
	if name == "" {
		name = "result"
	}
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen]
	}
	return name
}
