package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"exceldiffy/internal/comparator"
)

// CSVWriter exports a single comparison result as a CSV file.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel recognizes the encoding.
	BOMPrefix bool
}

// Write saves one result to a CSV file with the standard five-column header.
func (w *CSVWriter) Write(res *comparator.Result, path string, options WriteOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(resultHeaders(res.Column)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, rec := range res.Records {
		record := []string{
			rec.Key,
			rec.Before.String(),
			rec.After.String(),
			formatChange(rec.AbsoluteChange),
			formatChange(rec.PctChange),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	w.logger.Info("exported result to csv",
		slog.String("path", path),
		slog.String("column", res.Column),
		slog.Int("records", len(res.Records)))
	return nil
}
