// Package exporter persists comparison results.
//
// ExcelWriter writes the full result mapping to one .xlsx workbook with one
// sheet per compare column; sheet names are sanitized and truncated to the
// 31-character limit of the format. CSVWriter writes a single result to a
// CSV file, optionally prefixed with a UTF-8 BOM for Excel compatibility.
//
// Both writers use the same header layout:
//
//	key, <column>_before, <column>_after, absolute_change, pct_change
package exporter
