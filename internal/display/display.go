// Package display renders comparison results as console tables.
package display

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"exceldiffy/internal/comparator"
)

// RenderResult prints one result as a table. A positive limit caps the
// number of printed records; the records themselves are printed in result
// order.
func RenderResult(w io.Writer, res *comparator.Result, limit int) {
	fmt.Fprintf(w, "\n=== Changes in %q ===\n", res.Column)
	fmt.Fprintf(w, "Total rows with changes: %d\n", len(res.Records))

	records := res.Records
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"key",
		res.Column + "_before",
		res.Column + "_after",
		"absolute_change",
		"pct_change",
	})
	for _, rec := range records {
		table.Append([]string{
			rec.Key,
			rec.Before.String(),
			rec.After.String(),
			formatChange(rec.AbsoluteChange),
			formatChange(rec.PctChange),
		})
	}
	table.Render()
}

// RenderResults prints every result in sorted column order.
func RenderResults(w io.Writer, results map[string]*comparator.Result, limit int) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No comparison results to display.")
		return
	}
	columns := make([]string, 0, len(results))
	for column := range results {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		RenderResult(w, results[column], limit)
	}
}

func formatChange(f *float64) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g", *f)
}
