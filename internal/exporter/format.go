package exporter

import "strconv"

// formatChange formats a change value for CSV output; nil renders empty.
func formatChange(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
