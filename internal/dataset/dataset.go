package dataset

import "strings"

// Row maps column names to cell values. Columns absent from the map read as
// Missing; access should go through Value rather than indexing the map.
type Row map[string]Value

// Value returns the cell for the given column, Missing when the column is
// not present in the row.
func (r Row) Value(column string) Value {
	if v, ok := r[column]; ok {
		return v
	}
	return Missing()
}

// CompositeKey joins the row's values for the given key columns with sep,
// in the order the columns are listed. Missing components render empty.
func (r Row) CompositeKey(keyColumns []string, sep string) string {
	parts := make([]string, len(keyColumns))
	for i, col := range keyColumns {
		parts[i] = r.Value(col).String()
	}
	return strings.Join(parts, sep)
}

// Dataset is an ordered sequence of rows with a declared column list.
// Rows need not be unique and row order is preserved.
type Dataset struct {
	columns []string
	rows    []Row
}

// New creates an empty dataset with the given column list
func New(columns []string) *Dataset {
	return &Dataset{columns: append([]string(nil), columns...)}
}

// Append adds a row to the end of the dataset
func (d *Dataset) Append(row Row) {
	d.rows = append(d.rows, row)
}

// Columns returns the declared column names in order
func (d *Dataset) Columns() []string {
	return d.columns
}

// HasColumn reports whether the dataset declares the named column
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.columns {
		if col == name {
			return true
		}
	}
	return false
}

// Rows returns the rows in insertion order
func (d *Dataset) Rows() []Row {
	return d.rows
}

// Len returns the number of rows
func (d *Dataset) Len() int {
	return len(d.rows)
}
