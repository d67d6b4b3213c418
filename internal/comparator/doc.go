// Package comparator implements the row comparison between two datasets.
//
// Rows are matched across the before and after datasets using a composite
// key formed from the configured key columns. For every compare column the
// comparator emits an ordered list of records holding the before value, the
// after value, the absolute change (after - before, only when both values
// are numeric) and the percentage change as a ratio (absolute change divided
// by before, only when before is numeric and nonzero).
//
// Policies worth knowing:
//
//   - Duplicate composite keys within one dataset resolve to the last row
//     with that key; earlier rows are dropped from the index.
//   - The result covers the union of keys from both datasets. A key absent
//     from one side reads as Missing on that side.
//   - With ShowAll unset, only value differences between matched rows are
//     reported: records whose before and after values are exactly equal are
//     suppressed, as are keys present in only one dataset.
//   - TopN keeps the records with the largest absolute change magnitude,
//     ties resolved in favor of the earlier key.
//
// Basic usage:
//
//	cmp := comparator.New(logger)
//	results, err := cmp.Compare(before, after, comparator.Options{
//	    KeyColumns:     []string{"id"},
//	    CompareColumns: []string{"value"},
//	})
package comparator
