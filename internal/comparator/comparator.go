package comparator

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/go-playground/validator/v10"

	"exceldiffy/internal/dataset"
)

// Comparator matches rows between two datasets by composite key and computes
// per-column before/after deltas.
type Comparator struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// New creates a comparator. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Comparator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Comparator{
		logger:   logger,
		validate: validator.New(),
	}
}

// Compare diffs the compare columns of two datasets and returns one Result
// per compare column, keyed by column name.
//
// Rows are matched on the composite key built from Options.KeyColumns. When
// a key occurs more than once within one dataset the last row wins; earlier
// rows are discarded from the index. Keys are visited in a deterministic
// order: every key of before in original row order, then any key of after
// not already seen. A key present in only one dataset is reported only when
// Options.ShowAll is set; its value on the absent side reads as Missing.
//
// A compare column absent from one dataset is tolerated; its values read as
// Missing on that side. A key or compare column absent from both datasets is
// a ConfigurationError.
func (c *Comparator) Compare(before, after *dataset.Dataset, opts Options) (map[string]*Result, error) {
	if err := c.validateOptions(opts); err != nil {
		return nil, err
	}
	if err := checkColumns(before, after, opts); err != nil {
		return nil, err
	}

	sep := opts.separator()
	beforeIdx := buildIndex(before, opts.KeyColumns, sep)
	afterIdx := buildIndex(after, opts.KeyColumns, sep)

	if n := before.Len() - len(beforeIdx.rows); n > 0 {
		c.logger.Warn("duplicate composite keys in before dataset, keeping last occurrence",
			slog.Int("duplicates", n))
	}
	if n := after.Len() - len(afterIdx.rows); n > 0 {
		c.logger.Warn("duplicate composite keys in after dataset, keeping last occurrence",
			slog.Int("duplicates", n))
	}

	keys := unionKeys(beforeIdx, afterIdx)
	c.logger.Debug("built key union",
		slog.Int("before_keys", len(beforeIdx.order)),
		slog.Int("after_keys", len(afterIdx.order)),
		slog.Int("union_keys", len(keys)))

	results := make(map[string]*Result, len(opts.CompareColumns))
	for _, column := range opts.CompareColumns {
		res := c.compareColumn(column, keys, beforeIdx, afterIdx, opts)
		results[column] = res
		c.logger.Debug("compared column",
			slog.String("column", column),
			slog.Int("records", len(res.Records)))
	}
	return results, nil
}

func (c *Comparator) validateOptions(opts Options) error {
	err := c.validate.Struct(opts)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigurationError{
			Field:  fe.Field(),
			Reason: fmt.Sprintf("failed %q validation", fe.Tag()),
		}
	}
	return err
}

// checkColumns rejects columns that neither dataset declares. A column
// present in only one dataset passes; lookups on the other side yield Missing.
func checkColumns(before, after *dataset.Dataset, opts Options) error {
	for _, col := range opts.KeyColumns {
		if !before.HasColumn(col) && !after.HasColumn(col) {
			return &ConfigurationError{
				Field:  "KeyColumns",
				Reason: fmt.Sprintf("column %q not found in either dataset", col),
			}
		}
	}
	for _, col := range opts.CompareColumns {
		if !before.HasColumn(col) && !after.HasColumn(col) {
			return &ConfigurationError{
				Field:  "CompareColumns",
				Reason: fmt.Sprintf("column %q not found in either dataset", col),
			}
		}
	}
	return nil
}

// keyIndex maps composite keys to rows, remembering first-occurrence order.
// Duplicate keys overwrite the row but keep their original position.
type keyIndex struct {
	order []string
	rows  map[string]dataset.Row
}

func buildIndex(ds *dataset.Dataset, keyColumns []string, sep string) *keyIndex {
	idx := &keyIndex{rows: make(map[string]dataset.Row, ds.Len())}
	for _, row := range ds.Rows() {
		key := row.CompositeKey(keyColumns, sep)
		if _, seen := idx.rows[key]; !seen {
			idx.order = append(idx.order, key)
		}
		idx.rows[key] = row
	}
	return idx
}

func (idx *keyIndex) lookup(key, column string) (dataset.Value, bool) {
	row, ok := idx.rows[key]
	if !ok {
		return dataset.Missing(), false
	}
	return row.Value(column), true
}

// unionKeys returns all keys of before in row order, then keys only in after.
func unionKeys(before, after *keyIndex) []string {
	keys := make([]string, 0, len(before.order)+len(after.order))
	keys = append(keys, before.order...)
	for _, key := range after.order {
		if _, ok := before.rows[key]; !ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *Comparator) compareColumn(column string, keys []string, beforeIdx, afterIdx *keyIndex, opts Options) *Result {
	res := &Result{Column: column}
	for _, key := range keys {
		bv, inBefore := beforeIdx.lookup(key, column)
		av, inAfter := afterIdx.lookup(key, column)

		// Without ShowAll, only value differences between matched rows are
		// reported. Keys absent from one dataset surface with ShowAll set.
		if !opts.ShowAll {
			if !inBefore || !inAfter {
				continue
			}
			if bv.Equal(av) {
				continue
			}
		}

		rec := Record{Key: key, Before: bv, After: av}
		if b, ok := bv.Float(); ok {
			if a, ok := av.Float(); ok {
				diff := a - b
				rec.AbsoluteChange = &diff
				if b != 0 {
					pct := diff / b
					rec.PctChange = &pct
				}
			}
		}
		res.Records = append(res.Records, rec)
	}

	if opts.TopN > 0 && len(res.Records) > opts.TopN {
		rankByMagnitude(res.Records)
		res.Records = res.Records[:opts.TopN]
	}
	return res
}

// rankByMagnitude orders records by |AbsoluteChange| descending. Records
// without a numeric change sort last, and the sort is stable so ties keep
// their key order.
func rankByMagnitude(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return changeMagnitude(records[i]) > changeMagnitude(records[j])
	})
}

func changeMagnitude(rec Record) float64 {
	if rec.AbsoluteChange == nil {
		return math.Inf(-1)
	}
	return math.Abs(*rec.AbsoluteChange)
}
