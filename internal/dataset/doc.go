// Package dataset defines the in-memory tabular model shared by the loader,
// comparator and exporter: a Dataset is an ordered list of Rows, and each
// cell is a Value of kind number, text or missing.
package dataset
