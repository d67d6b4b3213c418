package comparator

import (
	"fmt"

	"exceldiffy/internal/dataset"
)

// DefaultKeySeparator joins the components of a composite key.
const DefaultKeySeparator = "|"

// Options configures a comparison run.
type Options struct {
	// KeyColumns are the columns whose values form the composite key used
	// to match rows between the two datasets.
	KeyColumns []string `validate:"required,min=1"`
	// CompareColumns are the columns whose before/after values are diffed.
	CompareColumns []string `validate:"required,min=1"`
	// ShowAll includes unchanged rows in the results.
	ShowAll bool
	// TopN, when positive, caps each result to the N records with the
	// largest |AbsoluteChange|.
	TopN int `validate:"gte=0"`
	// KeySeparator overrides DefaultKeySeparator when non-empty.
	KeySeparator string
}

func (o Options) separator() string {
	if o.KeySeparator == "" {
		return DefaultKeySeparator
	}
	return o.KeySeparator
}

// Record is one per-key comparison outcome for a single compare column.
// A nil change pointer means the change is undefined for this record.
type Record struct {
	Key            string
	Before         dataset.Value
	After          dataset.Value
	AbsoluteChange *float64
	PctChange      *float64
}

// Result holds the ordered records produced for one compare column.
type Result struct {
	Column  string
	Records []Record
}

// ConfigurationError reports an unusable comparison configuration, such as
// an empty column list or a column that neither dataset declares.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}
