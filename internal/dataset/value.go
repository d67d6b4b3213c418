package dataset

import "strconv"

// ValueKind identifies which of the three scalar kinds a Value holds.
type ValueKind int

const (
	// KindMissing marks an absent cell. The zero Value is Missing.
	KindMissing ValueKind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a textual cell.
	KindText
)

// String returns the string representation of the kind
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Value is a single cell value: a number, a text, or missing.
// The zero Value is Missing.
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Number creates a numeric Value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text creates a textual Value
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Missing creates an absent Value
func Missing() Value {
	return Value{kind: KindMissing}
}

// Kind returns the kind of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsMissing reports whether the value is absent
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric payload and whether the value is a number
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Equal reports exact equality: same kind and same payload.
// Two Missing values are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindText:
		return v.text == other.text
	default:
		return true
	}
}

// String formats the value for composite keys and display.
// Numbers use the shortest exact representation, Missing is empty.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}
