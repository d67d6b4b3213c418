package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		kind    ValueKind
		kindStr string
		str     string
	}{
		{"number", Number(12.5), KindNumber, "number", "12.5"},
		{"integer-valued number", Number(100), KindNumber, "number", "100"},
		{"text", Text("TASC"), KindText, "text", "TASC"},
		{"missing", Missing(), KindMissing, "missing", ""},
		{"zero value is missing", Value{}, KindMissing, "missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.kindStr, tt.value.Kind().String())
			assert.Equal(t, tt.str, tt.value.String())
		})
	}
}

func TestValueFloat(t *testing.T) {
	f, ok := Number(3.25).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.25, f)

	_, ok = Text("3.25").Float()
	assert.False(t, ok)

	_, ok = Missing().Float()
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"equal numbers", Number(5), Number(5), true},
		{"different numbers", Number(5), Number(6), false},
		{"equal text", Text("x"), Text("x"), true},
		{"different text", Text("x"), Text("y"), false},
		{"both missing", Missing(), Missing(), true},
		{"number vs text", Number(5), Text("5"), false},
		{"number vs missing", Number(0), Missing(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestRowValue(t *testing.T) {
	row := Row{"id": Text("A"), "v": Number(1)}

	assert.Equal(t, Text("A"), row.Value("id"))
	assert.Equal(t, Missing(), row.Value("absent"))
}

func TestRowCompositeKey(t *testing.T) {
	row := Row{
		"ticker": Text("TASC"),
		"date":   Text("2025-06-01"),
		"price":  Number(2.41),
	}

	tests := []struct {
		name string
		cols []string
		sep  string
		want string
	}{
		{"single column", []string{"ticker"}, "|", "TASC"},
		{"two columns", []string{"ticker", "date"}, "|", "TASC|2025-06-01"},
		{"order matters", []string{"date", "ticker"}, "|", "2025-06-01|TASC"},
		{"numeric component", []string{"ticker", "price"}, "|", "TASC|2.41"},
		{"missing component renders empty", []string{"ticker", "sector"}, "|", "TASC|"},
		{"custom separator", []string{"ticker", "date"}, "::", "TASC::2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, row.CompositeKey(tt.cols, tt.sep))
		})
	}
}

func TestDataset(t *testing.T) {
	ds := New([]string{"id", "v"})
	assert.Equal(t, 0, ds.Len())
	assert.True(t, ds.HasColumn("id"))
	assert.False(t, ds.HasColumn("w"))

	ds.Append(Row{"id": Text("A"), "v": Number(1)})
	ds.Append(Row{"id": Text("B"), "v": Number(2)})

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"id", "v"}, ds.Columns())
	assert.Equal(t, Text("A"), ds.Rows()[0].Value("id"))
	assert.Equal(t, Text("B"), ds.Rows()[1].Value("id"))
}
