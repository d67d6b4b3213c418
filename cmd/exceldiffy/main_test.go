package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "id", []string{"id"}},
		{"multiple", "ticker,date", []string{"ticker", "date"}},
		{"trims whitespace", " ticker , date ", []string{"ticker", "date"}},
		{"drops empty entries", "a,,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.in))
		})
	}
}
