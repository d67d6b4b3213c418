package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"exceldiffy/internal/comparator"
	"exceldiffy/internal/dataset"
)

func floatPtr(f float64) *float64 { return &f }

func TestRenderResult(t *testing.T) {
	res := &comparator.Result{
		Column: "close",
		Records: []comparator.Record{
			{
				Key:            "TASC",
				Before:         dataset.Number(100),
				After:          dataset.Number(120),
				AbsoluteChange: floatPtr(20),
				PctChange:      floatPtr(0.2),
			},
		},
	}

	var buf bytes.Buffer
	RenderResult(&buf, res, 0)
	out := buf.String()

	assert.Contains(t, out, `=== Changes in "close" ===`)
	assert.Contains(t, out, "Total rows with changes: 1")
	assert.Contains(t, out, "TASC")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "0.2")
}

func TestRenderResultLimit(t *testing.T) {
	res := &comparator.Result{Column: "v"}
	for _, key := range []string{"A", "B", "C"} {
		res.Records = append(res.Records, comparator.Record{
			Key:    key,
			Before: dataset.Number(1),
			After:  dataset.Number(2),
		})
	}

	var buf bytes.Buffer
	RenderResult(&buf, res, 2)
	out := buf.String()

	assert.Contains(t, out, "Total rows with changes: 3")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
	assert.NotContains(t, out, "| C")
}

func TestRenderResults(t *testing.T) {
	results := map[string]*comparator.Result{
		"volume": {Column: "volume"},
		"close":  {Column: "close"},
	}

	var buf bytes.Buffer
	RenderResults(&buf, results, 0)
	out := buf.String()

	closeIdx := strings.Index(out, `"close"`)
	volumeIdx := strings.Index(out, `"volume"`)
	assert.GreaterOrEqual(t, closeIdx, 0)
	assert.GreaterOrEqual(t, volumeIdx, 0)
	assert.Less(t, closeIdx, volumeIdx, "results render in sorted column order")
}

func TestRenderResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderResults(&buf, nil, 0)
	assert.Contains(t, buf.String(), "No comparison results to display.")
}
