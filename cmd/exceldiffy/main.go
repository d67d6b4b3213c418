// Command exceldiffy compares two spreadsheet files row-by-row on a
// composite key and reports per-column differences.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"exceldiffy/internal/comparator"
	"exceldiffy/internal/config"
	"exceldiffy/internal/dataset"
	"exceldiffy/internal/display"
	"exceldiffy/internal/exporter"
	"exceldiffy/internal/loader"
)

func main() {
	beforePath := flag.String("before", "", "path to the before dataset (.xlsx or .csv)")
	afterPath := flag.String("after", "", "path to the after dataset (.xlsx or .csv)")
	beforeSheet := flag.String("before-sheet", "", "sheet name in the before workbook (defaults to first sheet)")
	afterSheet := flag.String("after-sheet", "", "sheet name in the after workbook (defaults to first sheet)")
	keys := flag.String("keys", "", "comma-separated key columns forming the composite key")
	columns := flag.String("columns", "", "comma-separated columns to compare")
	showAll := flag.Bool("show-all", false, "include unchanged rows in the results")
	topN := flag.Int("top", 0, "keep only the N largest changes per column (0 uses the configured default for display)")
	outPath := flag.String("out", "", "write results to this .xlsx file (optional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := cfg.Logger()
	slog.SetDefault(logger)

	if *beforePath == "" || *afterPath == "" {
		slog.Error("Both -before and -after are required")
		flag.Usage()
		os.Exit(1)
	}
	keyColumns := splitList(*keys)
	compareColumns := splitList(*columns)
	if len(keyColumns) == 0 || len(compareColumns) == 0 {
		slog.Error("Both -keys and -columns are required")
		flag.Usage()
		os.Exit(1)
	}

	before, err := loadFile(*beforePath, *beforeSheet)
	if err != nil {
		slog.Error("Failed to load before dataset", "path", *beforePath, "error", err)
		os.Exit(1)
	}
	after, err := loadFile(*afterPath, *afterSheet)
	if err != nil {
		slog.Error("Failed to load after dataset", "path", *afterPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded datasets",
		"before_rows", before.Len(),
		"after_rows", after.Len())

	cmp := comparator.New(logger)
	results, err := cmp.Compare(before, after, comparator.Options{
		KeyColumns:     keyColumns,
		CompareColumns: compareColumns,
		ShowAll:        *showAll,
		TopN:           *topN,
		KeySeparator:   cfg.KeySeparator,
	})
	if err != nil {
		slog.Error("Comparison failed", "error", err)
		os.Exit(1)
	}

	displayLimit := *topN
	if displayLimit == 0 {
		displayLimit = cfg.DefaultTopN
	}
	display.RenderResults(os.Stdout, results, displayLimit)

	if *outPath != "" {
		writer := exporter.NewExcelWriter(logger)
		if err := writer.Write(results, *outPath); err != nil {
			slog.Error("Export failed", "path", *outPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Exported results to %q\n", *outPath)
	}
}

// loadFile picks the loader from the file extension; anything that is not
// .csv is treated as a workbook.
func loadFile(path, sheet string) (*dataset.Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loader.ReadCSV(path)
	}
	return loader.ReadWorkbookSheet(path, sheet)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
