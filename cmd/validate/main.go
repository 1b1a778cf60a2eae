// Command validate checks yearly FARS extracts for the structural
// problems that otherwise surface mid-analysis: missing files,
// unreadable CSV, absent or non-numeric required columns, out-of-range
// MONTH values. It also reports how many rows carry usable coordinates.
//
// Usage:
//
//	validate -years 2013,2014,2015 [-data-dir data]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ntbohl/fars/internal/config"
	"github.com/ntbohl/fars/internal/dataset"
	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/table"
)

// requiredColumns are the numeric columns every analysis path reads.
var requiredColumns = []string{"MONTH", "STATE", "LONGITUD", "LATITUDE"}

// extract tracks pass/fail for one year's file.
type extract struct {
	name    string
	rows    int
	located int
	errors  []string
}

func (e *extract) errorf(format string, args ...any) {
	e.errors = append(e.errors, fmt.Sprintf(format, args...))
}

func (e *extract) passed() bool { return len(e.errors) == 0 }

func main() {
	yearsArg := flag.String("years", "", "comma-separated years to validate, e.g. 2013,2014,2015")
	dataDir := flag.String("data-dir", "", "directory holding accident_<year>.csv.bz2 extracts (overrides FARS_DATA_DIR)")
	flag.Parse()

	if *yearsArg == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*yearsArg, *dataDir); code != 0 {
		os.Exit(code)
	}
}

func run(yearsArg, dataDir string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load config: %v\n", err)
		return 1
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	years, err := domain.ParseYears(strings.Split(yearsArg, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse years: %v\n", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	store := dataset.NewStore(cfg.DataDir, logger, metrics)

	fmt.Println("=== FARS Extract Validation ===")
	fmt.Printf("Data directory: %s\n", store.Dir())
	fmt.Println()

	checks := make([]*extract, 0, len(years))
	for _, y := range years {
		checks = append(checks, checkYear(store, y))
	}

	// ── Report results ──
	allPassed := true
	totalRows, totalLocated := 0, 0
	for _, e := range checks {
		status := "\033[32mPASS\033[0m"
		if !e.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(e.errors))
			allPassed = false
		}
		fmt.Printf("  %-34s %s\n", e.name, status)
		totalRows += e.rows
		totalLocated += e.located
	}

	fmt.Println()
	fmt.Printf("Rows: %d total, %d with usable coordinates\n", totalRows, totalLocated)

	// Print detailed errors.
	for _, e := range checks {
		if e.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", e.name)
		for i, msg := range e.errors {
			fmt.Printf("  [%d] %s\n", i+1, msg)
		}
	}

	if allPassed {
		fmt.Println("\nAll extracts passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func checkYear(store *dataset.Store, y domain.Year) *extract {
	e := &extract{name: dataset.Filename(y)}

	tbl, err := store.LoadYear(y)
	if err != nil {
		e.errorf("load: %v", err)
		return e
	}
	e.rows = tbl.NumRows()

	for _, name := range requiredColumns {
		col, ok := tbl.Column(name)
		if !ok {
			e.errorf("missing required column %s", name)
			continue
		}
		if col.Kind() != table.Numeric {
			e.errorf("column %s is %s, want numeric", name, col.Kind())
		}
	}
	if !e.passed() {
		return e
	}

	checkMonths(e, tbl)
	e.located = locatedRows(tbl)
	return e
}

// checkMonths flags MONTH cells the summarizer would count under a
// nonsense key. Row numbers match the source file, header included.
func checkMonths(e *extract, tbl *table.Table) {
	months, _ := tbl.Column("MONTH")
	for i := 0; i < months.Len(); i++ {
		v, ok := months.Float(i)
		if !ok {
			e.errorf("row %d: MONTH is missing", i+2)
			continue
		}
		if m := int(v); float64(m) != v || m < 1 || m > 12 {
			e.errorf("row %d: MONTH %v out of range", i+2, v)
		}
	}
}

// locatedRows counts rows that would be drawn on a state map: both
// axes present and not sentinel-valued.
func locatedRows(tbl *table.Table) int {
	lon, _ := tbl.Column("LONGITUD")
	lat, _ := tbl.Column("LATITUDE")

	n := 0
	for i := 0; i < tbl.NumRows(); i++ {
		if domain.NewCoord(floatAt(lon, i), floatAt(lat, i)).Complete() {
			n++
		}
	}
	return n
}

func floatAt(c table.Column, i int) *float64 {
	v, ok := c.Float(i)
	if !ok {
		return nil
	}
	return &v
}
