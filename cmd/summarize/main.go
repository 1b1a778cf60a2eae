// Command summarize prints a month-by-year accident count table built
// from yearly FARS extracts.
//
// Usage:
//
//	summarize -years 2013,2014,2015 [-data-dir data] [-csv out.csv] [-xlsx out.xlsx]
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ntbohl/fars/internal/config"
	"github.com/ntbohl/fars/internal/dataset"
	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/exporter"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/summary"
)

func main() {
	yearsArg := flag.String("years", "", "comma-separated years to summarize, e.g. 2013,2014,2015")
	dataDir := flag.String("data-dir", "", "directory holding accident_<year>.csv.bz2 extracts (overrides FARS_DATA_DIR)")
	csvOut := flag.String("csv", "", "also write the table to this CSV file")
	xlsxOut := flag.String("xlsx", "", "also write the table to this XLSX file")
	flag.Parse()

	if *yearsArg == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	years, err := domain.ParseYears(strings.Split(*yearsArg, ","))
	if err != nil {
		logger.Error("invalid years argument", "error", err)
		os.Exit(1)
	}

	store := dataset.NewStore(cfg.DataDir, logger, metrics)
	extractor := summary.NewExtractor(store, logger, metrics)
	summarizer := summary.NewSummarizer(extractor, logger, metrics)

	st, err := summarizer.Summarize(years)
	if err != nil {
		logger.Error("summarize failed", "error", err)
		os.Exit(1)
	}

	if err := exporter.WriteText(os.Stdout, st); err != nil {
		logger.Error("print summary failed", "error", err)
		os.Exit(1)
	}

	if *csvOut != "" {
		if err := writeFile(*csvOut, st, exporter.WriteCSV); err != nil {
			logger.Error("csv export failed", "error", err, "path", *csvOut)
			os.Exit(1)
		}
		logger.Info("summary exported", "format", "csv", "path", *csvOut)
	}
	if *xlsxOut != "" {
		if err := writeFile(*xlsxOut, st, exporter.WriteXLSX); err != nil {
			logger.Error("xlsx export failed", "error", err, "path", *xlsxOut)
			os.Exit(1)
		}
		logger.Info("summary exported", "format", "xlsx", "path", *xlsxOut)
	}
}

func writeFile(path string, st *summary.SummaryTable, write func(io.Writer, *summary.SummaryTable) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, st); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
