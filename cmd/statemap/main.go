// Command statemap renders one state and year's accident locations as
// a map image. A state with no locatable accidents is not an error:
// the command logs it and exits without writing a file.
//
// Usage:
//
//	statemap -state 1 -year 2013 [-out map.png] [-data-dir data] [-outline states.geojson]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ntbohl/fars/internal/config"
	"github.com/ntbohl/fars/internal/dataset"
	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/statemap"
)

func main() {
	stateArg := flag.String("state", "", "FARS state number, e.g. 1 for Alabama")
	yearArg := flag.String("year", "", "reporting year, e.g. 2013")
	outArg := flag.String("out", "", "output image path (default <output-dir>/accident_map_<state>_<year>.png)")
	dataDir := flag.String("data-dir", "", "directory holding accident_<year>.csv.bz2 extracts (overrides FARS_DATA_DIR)")
	outlineArg := flag.String("outline", "", "GeoJSON state boundary file (overrides FARS_OUTLINE_FILE)")
	flag.Parse()

	if *stateArg == "" || *yearArg == "" {
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
	if *outlineArg != "" {
		cfg.OutlineFile = *outlineArg
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	code, err := domain.ParseStateCode(*stateArg)
	if err != nil {
		logger.Error("invalid state argument", "error", err)
		os.Exit(1)
	}
	year, err := domain.ParseYear(*yearArg)
	if err != nil {
		logger.Error("invalid year argument", "error", err)
		os.Exit(1)
	}

	var outline *statemap.Outline
	if cfg.OutlineFile != "" {
		outline, err = statemap.LoadOutline(cfg.OutlineFile)
		if err != nil {
			logger.Error("failed to load outline", "error", err, "path", cfg.OutlineFile)
			os.Exit(1)
		}
		logger.Debug("outline loaded", "path", cfg.OutlineFile, "segments", outline.Segments())
	}

	store := dataset.NewStore(cfg.DataDir, logger, metrics)
	plotter := statemap.NewPlotter(store, outline, logger, metrics)

	m, err := plotter.RenderState(code, year)
	if err != nil {
		logger.Error("render failed", "error", err, "state", code, "year", year)
		os.Exit(1)
	}
	if m == nil {
		// Nothing to draw; RenderState already said so.
		return
	}

	out := *outArg
	if out == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			logger.Error("failed to create output dir", "error", err, "path", cfg.OutputDir)
			os.Exit(1)
		}
		out = filepath.Join(cfg.OutputDir, fmt.Sprintf("accident_map_%d_%d.png", int(code), int(year)))
	}

	if err := m.Save(out); err != nil {
		logger.Error("save map failed", "error", err, "path", out)
		os.Exit(1)
	}
	logger.Info("map written", "path", out, "points", m.Points())
}
