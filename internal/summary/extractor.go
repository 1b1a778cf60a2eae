package summary

import (
	"log/slog"

	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/table"
)

// Loader provides yearly accident tables.
type Loader interface {
	LoadYear(y domain.Year) (*table.Table, error)
}

// YearResult is one slot of an extraction: the requested year plus either
// its (MONTH, year) projection or the error that kept it from loading.
type YearResult struct {
	Year  domain.Year
	Table *table.Table
	Err   error
}

// Extractor builds per-year (MONTH, year) projections for summarization.
type Extractor struct {
	loader  Loader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewExtractor creates an Extractor reading through the given loader.
func NewExtractor(loader Loader, logger *slog.Logger, metrics *observability.Metrics) *Extractor {
	return &Extractor{loader: loader, logger: logger, metrics: metrics}
}

// ExtractYears loads every requested year into its own result slot, in
// input order. Each surviving table is reduced to a MONTH column and a
// year column holding the requested year; an existing year column is
// overwritten. A failure fills the slot's Err and never disturbs sibling
// years.
func (e *Extractor) ExtractYears(years []domain.Year) []YearResult {
	results := make([]YearResult, len(years))
	for i, y := range years {
		results[i] = e.extractYear(y)
	}
	return results
}

func (e *Extractor) extractYear(y domain.Year) YearResult {
	res := YearResult{Year: y}

	tbl, err := e.loader.LoadYear(y)
	if err != nil {
		e.metrics.ExtractFailures.Inc()
		res.Err = err
		return res
	}

	proj, err := tbl.WithConstant("year", float64(y)).Select("MONTH", "year")
	if err != nil {
		e.metrics.ExtractFailures.Inc()
		res.Err = err
		return res
	}

	e.logger.Debug("year extracted", "year", y, "rows", proj.NumRows())
	res.Table = proj
	return res
}
