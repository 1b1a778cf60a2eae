package summary

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
)

// ErrEmptyDataset reports that no requested year produced any data.
var ErrEmptyDataset = errors.New("no data for any requested year")

// YearExtractor produces per-year result slots.
type YearExtractor interface {
	ExtractYears(years []domain.Year) []YearResult
}

// monthYear keys one pivot cell.
type monthYear struct {
	month int
	year  domain.Year
}

// SummaryTable is a month-by-year pivot of accident counts. Rows are the
// distinct months present in the counted data, ascending; columns the
// years that contributed at least one row, ascending. Cells without data
// are absent, not zero.
type SummaryTable struct {
	months []int
	years  []domain.Year
	counts map[monthYear]int64

	// GeneratedAt records when the table was built.
	GeneratedAt time.Time
}

// Months returns the pivot's month rows, ascending.
func (st *SummaryTable) Months() []int { return st.months }

// Years returns the pivot's year columns, ascending.
func (st *SummaryTable) Years() []domain.Year { return st.years }

// Count returns the accidents in one (month, year) cell. The second result
// is false when the cell has no data.
func (st *SummaryTable) Count(month int, year domain.Year) (int64, bool) {
	n, ok := st.counts[monthYear{month: month, year: year}]
	return n, ok
}

// Total returns the sum over all cells.
func (st *SummaryTable) Total() int64 {
	var total int64
	for _, n := range st.counts {
		total += n
	}
	return total
}

// Summarizer turns per-year extractions into summary tables.
type Summarizer struct {
	extractor YearExtractor
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// NewSummarizer creates a Summarizer over the given extractor.
func NewSummarizer(extractor YearExtractor, logger *slog.Logger, metrics *observability.Metrics) *Summarizer {
	return &Summarizer{extractor: extractor, logger: logger, metrics: metrics}
}

// Summarize counts accidents by month and year across the requested years.
// Years that fail to load are reported as one warning each and excluded
// from the pivot; when every requested year fails the result is
// ErrEmptyDataset. Duplicate input years accumulate into a single column.
// Rows whose month cell is missing, non-numeric, or not an integer
// cannot be pivoted and are skipped.
func (s *Summarizer) Summarize(years []domain.Year) (*SummaryTable, error) {
	results := s.extractor.ExtractYears(years)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			s.logger.Warn("invalid year", "year", res.Year, "error", res.Err)
			failed++
		}
	}
	if failed == len(results) {
		return nil, ErrEmptyDataset
	}

	counts := make(map[monthYear]int64)
	yearSet := make(map[domain.Year]struct{})
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		months, _ := res.Table.Column("MONTH")
		counted := false
		for i := 0; i < months.Len(); i++ {
			v, ok := months.Float(i)
			if !ok {
				continue
			}
			m := int(v)
			if float64(m) != v {
				// A fractional month cannot key a pivot row; validate
				// reports such cells with their row numbers.
				continue
			}
			counts[monthYear{month: m, year: res.Year}]++
			counted = true
		}
		if counted {
			yearSet[res.Year] = struct{}{}
		}
	}

	st := &SummaryTable{
		months:      sortedMonths(counts),
		years:       sortedYears(yearSet),
		counts:      counts,
		GeneratedAt: domain.Now(),
	}

	s.metrics.SummariesGenerated.Inc()
	s.logger.Debug("summary built",
		"years", len(st.years), "months", len(st.months), "total", st.Total())

	return st, nil
}

func sortedMonths(counts map[monthYear]int64) []int {
	seen := make(map[int]struct{})
	for key := range counts {
		seen[key.month] = struct{}{}
	}
	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)
	return months
}

func sortedYears(set map[domain.Year]struct{}) []domain.Year {
	years := make([]domain.Year, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool { return years[i] < years[j] })
	return years
}
