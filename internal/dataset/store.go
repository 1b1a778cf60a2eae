package dataset

import (
	"compress/bzip2"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/table"
)

// Filename returns the canonical name of a year's accident extract,
// e.g. Filename(2013) == "accident_2013.csv.bz2".
func Filename(y domain.Year) string {
	return fmt.Sprintf("accident_%d.csv.bz2", int(y))
}

// NotFoundError reports a missing extract file. It unwraps to
// fs.ErrNotExist so callers can use errors.Is.
type NotFoundError struct {
	Path string
	err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %q does not exist", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.err }

// Store reads yearly accident extracts from a single base directory. The
// directory is explicit; nothing here depends on the process working
// directory. Loads are not cached: every call reads from disk.
type Store struct {
	dir     string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{dir: dir, logger: logger, metrics: metrics}
}

// Dir returns the store's base directory.
func (s *Store) Dir() string { return s.dir }

// Path returns where a year's extract lives under the store directory.
func (s *Store) Path(y domain.Year) string {
	return filepath.Join(s.dir, Filename(y))
}

// LoadYear reads one year's accident extract into a Table.
func (s *Store) LoadYear(y domain.Year) (*table.Table, error) {
	return s.ReadTable(s.Path(y))
}

// ReadTable reads a CSV file into a Table, transparently decompressing
// files with a .bz2 suffix. A missing file is a *NotFoundError.
func (s *Store) ReadTable(path string) (*table.Table, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.metrics.DatasetLoads.WithLabelValues("not_found").Inc()
			return nil, &NotFoundError{Path: path, err: err}
		}
		s.metrics.DatasetLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("open extract: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	tbl, err := table.ReadCSV(r)
	if err != nil {
		s.metrics.DatasetLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("read extract %s: %w", path, err)
	}

	s.metrics.DatasetLoads.WithLabelValues("success").Inc()
	s.metrics.RowsLoaded.Add(float64(tbl.NumRows()))
	s.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	s.logger.Debug("extract loaded", "path", path, "rows", tbl.NumRows())

	return tbl, nil
}
