package dataset

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ntbohl/fars/internal/domain"
	"github.com/ntbohl/fars/internal/observability"
	"github.com/ntbohl/fars/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeStore(t *testing.T, dir string) *Store {
	t.Helper()
	return NewStore(dir, discardLogger(), observability.NewMetricsForTesting())
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		year domain.Year
		want string
	}{
		{"recent year", 2013, "accident_2013.csv.bz2"},
		{"first FARS year", 1975, "accident_1975.csv.bz2"},
		{"distinct years distinct names", 2014, "accident_2014.csv.bz2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.year))
		})
	}
}

func TestStorePath(t *testing.T) {
	s := makeStore(t, "testdata")

	assert.Equal(t, filepath.Join("testdata", "accident_2013.csv.bz2"), s.Path(2013))
}

func TestLoadYear(t *testing.T) {
	t.Run("reads a compressed extract", func(t *testing.T) {
		s := makeStore(t, "testdata")

		tbl, err := s.LoadYear(2013)

		require.NoError(t, err)
		assert.Equal(t, 6, tbl.NumRows())

		state, ok := tbl.Column("STATE")
		require.True(t, ok)
		assert.Equal(t, table.Numeric, state.Kind())

		tway, ok := tbl.Column("TWAY_ID")
		require.True(t, ok)
		assert.Equal(t, table.String, tway.Kind())
	})

	t.Run("repeated loads are row-equivalent", func(t *testing.T) {
		s := makeStore(t, "testdata")

		first, err := s.LoadYear(2013)
		require.NoError(t, err)
		second, err := s.LoadYear(2013)
		require.NoError(t, err)

		assert.Equal(t, first.NumRows(), second.NumRows())
		assert.Equal(t, first.ColumnNames(), second.ColumnNames())

		lon1, _ := first.Column("LONGITUD")
		lon2, _ := second.Column("LONGITUD")
		for i := 0; i < first.NumRows(); i++ {
			v1, ok1 := lon1.Float(i)
			v2, ok2 := lon2.Float(i)
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, v1, v2)
		}
	})

	t.Run("missing year", func(t *testing.T) {
		s := makeStore(t, "testdata")

		_, err := s.LoadYear(1999)

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, filepath.Join("testdata", "accident_1999.csv.bz2"), notFound.Path)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestReadTable(t *testing.T) {
	t.Run("plain csv needs no decompression", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "accidents.csv")
		data := "STATE,MONTH,FATALS\n1,1,1\n8,2,1\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		s := makeStore(t, dir)
		tbl, err := s.ReadTable(path)

		require.NoError(t, err)
		assert.Equal(t, 2, tbl.NumRows())
		assert.Equal(t, []string{"STATE", "MONTH", "FATALS"}, tbl.ColumnNames())
	})

	t.Run("truncated bzip2 stream", func(t *testing.T) {
		s := makeStore(t, "testdata")

		_, err := s.ReadTable(filepath.Join("testdata", "truncated.csv.bz2"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read extract")
	})

	t.Run("directory instead of file", func(t *testing.T) {
		s := makeStore(t, "testdata")

		_, err := s.ReadTable("testdata")

		require.Error(t, err)
		var notFound *NotFoundError
		assert.False(t, errors.As(err, &notFound))
	})
}
