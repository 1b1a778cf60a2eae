package table

import (
	"fmt"
	"sort"
)

// Kind identifies the element type of a Column.
type Kind int

const (
	// String columns hold the original cell text.
	String Kind = iota
	// Numeric columns hold float64 values parsed from the cell text.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	default:
		return "string"
	}
}

// Column is a single named column. Cells are either present or missing;
// missing cells have no value of either kind. Columns are immutable once
// constructed.
type Column struct {
	name    string
	kind    Kind
	floats  []float64
	strs    []string
	missing []bool
}

// NewNumericColumn builds a numeric column. A nil missing mask means every
// cell is present. values and missing must have equal length when both are
// given.
func NewNumericColumn(name string, values []float64, missing []bool) Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	return Column{name: name, kind: Numeric, floats: values, missing: missing}
}

// NewStringColumn builds a string column. A nil missing mask means every
// cell is present.
func NewStringColumn(name string, values []string, missing []bool) Column {
	if missing == nil {
		missing = make([]bool, len(values))
	}
	return Column{name: name, kind: String, strs: values, missing: missing}
}

// Name returns the column's header name.
func (c Column) Name() string { return c.name }

// Kind returns the column's element kind.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c Column) Len() int { return len(c.missing) }

// IsMissing reports whether the cell at row i has no value.
func (c Column) IsMissing(i int) bool { return c.missing[i] }

// Float returns the numeric value at row i. The second result is false for
// missing cells and for string columns.
func (c Column) Float(i int) (float64, bool) {
	if c.kind != Numeric || c.missing[i] {
		return 0, false
	}
	return c.floats[i], true
}

// Str returns the text value at row i. The second result is false for
// missing cells and for numeric columns.
func (c Column) Str(i int) (string, bool) {
	if c.kind != String || c.missing[i] {
		return "", false
	}
	return c.strs[i], true
}

// Table is an ordered collection of equal-length named columns. Tables are
// immutable; every operation returns a new Table and shares column storage
// with its input where rows are unchanged.
type Table struct {
	cols  []Column
	index map[string]int
	nrows int
}

// New builds a Table from columns. Column names must be unique and lengths
// must agree.
func New(cols ...Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, ok := t.index[c.name]; ok {
			return nil, fmt.Errorf("duplicate column %q", c.name)
		}
		if i == 0 {
			t.nrows = c.Len()
		} else if c.Len() != t.nrows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.name, c.Len(), t.nrows)
		}
		t.index[c.name] = i
	}
	t.cols = append(t.cols, cols...)
	return t, nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return t.nrows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Column returns the named column. The second result is false when no such
// column exists.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.cols[i], true
}

// Select returns a table holding only the named columns, in the given
// order. Unknown names are an error.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("select: unknown column %q", name)
		}
		cols = append(cols, t.cols[i])
	}
	return New(cols...)
}

// Filter returns a table holding the rows for which keep returns true. Row
// order is preserved.
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([]int, 0, t.nrows)
	for i := 0; i < t.nrows; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}

	cols := make([]Column, len(t.cols))
	for ci, c := range t.cols {
		nc := Column{name: c.name, kind: c.kind, missing: make([]bool, len(rows))}
		switch c.kind {
		case Numeric:
			nc.floats = make([]float64, len(rows))
			for ni, ri := range rows {
				nc.floats[ni] = c.floats[ri]
				nc.missing[ni] = c.missing[ri]
			}
		default:
			nc.strs = make([]string, len(rows))
			for ni, ri := range rows {
				nc.strs[ni] = c.strs[ri]
				nc.missing[ni] = c.missing[ri]
			}
		}
		cols[ci] = nc
	}

	out, err := New(cols...)
	if err != nil {
		// Unreachable: names and lengths come from a valid table.
		panic(err)
	}
	return out
}

// WithConstant returns a table with every cell of the named column set to
// value. An existing column of that name is replaced in place; otherwise
// the column is appended.
func (t *Table) WithConstant(name string, value float64) *Table {
	values := make([]float64, t.nrows)
	for i := range values {
		values[i] = value
	}
	col := NewNumericColumn(name, values, nil)

	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	if i, ok := t.index[name]; ok {
		cols[i] = col
	} else {
		cols = append(cols, col)
	}

	out, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return out
}

// DistinctFloats returns the sorted distinct present values of the named
// numeric column. Missing cells are skipped. The second result is false
// when the column does not exist or is not numeric.
func (t *Table) DistinctFloats(name string) ([]float64, bool) {
	col, ok := t.Column(name)
	if !ok || col.Kind() != Numeric {
		return nil, false
	}
	seen := make(map[float64]struct{})
	for i := 0; i < col.Len(); i++ {
		if v, ok := col.Float(i); ok {
			seen[v] = struct{}{}
		}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out, true
}
