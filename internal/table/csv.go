package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV parses CSV data into a Table. The first record is the header.
// Cell text "" or "NA" marks a missing value. A column whose present cells
// all parse as float64 becomes Numeric; any other column stays String with
// its original cell text. A column with no present cells is Numeric.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("read csv: empty input")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	raw := make([][]string, len(header))
	missing := make([][]bool, len(header))
	numeric := make([]bool, len(header))
	for i := range numeric {
		numeric[i] = true
	}

	nrows := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", nrows+2, err)
		}
		for i, cell := range rec {
			m := cell == "" || cell == "NA"
			raw[i] = append(raw[i], cell)
			missing[i] = append(missing[i], m)
			if !m && numeric[i] {
				if _, perr := strconv.ParseFloat(cell, 64); perr != nil {
					numeric[i] = false
				}
			}
		}
		nrows++
	}

	cols := make([]Column, len(header))
	for i, name := range header {
		if numeric[i] {
			floats := make([]float64, nrows)
			for ri, cell := range raw[i] {
				if !missing[i][ri] {
					floats[ri], _ = strconv.ParseFloat(cell, 64)
				}
			}
			cols[i] = NewNumericColumn(name, floats, missing[i])
		} else {
			cols[i] = NewStringColumn(name, raw[i], missing[i])
		}
	}

	t, err := New(cols...)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return t, nil
}
