package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ntbohl/fars/internal/summary"
	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet written by WriteXLSX.
const sheetName = "Summary"

// WriteCSV writes the pivot as CSV: a MONTH column followed by one
// column per year. A (month, year) cell with no accidents is left
// empty, not written as zero.
func WriteCSV(w io.Writer, st *summary.SummaryTable) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(st.Years())+1)
	header = append(header, "MONTH")
	for _, y := range st.Years() {
		header = append(header, y.String())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write summary csv: %w", err)
	}

	for _, m := range st.Months() {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(m))
		for _, y := range st.Years() {
			if n, ok := st.Count(m, y); ok {
				row = append(row, strconv.FormatInt(n, 10))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary csv: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write summary csv: %w", err)
	}
	return nil
}

// WriteText writes the pivot as an aligned text table for terminal
// output. Cells with no accidents print as NA.
func WriteText(w io.Writer, st *summary.SummaryTable) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprint(tw, "MONTH")
	for _, y := range st.Years() {
		fmt.Fprintf(tw, "\t%s", y)
	}
	fmt.Fprintln(tw)

	for _, m := range st.Months() {
		fmt.Fprintf(tw, "%d", m)
		for _, y := range st.Years() {
			if n, ok := st.Count(m, y); ok {
				fmt.Fprintf(tw, "\t%d", n)
			} else {
				fmt.Fprint(tw, "\tNA")
			}
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write summary table: %w", err)
	}
	return nil
}

// WriteXLSX writes the pivot as a spreadsheet with a single Summary
// sheet. Cells with no accidents stay unset.
func WriteXLSX(w io.Writer, st *summary.SummaryTable) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	f.SetCellValue(sheetName, "A1", "MONTH")
	for i, y := range st.Years() {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		f.SetCellValue(sheetName, cell, int(y))
	}

	for ri, m := range st.Months() {
		cell, _ := excelize.CoordinatesToCellName(1, ri+2)
		f.SetCellValue(sheetName, cell, m)
		for ci, y := range st.Years() {
			n, ok := st.Count(m, y)
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(ci+2, ri+2)
			f.SetCellValue(sheetName, cell, n)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write summary xlsx: %w", err)
	}
	return nil
}
