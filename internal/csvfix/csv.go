package csvfix

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/archivist-labs/atomdates/internal/dates"
)

// Result summarizes one file run.
type Result struct {
	Rows    int
	Changed int
	Failed  int
}

// Row is one record's before/after view, used by the review screen.
type Row struct {
	Line     int
	Raw      string
	RawStart string
	RawEnd   string
	Fixed    dates.EventDates
	Err      error
}

// columns locates the three date columns in a CSV header.
type columns struct {
	dates, start, end int
}

func findColumns(header []string, prof Profile) (columns, error) {
	cols := columns{dates: -1, start: -1, end: -1}
	for i, name := range header {
		switch name {
		case prof.DatesColumn:
			cols.dates = i
		case prof.StartColumn:
			cols.start = i
		case prof.EndColumn:
			cols.end = i
		}
	}
	if cols.dates < 0 {
		return cols, fmt.Errorf("missing column %q in CSV header", prof.DatesColumn)
	}
	if cols.start < 0 {
		return cols, fmt.Errorf("missing column %q in CSV header", prof.StartColumn)
	}
	if cols.end < 0 {
		return cols, fmt.Errorf("missing column %q in CSV header", prof.EndColumn)
	}
	return cols, nil
}

// FixFile streams a CSV from in to out, repairing the date columns of every
// row. Rows that cannot be fixed are written through unchanged and counted;
// the run only fails on IO or structural problems.
func (f *Fixer) FixFile(in io.Reader, out io.Writer, prof Profile, logger *log.Logger) (Result, error) {
	var res Result

	r := csv.NewReader(in)
	w := csv.NewWriter(out)

	header, err := r.Read()
	if err != nil {
		return res, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols, err := findColumns(header, prof)
	if err != nil {
		return res, err
	}
	if err := w.Write(header); err != nil {
		return res, fmt.Errorf("failed to write CSV header: %w", err)
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("failed to read CSV row %d: %w", line+1, err)
		}
		line++
		res.Rows++

		fixed, err := f.FixRow(record[cols.dates], record[cols.start], record[cols.end])
		if err != nil {
			logger.Warn("leaving row unchanged",
				"line", line, "eventDates", record[cols.dates], "err", err)
			res.Failed++
		} else {
			if record[cols.dates] != fixed.EventDates ||
				record[cols.start] != fixed.EventStartDates ||
				record[cols.end] != fixed.EventEndDates {
				res.Changed++
			}
			record[cols.dates] = fixed.EventDates
			record[cols.start] = fixed.EventStartDates
			record[cols.end] = fixed.EventEndDates
		}

		if err := w.Write(record); err != nil {
			return res, fmt.Errorf("failed to write CSV row %d: %w", line, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return res, fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return res, nil
}

// Preview reads a CSV and computes the proposed fix for every row without
// writing anything. The review screen browses the result.
func (f *Fixer) Preview(in io.Reader, prof Profile) ([]Row, error) {
	r := csv.NewReader(in)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols, err := findColumns(header, prof)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line+1, err)
		}
		line++

		row := Row{
			Line:     line,
			Raw:      record[cols.dates],
			RawStart: record[cols.start],
			RawEnd:   record[cols.end],
		}
		row.Fixed, row.Err = f.FixRow(record[cols.dates], record[cols.start], record[cols.end])
		rows = append(rows, row)
	}
	return rows, nil
}
