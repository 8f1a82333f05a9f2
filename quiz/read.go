package quiz

import (
	"errors"
	"fmt"
	"io"

	"go.afab.re/pixelquiz/sheet"
)

// DefaultSheet is the name of the sheet quiz lists are read from.
const DefaultSheet = "퀴즈"

type ReadOptions struct {
	// Sheet holding the quizzes.
	Sheet string
	// SkipRows is the number of leading rows (headers) to ignore.
	SkipRows int
}

func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Sheet:    DefaultSheet,
		SkipRows: 1,
	}
}

// Read parses a quiz list from an xlsx workbook.
func Read(r io.Reader, opts ReadOptions) (Report, error) {
	rows, err := sheet.Rows(r, opts.Sheet)
	switch {
	case errors.Is(err, sheet.ErrNoSheet):
		return Report{}, fmt.Errorf("%w: %q", ErrInvalidSheet, opts.Sheet)
	case err != nil:
		return Report{}, err
	}

	if opts.SkipRows >= len(rows) {
		return Report{}, ErrEmptyData
	}
	if opts.SkipRows > 0 {
		rows = rows[opts.SkipRows:]
	}

	return ParseReport(rows)
}
