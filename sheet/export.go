package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	// DefaultSheet is the name of the exported puzzle sheet.
	DefaultSheet = "숨은그림찾기"
	// DefaultFilename is the suggested download name.
	DefaultFilename = DefaultSheet + ".xlsx"
	// ContentType of exported workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportOptions struct {
	// Sheet name.
	Sheet string
	// ColumnWidth applied to every column, in characters.
	ColumnWidth float64
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Sheet:       DefaultSheet,
		ColumnWidth: 3,
	}
}

// Workbook lays a grid out on a single sheet, grid[r][c] going to row r+1, column c+1.
// Cells that read as integers are stored as numbers.
func Workbook(grid [][]string, opts ExportOptions) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile always starts with a single sheet at index 0.
	if err := f.SetSheetName(f.GetSheetName(0), opts.Sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("sheet name: %w", err)
	}

	var cols int
	for r, row := range grid {
		cols = max(cols, len(row))

		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				f.Close()
				return nil, err
			}

			v := ParseValue(val)
			if err := f.SetCellValue(opts.Sheet, cell, v.Any()); err != nil {
				f.Close()
				return nil, fmt.Errorf("cell %s = %s: %w", cell, v, err)
			}
		}
	}

	if cols > 0 && opts.ColumnWidth > 0 {
		last, err := excelize.ColumnNumberToName(cols)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(opts.Sheet, "A", last, opts.ColumnWidth); err != nil {
			f.Close()
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	return f, nil
}

// Export writes grid as an xlsx workbook.
func Export(w io.Writer, grid [][]string, opts ExportOptions) error {
	f, err := Workbook(grid, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}
