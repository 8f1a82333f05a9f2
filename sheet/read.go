package sheet

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheet is returned when a workbook doesn't contain the requested sheet.
var ErrNoSheet = errors.New("sheet: no such sheet")

// Rows returns the raw cell values of every row of the named sheet,
// ignoring number formats: a number stored as 10 reads "10" whatever its style.
// Trailing empty cells of a row are omitted.
func Rows(r io.Reader, name string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), name) {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, name)
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", name, err)
	}

	return rows, nil
}
