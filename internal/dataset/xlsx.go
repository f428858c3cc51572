package dataset

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the table from a workbook sheet. The first sheet is used when
// sheet is empty. Date cells may hold text in opts.DateLayout or an Excel
// serial date.
func LoadXLSX(fs afero.Fs, path, sheet string, opts Options) (*Dataset, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	cells, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	rows := make([]row, len(cells))
	for i, c := range cells {
		rows[i] = row{line: i + 1, cells: c}
	}

	return fromRows(rows, func(cell string) (time.Time, error) {
		cell = strings.TrimSpace(cell)
		if t, err := time.Parse(opts.layout(), cell); err == nil {
			return t, nil
		}
		serial, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot parse %q as a date", cell)
		}
		return excelize.ExcelDateToTime(serial, false)
	})
}

// Load reads a dataset from path, choosing the decoder by file extension.
func Load(fs afero.Fs, path, sheet string, opts Options) (*Dataset, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(fs, path, sheet, opts)
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	return ParseReader(file, opts)
}
