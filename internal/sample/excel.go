package sample

import (
	"strings"

	"distplot/internal/errors"

	"github.com/xuri/excelize/v2"
)

// readExcel collects every non-empty cell of the first sheet, row by row.
// Cells are read unformatted so number styles (separators, percentages)
// do not leak into the text. The reported "line" in parse errors is the
// spreadsheet row.
func readExcel(path string) (Sample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Sample{}, errors.FileError(path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Sample{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return Sample{}, errors.FileError(path, err)
	}

	var values []float64
	for i, row := range rows {
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := parseToken(path, i+1, cell)
			if err != nil {
				return Sample{}, err
			}
			values = append(values, v)
		}
	}
	return Sample{values: values}, nil
}
