// Package sample loads the one-dimensional numeric dataset a run analyzes.
package sample

import (
	"os"
	"path/filepath"
	"strings"

	"distplot/internal/errors"
)

// Sample is an ordered, immutable vector of observations.
type Sample struct {
	values []float64
}

// New copies values into a Sample
func New(values []float64) Sample {
	return Sample{values: append([]float64(nil), values...)}
}

// Len returns the number of observations
func (s Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the observations in input order
func (s Sample) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Load reads a sample from path. Spreadsheets (.xlsx) are read cell by cell,
// anything else is treated as whitespace-separated text.
func Load(path string) (Sample, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Sample{}, errors.FileError(path, err)
	}
	if info.IsDir() {
		return Sample{}, errors.FileError(path, errors.New(errors.CodeFileError, "is a directory"))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcel(path)
	default:
		return readText(path)
	}
}
