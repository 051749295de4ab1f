package sample

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"distplot/internal/errors"
)

func readText(path string) (Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sample{}, errors.FileError(path, err)
	}
	defer f.Close()

	values, err := parseText(path, f)
	if err != nil {
		return Sample{}, err
	}
	return Sample{values: values}, nil
}

// parseText reads r to the end, splits each line into whitespace-separated
// tokens and parses each as a finite float. Line length is unbounded.
// name is only used in error messages.
func parseText(name string, r io.Reader) ([]float64, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.FileError(name, err)
	}

	var values []float64
	for i, line := range strings.Split(string(content), "\n") {
		for _, token := range strings.Fields(line) {
			v, err := parseToken(name, i+1, token)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}

func parseToken(name string, line int, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.ParseError(name, line, token, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.ParseError(name, line, token, nil)
	}
	return v, nil
}
