// Package analysis computes the descriptive statistics, outlier filter and
// density estimate for a sample.
package analysis

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"distplot/internal/errors"
	"distplot/internal/sample"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Summary holds the statistics printed for a run
type Summary struct {
	Count     int
	Quartiles [3]float64
	Min       float64
	Max       float64
	Mean      float64
	// StdDev is the population standard deviation, unrounded.
	StdDev float64
}

// RoundedStdDev is StdDev rounded to two decimal places, ties to even
func (s Summary) RoundedStdDev() float64 {
	return scalar.RoundEven(s.StdDev, 2)
}

// Summarize computes the summary statistics of s. An empty sample is an error.
func Summarize(s sample.Sample) (Summary, error) {
	data := stats.Float64Data(s.Values())
	if len(data) == 0 {
		return Summary{}, errors.EmptyData("sample has no observations")
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to compute mean")
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to compute standard deviation")
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to compute minimum")
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "failed to compute maximum")
	}

	sorted := s.Values()
	sort.Float64s(sorted)

	return Summary{
		Count: len(data),
		Quartiles: [3]float64{
			Percentile(sorted, 25),
			Percentile(sorted, 50),
			Percentile(sorted, 75),
		},
		Min:    min,
		Max:    max,
		Mean:   mean,
		StdDev: stdDev,
	}, nil
}

// Percentile returns the p-th percentile (0-100) of an ascending slice,
// interpolating linearly between the two closest ranks at position (n-1)*p/100.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}

	pos := float64(n-1) * p / 100
	lo := math.Floor(pos)
	hi := math.Ceil(pos)
	frac := pos - lo
	return sorted[int(lo)] + (sorted[int(hi)]-sorted[int(lo)])*frac
}

// WriteTo prints the four labeled report lines
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "samples %d\n", s.Count)
	fmt.Fprintf(&b, "quartiles %s\n", formatList(s.Quartiles[:]))
	fmt.Fprintf(&b, "extremes %s\n", formatList([]float64{s.Min, s.Max}))
	fmt.Fprintf(&b, "std %s\n", formatFloat(s.RoundedStdDev()))

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Decimal exponents outside [minPlainExp, maxPlainExp) print in e-notation.
const (
	minPlainExp = -4
	maxPlainExp = 16
)

// formatFloat prints the shortest round-trip representation. Plain decimals
// always carry a decimal point; very large or small magnitudes use an exponent.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err == nil && v != 0 && (exp < minPlainExp || exp >= maxPlainExp) {
		return sci
	}

	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(out, '.') {
		out += ".0"
	}
	return out
}
