package analysis

import (
	"math"

	"distplot/internal/errors"
	"distplot/internal/sample"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// densityCut is how many bandwidths the grid extends past the data range.
const densityCut = 3

// Curve is a density evaluated on an ascending grid
type Curve struct {
	X         []float64
	Y         []float64
	Bandwidth float64
}

// ScottBandwidth returns sigma * n^(-1/5), sigma being the sample-corrected
// standard deviation. Samples with fewer than two points or no spread fall
// back to sigma = 1.
func ScottBandwidth(values []float64) float64 {
	n := float64(len(values))
	sigma := 1.0
	if len(values) >= 2 {
		if sd := stat.StdDev(values, nil); sd > 0 && !math.IsNaN(sd) {
			sigma = sd
		}
	}
	return sigma * math.Pow(n, -0.2)
}

// EstimateDensity evaluates a Gaussian kernel density estimate of s at
// points evenly spaced grid positions.
func EstimateDensity(s sample.Sample, points int) (Curve, error) {
	values := s.Values()
	if len(values) == 0 {
		return Curve{}, errors.EmptyData("cannot estimate density of an empty sample")
	}
	if points < 2 {
		points = 2
	}

	h := ScottBandwidth(values)
	kernel := distuv.Normal{Mu: 0, Sigma: h}

	lo := floats.Min(values) - densityCut*h
	hi := floats.Max(values) + densityCut*h
	xs := floats.Span(make([]float64, points), lo, hi)

	ys := make([]float64, points)
	weight := 1 / float64(len(values))
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			sum += kernel.Prob(x - v)
		}
		ys[i] = sum * weight
	}

	return Curve{X: xs, Y: ys, Bandwidth: h}, nil
}
