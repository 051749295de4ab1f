package analysis

import (
	"math"

	"distplot/internal/errors"
	"distplot/internal/sample"

	"github.com/montanaflynn/stats"
)

// ZScores returns (x - mean) / stdDev for every value. With zero spread
// every score is 0.
func ZScores(values []float64, mean, stdDev float64) []float64 {
	scores := make([]float64, len(values))
	if stdDev == 0 {
		return scores
	}
	for i, x := range values {
		scores[i] = (x - mean) / stdDev
	}
	return scores
}

// FilterOutliers keeps the observations whose absolute Z-score, taken against
// the sample's own mean and population standard deviation, is below threshold.
// Input order is preserved.
func FilterOutliers(s sample.Sample, threshold float64) (sample.Sample, error) {
	data := stats.Float64Data(s.Values())
	if len(data) == 0 {
		return sample.Sample{}, errors.EmptyData("cannot filter an empty sample")
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return sample.Sample{}, errors.Wrap(err, "failed to compute mean")
	}
	stdDev, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return sample.Sample{}, errors.Wrap(err, "failed to compute standard deviation")
	}

	kept := make([]float64, 0, len(data))
	for i, z := range ZScores(data, mean, stdDev) {
		if math.Abs(z) < threshold {
			kept = append(kept, data[i])
		}
	}
	return sample.New(kept), nil
}
