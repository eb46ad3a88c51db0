package descriptive

import (
	"errors"
	"sort"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultWhiskerCoefficient is the usual Tukey fence multiplier.
const DefaultWhiskerCoefficient = 1.5

// BoxplotStats are the pre-aggregated components of one box in a box and
// whisker chart.
type BoxplotStats struct {
	Group string

	Count int
	Mean  float64
	Std   float64

	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64

	IQR float64

	// Fences are Q1-k*IQR and Q3+k*IQR; the whiskers end on the most
	// extreme data points still inside the fences.
	LowerFence   float64
	UpperFence   float64
	LowerWhisker float64
	UpperWhisker float64

	Outliers []float64
}

// Boxplot computes the box components for one set of values. A zero k
// uses DefaultWhiskerCoefficient.
func Boxplot(values []float64, k float64) (BoxplotStats, error) {
	if len(values) == 0 {
		return BoxplotStats{}, errors.New("no values to aggregate")
	}
	if k == 0 {
		k = DefaultWhiskerCoefficient
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	b := BoxplotStats{
		Count: len(sorted),
		Min:   sorted[0],
		Max:   sorted[len(sorted)-1],
	}

	b.Mean, _ = stats.Mean(sorted)
	b.Std, _ = stats.StandardDeviationSample(sorted)
	b.Median, _ = stats.Median(sorted)

	quartiles, err := stats.Quartile(sorted)
	if err != nil {
		return BoxplotStats{}, err
	}
	b.Q1, b.Q3 = quartiles.Q1, quartiles.Q3
	b.IQR = b.Q3 - b.Q1

	b.LowerFence = b.Q1 - k*b.IQR
	b.UpperFence = b.Q3 + k*b.IQR

	// Whiskers end on real data points, walk in from the extremes.
	b.LowerWhisker, b.UpperWhisker = b.Max, b.Min
	for _, value := range sorted {
		if value >= b.LowerFence && value < b.LowerWhisker {
			b.LowerWhisker = value
		}
		if value <= b.UpperFence && value > b.UpperWhisker {
			b.UpperWhisker = value
		}
		if value < b.LowerFence || value > b.UpperFence {
			b.Outliers = append(b.Outliers, value)
		}
	}

	return b, nil
}

// BoxplotByGroup computes box components per group, ordered by group key.
func BoxplotByGroup(groups map[string][]float64, k float64) ([]BoxplotStats, error) {
	keys := maps.Keys(groups)
	slices.Sort(keys)

	boxes := make([]BoxplotStats, 0, len(keys))
	for _, key := range keys {
		box, err := Boxplot(groups[key], k)
		if err != nil {
			return nil, err
		}

		box.Group = key
		boxes = append(boxes, box)
	}

	return boxes, nil
}
