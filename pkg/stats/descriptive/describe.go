// Package descriptive computes the summary statistics behind the report
// charts: column descriptions, grouped box-and-whisker aggregates, fixed
// width histogram bins and least squares trend lines.
package descriptive

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"
)

// Description is the full descriptive summary of one numeric column.
type Description struct {
	Name string

	NonNull int
	Missing int

	Mean   float64
	Median float64
	Mode   float64

	Min float64
	Q1  float64
	Q3  float64
	Max float64

	Variance float64
	Std      float64
	Range    float64
	IQR      float64

	Skewness float64
	Kurtosis float64
}

// Describe summarises a numeric column. NaN entries count as missing and
// are excluded from every statistic.
func Describe(name string, values []float64) (*Description, error) {
	nonNull := make([]float64, 0, len(values))
	missing := 0
	for _, value := range values {
		if math.IsNaN(value) {
			missing++
			continue
		}
		nonNull = append(nonNull, value)
	}

	if len(nonNull) == 0 {
		return nil, errors.New("column has no numeric values")
	}

	if missing > 0 {
		log.Warn().
			Str("column", name).
			Int("missing", missing).
			Msg("Column contains missing values")
	}

	description := &Description{
		Name:    name,
		NonNull: len(nonNull),
		Missing: missing,
	}

	description.Mean, _ = stats.Mean(nonNull)
	description.Median, _ = stats.Median(nonNull)
	description.Min, _ = stats.Min(nonNull)
	description.Max, _ = stats.Max(nonNull)
	description.Range = description.Max - description.Min

	if modes, err := stats.Mode(nonNull); err == nil && len(modes) > 0 {
		description.Mode = modes[0]
	} else {
		description.Mode = math.NaN()
	}

	quartiles, err := stats.Quartile(nonNull)
	if err == nil {
		description.Q1 = quartiles.Q1
		description.Q3 = quartiles.Q3
		description.IQR = quartiles.Q3 - quartiles.Q1
	} else {
		description.Q1 = math.NaN()
		description.Q3 = math.NaN()
		description.IQR = math.NaN()
	}

	description.Variance, _ = stats.SampleVariance(nonNull)
	description.Std, _ = stats.StandardDeviationSample(nonNull)

	description.Skewness = sampleSkewness(nonNull, description.Mean)
	description.Kurtosis = sampleKurtosis(nonNull, description.Mean)

	return description, nil
}

// Adjusted Fisher-Pearson coefficient, matching the usual spreadsheet and
// dataframe definitions. NaN below three samples.
func sampleSkewness(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return math.NaN()
	}

	m2, m3 := centralMoments(values, mean)
	if m2 == 0 {
		return math.NaN()
	}

	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// Sample excess kurtosis with the usual bias adjustment. NaN below four
// samples.
func sampleKurtosis(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return math.NaN()
	}

	m2, _ := centralMoments(values, mean)
	if m2 == 0 {
		return math.NaN()
	}

	m4 := 0.0
	for _, value := range values {
		d := value - mean
		m4 += d * d * d * d
	}
	m4 /= n

	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

func centralMoments(values []float64, mean float64) (m2 float64, m3 float64) {
	n := float64(len(values))
	for _, value := range values {
		d := value - mean
		m2 += d * d
		m3 += d * d * d
	}

	return m2 / n, m3 / n
}
