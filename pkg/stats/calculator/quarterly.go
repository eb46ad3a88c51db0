package calculator

import (
	"math"

	"github.com/montanaflynn/stats"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/util"
)

// PeriodAverage is the mean minutes-late figure for one fiscal period.
type PeriodAverage struct {
	Period      string
	AvgMinLate  float64
	SampleCount int
}

// QuarterlyAvgMinLate averages the minutes-late figure per fiscal period,
// ordered by period ("2023Q4" sorts before "2024Q1").
func QuarterlyAvgMinLate(arrivals []otp.StationArrival, precision int) []PeriodAverage {
	if precision == 0 {
		precision = DefaultPrecision
	}

	groups := map[string][]float64{}
	for _, arrival := range arrivals {
		if arrival.LateDetrainingCustomers > 0 && !math.IsNaN(arrival.AvgMinLate) {
			key := arrival.FiscalPeriod()
			groups[key] = append(groups[key], arrival.AvgMinLate)
		}
	}

	averages := make([]PeriodAverage, 0, len(groups))
	for _, period := range util.SortedKeys(groups) {
		mean, _ := stats.Mean(groups[period])

		averages = append(averages, PeriodAverage{
			Period:      period,
			AvgMinLate:  round(mean, precision),
			SampleCount: len(groups[period]),
		})
	}

	return averages
}
