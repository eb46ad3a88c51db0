package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/railreport/railreport/pkg/otp"
)

// AggFunc names an aggregation applied to a numeric record field.
type AggFunc string

const (
	AggSum   AggFunc = "sum"
	AggMean  AggFunc = "mean"
	AggMin   AggFunc = "min"
	AggMax   AggFunc = "max"
	AggStd   AggFunc = "std"
	AggCount AggFunc = "count"
)

// Numeric record fields that can be aggregated.
const (
	FieldTotalDetraining = "Total Detraining Customers"
	FieldLateDetraining  = "Late Detraining Customers"
	FieldAvgMinLate      = "Late Detraining Customers Avg Min Late"
)

var numericFields = map[string]func(otp.StationArrival) float64{
	FieldTotalDetraining: func(a otp.StationArrival) float64 { return a.TotalDetrainingCustomers },
	FieldLateDetraining:  func(a otp.StationArrival) float64 { return a.LateDetrainingCustomers },
	FieldAvgMinLate:      func(a otp.StationArrival) float64 { return a.AvgMinLate },
}

// applyAggFunc aggregates the non-missing values only: NaN marks a
// missing cell, not a figure.
func applyAggFunc(function AggFunc, values []float64) (float64, error) {
	present := make([]float64, 0, len(values))
	for _, value := range values {
		if !math.IsNaN(value) {
			present = append(present, value)
		}
	}

	if function == AggCount {
		return float64(len(present)), nil
	}

	if len(present) == 0 {
		switch function {
		case AggSum, AggMean, AggMin, AggMax, AggStd:
			// Zero rather than NaN: aggregates are served as JSON.
			return 0, nil
		}
	}

	// A sample deviation needs two points.
	if function == AggStd && len(present) < 2 {
		return 0, nil
	}

	switch function {
	case AggSum:
		return stats.Sum(present)
	case AggMean:
		return stats.Mean(present)
	case AggMin:
		return stats.Min(present)
	case AggMax:
		return stats.Max(present)
	case AggStd:
		return stats.StandardDeviationSample(present)
	default:
		return math.NaN(), fmt.Errorf("unknown aggregation function %q", function)
	}
}

// FieldValues extracts one numeric field as a value slice.
func FieldValues(arrivals []otp.StationArrival, field string) ([]float64, error) {
	accessor, found := numericFields[field]
	if !found {
		return nil, fmt.Errorf("unknown numeric field %q", field)
	}

	values := make([]float64, len(arrivals))
	for i, arrival := range arrivals {
		values[i] = accessor(arrival)
	}

	return values, nil
}

func round(value float64, precision int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	rounded, _ := stats.Round(value, precision)
	return rounded
}
