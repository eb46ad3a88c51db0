package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/util"
)

const DefaultPrecision = 4

// Summary is a row of aggregated detraining statistics, either for the
// whole system or for one group of arrivals.
type Summary struct {
	Group string `json:"Group,omitempty" bson:"group,omitempty"`

	// Every record is one train arrival at a station.
	TrainArrivals int

	// Ratios against system-wide totals, only populated by grouped
	// summaries when the totals are supplied.
	TrainArrivalRatio float64 `json:"TrainArrivalRatio,omitempty" bson:"trainarrivalratio,omitempty"`
	DetrainingRatio   float64 `json:"DetrainingRatio,omitempty" bson:"detrainingratio,omitempty"`

	// Aggregates is keyed by "<field> <func>", e.g.
	// "Total Detraining Customers sum".
	Aggregates map[string]float64

	LateToTotalRatio      float64
	MeanMinLate           float64
	TotalOnTimeDetraining float64
}

// GroupKeyFunc maps an arrival record to its grouping key.
type GroupKeyFunc func(otp.StationArrival) string

func GroupByStation(a otp.StationArrival) string      { return a.ArrivalStationCode }
func GroupByService(a otp.StationArrival) string      { return a.Service }
func GroupByServiceLine(a otp.StationArrival) string  { return a.ServiceLine }
func GroupBySubService(a otp.StationArrival) string   { return a.SubService }
func GroupByState(a otp.StationArrival) string        { return a.State }
func GroupByRegion(a otp.StationArrival) string       { return a.Region }
func GroupByDivision(a otp.StationArrival) string     { return a.Division }
func GroupByFiscalPeriod(a otp.StationArrival) string { return a.FiscalPeriod() }

// GroupOptions control the extra ratio columns of grouped summaries.
type GroupOptions struct {
	TotalArrivals   int
	TotalDetraining float64
	Precision       int
}

// ComputeSummary aggregates the given fields with the given functions over
// all arrivals and derives the report metrics: late-to-total detraining
// ratio, mean minutes late for late detraining customers, and the on-time
// detraining count.
func ComputeSummary(arrivals []otp.StationArrival, fields []string, functions []AggFunc, precision int) (Summary, error) {
	if precision == 0 {
		precision = DefaultPrecision
	}

	summary := Summary{
		TrainArrivals: len(arrivals),
		Aggregates:    map[string]float64{},
	}

	for _, field := range fields {
		values, err := FieldValues(arrivals, field)
		if err != nil {
			return Summary{}, err
		}

		for _, function := range functions {
			value, err := applyAggFunc(function, values)
			if err != nil {
				return Summary{}, err
			}

			summary.Aggregates[fmt.Sprintf("%s %s", field, function)] = round(value, precision)
		}
	}

	totalDetraining := sumField(arrivals, func(a otp.StationArrival) float64 { return a.TotalDetrainingCustomers })
	lateDetraining := sumField(arrivals, func(a otp.StationArrival) float64 { return a.LateDetrainingCustomers })

	if totalDetraining > 0 {
		summary.LateToTotalRatio = round(lateDetraining/totalDetraining, precision)
	}
	summary.TotalOnTimeDetraining = totalDetraining - lateDetraining
	summary.MeanMinLate = round(meanMinLate(arrivals), precision)

	return summary, nil
}

// ComputeSummaryByGroup splits the arrivals with keyFn and summarises each
// group, ordered by group key.
func ComputeSummaryByGroup(arrivals []otp.StationArrival, keyFn GroupKeyFunc, fields []string, functions []AggFunc, opts GroupOptions) ([]Summary, error) {
	if opts.Precision == 0 {
		opts.Precision = DefaultPrecision
	}

	groups := map[string][]otp.StationArrival{}
	for _, arrival := range arrivals {
		key := keyFn(arrival)
		groups[key] = append(groups[key], arrival)
	}

	summaries := make([]Summary, 0, len(groups))
	for _, key := range util.SortedKeys(groups) {
		summary, err := ComputeSummary(groups[key], fields, functions, opts.Precision)
		if err != nil {
			return nil, err
		}

		summary.Group = key

		if opts.TotalArrivals > 0 {
			summary.TrainArrivalRatio = round(float64(summary.TrainArrivals)/float64(opts.TotalArrivals), opts.Precision)
		}
		if opts.TotalDetraining > 0 {
			groupDetraining := sumField(groups[key], func(a otp.StationArrival) float64 { return a.TotalDetrainingCustomers })
			summary.DetrainingRatio = round(groupDetraining/opts.TotalDetraining, opts.Precision)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// meanMinLate averages the minutes-late figure over the records that had
// late detraining customers. Records without late customers carry no
// meaningful figure and are skipped.
func meanMinLate(arrivals []otp.StationArrival) float64 {
	var lateMinutes []float64
	for _, arrival := range arrivals {
		if arrival.LateDetrainingCustomers > 0 && !math.IsNaN(arrival.AvgMinLate) {
			lateMinutes = append(lateMinutes, arrival.AvgMinLate)
		}
	}

	// Zero rather than NaN: summaries are served as JSON.
	if len(lateMinutes) == 0 {
		return 0
	}

	mean, _ := stats.Mean(lateMinutes)
	return mean
}

func sumField(arrivals []otp.StationArrival, accessor func(otp.StationArrival) float64) float64 {
	total := 0.0
	for _, arrival := range arrivals {
		total += accessor(arrival)
	}

	return total
}
