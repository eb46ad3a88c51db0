package otp

import (
	"errors"
	"fmt"

	"github.com/railreport/railreport/pkg/util"
)

// FilterOptions selects arrival records. All criteria are optional and
// combine as a logical AND. Quarters can only be given alongside a year.
type FilterOptions struct {
	Field string
	Value any

	Year     int
	Quarters []int
}

// FilterStationArrivals returns the arrivals matching opts. With empty
// options the input slice is returned unchanged.
//
// Value is compared against nil only: zero values like 0 or "" are valid
// field values to filter on.
func FilterStationArrivals(arrivals []StationArrival, opts FilterOptions) ([]StationArrival, error) {
	if opts.Field == "" && opts.Year == 0 {
		if len(opts.Quarters) > 0 {
			return nil, errors.New("quarters can only be filtered alongside a year")
		}
		return arrivals, nil
	}

	match := func(arrival StationArrival) bool { return true }

	if opts.Field != "" {
		if opts.Value == nil {
			return nil, errors.New("invalid or missing filter value")
		}

		accessor, found := fieldAccessors[opts.Field]
		if !found {
			return nil, fmt.Errorf("invalid field name %q", opts.Field)
		}

		previous := match
		match = func(arrival StationArrival) bool {
			return previous(arrival) && accessor(arrival) == opts.Value
		}
	}

	if opts.Year != 0 {
		previous := match
		match = func(arrival StationArrival) bool {
			return previous(arrival) && arrival.FiscalYear == opts.Year
		}

		if len(opts.Quarters) > 0 {
			for _, quarter := range opts.Quarters {
				if quarter < 1 || quarter > 4 {
					return nil, fmt.Errorf("invalid fiscal quarter %d", quarter)
				}
			}

			previous := match
			match = func(arrival StationArrival) bool {
				if !previous(arrival) {
					return false
				}
				for _, quarter := range opts.Quarters {
					if arrival.FiscalQuarter == quarter {
						return true
					}
				}
				return false
			}
		}
	} else if len(opts.Quarters) > 0 {
		return nil, errors.New("quarters can only be filtered alongside a year")
	}

	filtered := make([]StationArrival, len(arrivals))
	copy(filtered, arrivals)
	util.InPlaceFilter(&filtered, match)

	return filtered, nil
}

var fieldAccessors = map[string]func(StationArrival) any{
	"ServiceLine":        func(a StationArrival) any { return a.ServiceLine },
	"Service":            func(a StationArrival) any { return a.Service },
	"SubService":         func(a StationArrival) any { return a.SubService },
	"TrainNumber":        func(a StationArrival) any { return a.TrainNumber },
	"ArrivalStationCode": func(a StationArrival) any { return a.ArrivalStationCode },
	"StationName":        func(a StationArrival) any { return a.StationName },
	"City":               func(a StationArrival) any { return a.City },
	"State":              func(a StationArrival) any { return a.State },
	"Country":            func(a StationArrival) any { return a.Country },
	"Region":             func(a StationArrival) any { return a.Region },
	"Division":           func(a StationArrival) any { return a.Division },
}

func ByService(arrivals []StationArrival, service string, year int, quarters ...int) ([]StationArrival, error) {
	return FilterStationArrivals(arrivals, FilterOptions{Field: "Service", Value: service, Year: year, Quarters: quarters})
}

func ByServiceLine(arrivals []StationArrival, serviceLine string, year int, quarters ...int) ([]StationArrival, error) {
	return FilterStationArrivals(arrivals, FilterOptions{Field: "ServiceLine", Value: serviceLine, Year: year, Quarters: quarters})
}

func BySubService(arrivals []StationArrival, subService string, year int, quarters ...int) ([]StationArrival, error) {
	return FilterStationArrivals(arrivals, FilterOptions{Field: "SubService", Value: subService, Year: year, Quarters: quarters})
}

func ByStation(arrivals []StationArrival, stationCode string, year int, quarters ...int) ([]StationArrival, error) {
	return FilterStationArrivals(arrivals, FilterOptions{Field: "ArrivalStationCode", Value: stationCode, Year: year, Quarters: quarters})
}

func ByTrainNumber(arrivals []StationArrival, trainNumber int, year int, quarters ...int) ([]StationArrival, error) {
	return FilterStationArrivals(arrivals, FilterOptions{Field: "TrainNumber", Value: trainNumber, Year: year, Quarters: quarters})
}
