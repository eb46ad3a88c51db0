package calculator

import (
	"fmt"
	"sort"

	"github.com/railreport/railreport/pkg/otp"
	"github.com/railreport/railreport/pkg/util"
)

// StationTotal is the total detraining count of one station, optionally
// within a geographic unit.
type StationTotal struct {
	ArrivalStationCode string
	StationName        string
	State              string
	GeoUnit            string `json:"GeoUnit,omitempty"`

	TotalDetrainingCustomers float64
}

var geoUnitAccessors = map[string]func(otp.StationArrival) string{
	"State":    func(a otp.StationArrival) string { return a.State },
	"Country":  func(a otp.StationArrival) string { return a.Country },
	"Region":   func(a otp.StationArrival) string { return a.Region },
	"Division": func(a otp.StationArrival) string { return a.Division },
}

// BusiestStations returns the n stations with the most detraining
// customers, descending, over the arrivals matching the filter. With a
// geoUnit ("State", "Country", "Region", "Division") the top n stations
// within each unit are returned instead.
func BusiestStations(arrivals []otp.StationArrival, n int, geoUnit string, filter otp.FilterOptions) ([]StationTotal, error) {
	arrivals, err := otp.FilterStationArrivals(arrivals, filter)
	if err != nil {
		return nil, err
	}

	var geoAccessor func(otp.StationArrival) string
	if geoUnit != "" {
		var found bool
		geoAccessor, found = geoUnitAccessors[geoUnit]
		if !found {
			return nil, fmt.Errorf("unknown geographic unit %q", geoUnit)
		}
	}

	totals := map[string]*StationTotal{}
	for _, arrival := range arrivals {
		key := arrival.ArrivalStationCode
		if geoAccessor != nil {
			key = geoAccessor(arrival) + "/" + key
		}

		total, exists := totals[key]
		if !exists {
			total = &StationTotal{
				ArrivalStationCode: arrival.ArrivalStationCode,
				StationName:        arrival.StationName,
				State:              arrival.State,
			}
			if geoAccessor != nil {
				total.GeoUnit = geoAccessor(arrival)
			}
			totals[key] = total
		}

		total.TotalDetrainingCustomers += arrival.TotalDetrainingCustomers
	}

	if geoAccessor == nil {
		stations := make([]StationTotal, 0, len(totals))
		for _, total := range totals {
			stations = append(stations, *total)
		}

		return nLargest(stations, n), nil
	}

	// Top n within each geographic unit.
	byUnit := map[string][]StationTotal{}
	for _, total := range totals {
		byUnit[total.GeoUnit] = append(byUnit[total.GeoUnit], *total)
	}

	var stations []StationTotal
	for _, unit := range util.SortedKeys(byUnit) {
		stations = append(stations, nLargest(byUnit[unit], n)...)
	}

	return stations, nil
}

func nLargest(stations []StationTotal, n int) []StationTotal {
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].TotalDetrainingCustomers > stations[j].TotalDetrainingCustomers
	})

	if n > 0 && n < len(stations) {
		return stations[:n]
	}

	return stations
}

// RouteStationStats is the per-station summary along a route, in route
// order.
type RouteStationStats struct {
	ArrivalStationCode string
	StationName        string
	State              string
	Latitude           float64
	Longitude          float64

	Summary Summary
}

// RouteStats summarises the arrivals at each station along a route,
// keeping the route's station order.
func RouteStats(arrivals []otp.StationArrival, route []otp.StationArrival, fields []string, functions []AggFunc) ([]RouteStationStats, error) {
	byStation := map[string][]otp.StationArrival{}
	for _, arrival := range arrivals {
		byStation[arrival.ArrivalStationCode] = append(byStation[arrival.ArrivalStationCode], arrival)
	}

	var routeStats []RouteStationStats
	seen := map[string]bool{}

	for _, station := range route {
		code := station.ArrivalStationCode
		if seen[code] {
			continue
		}
		seen[code] = true

		summary, err := ComputeSummary(byStation[code], fields, functions, DefaultPrecision)
		if err != nil {
			return nil, err
		}
		summary.Group = code

		routeStats = append(routeStats, RouteStationStats{
			ArrivalStationCode: code,
			StationName:        station.StationName,
			State:              station.State,
			Latitude:           station.Latitude,
			Longitude:          station.Longitude,
			Summary:            summary,
		})
	}

	return routeStats, nil
}
