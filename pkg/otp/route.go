package otp

import (
	"fmt"
	"sort"
	"strings"
)

// CreateRoute orders the stations served by one train along its direction
// of travel. Northbound/southbound routes sort by latitude, eastbound/
// westbound by longitude.
//
// Geography alone is sometimes wrong: the Wolverine runs east-west between
// Chicago and Detroit but northwest-southeast onwards to Pontiac. A
// stationOrder map of station code to position overrides the geographic
// sort for such routes.
func CreateRoute(train []StationArrival, direction string, stationOrder map[string]int) ([]StationArrival, error) {
	route := make([]StationArrival, len(train))
	copy(route, train)

	if stationOrder != nil {
		sortByStationOrder(route, stationOrder)
		return route, nil
	}

	var less func(a, b StationArrival) bool

	switch strings.ToLower(direction) {
	case "nb", "northbound":
		less = func(a, b StationArrival) bool {
			if a.Latitude != b.Latitude {
				return a.Latitude < b.Latitude
			}
			return a.Longitude < b.Longitude
		}
	case "sb", "southbound":
		less = func(a, b StationArrival) bool {
			if a.Latitude != b.Latitude {
				return a.Latitude > b.Latitude
			}
			return a.Longitude < b.Longitude
		}
	case "eb", "eastbound":
		less = func(a, b StationArrival) bool {
			if a.Longitude != b.Longitude {
				return a.Longitude < b.Longitude
			}
			return a.Latitude < b.Latitude
		}
	case "wb", "westbound":
		less = func(a, b StationArrival) bool {
			if a.Longitude != b.Longitude {
				return a.Longitude > b.Longitude
			}
			return a.Latitude < b.Latitude
		}
	default:
		return nil, fmt.Errorf("direction %q invalid: choose eastbound, westbound, northbound, or southbound", direction)
	}

	sort.SliceStable(route, func(i, j int) bool { return less(route[i], route[j]) })

	return route, nil
}

// AddStationsToRoute merges extra station rows into a train's route and
// re-sorts by the explicit station order. The added stations take on the
// route's train number.
func AddStationsToRoute(train []StationArrival, stations []StationArrival, stationOrder map[string]int) []StationArrival {
	route := make([]StationArrival, 0, len(train)+len(stations))
	route = append(route, train...)

	trainNumber := 0
	if len(train) > 0 {
		trainNumber = train[0].TrainNumber
	}

	for _, station := range stations {
		station.TrainNumber = trainNumber
		route = append(route, station)
	}

	sortByStationOrder(route, stationOrder)

	return route
}

func sortByStationOrder(route []StationArrival, stationOrder map[string]int) {
	sort.SliceStable(route, func(i, j int) bool {
		return stationOrder[route[i].ArrivalStationCode] < stationOrder[route[j].ArrivalStationCode]
	})
}
