package otp

import (
	"context"

	"github.com/railreport/railreport/pkg/database"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const ArrivalsCollectionName = "station_arrivals"

// LoadStationArrivals reads matching arrival records out of the database
// into memory. A nil query loads the whole collection.
func LoadStationArrivals(query bson.M) ([]StationArrival, error) {
	if query == nil {
		query = bson.M{}
	}

	arrivalsCollection := database.GetCollection(ArrivalsCollectionName)
	cursor, err := arrivalsCollection.Find(context.Background(), query)
	if err != nil {
		return nil, err
	}

	arrivals := []StationArrival{}
	for cursor.Next(context.TODO()) {
		var arrival StationArrival
		if err := cursor.Decode(&arrival); err != nil {
			log.Error().Err(err).Msg("Failed to decode station arrival")
			continue
		}

		arrivals = append(arrivals, arrival)
	}

	return arrivals, cursor.Err()
}
