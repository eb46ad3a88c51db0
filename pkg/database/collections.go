package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createStationArrivalsIndexes()
	createStatsIndexes()
}

func createStationArrivalsIndexes() {
	arrivalsCollection := GetCollection("station_arrivals")
	arrivalsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "trainnumber", Value: 1},
				{Key: "arrivalstationcode", Value: 1},
				{Key: "fiscalyear", Value: 1},
				{Key: "fiscalquarter", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "arrivalstationcode", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "serviceline", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "fiscalyear", Value: 1},
				{Key: "fiscalquarter", Value: 1},
			},
		},
	}

	opts := options.CreateIndexes()
	_, err := arrivalsCollection.Indexes().CreateMany(context.Background(), arrivalsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createStatsIndexes() {
	statsCollection := GetCollection("record_stats")
	_, err := statsCollection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: 1}},
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
