package redis_client

import (
	"context"
	"strconv"

	"github.com/railreport/railreport/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultDatabase = 0

func Connect() error {
	address := util.GetEnvironmentVariable("RAILREPORT_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("RAILREPORT_REDIS_PASSWORD", "")
	database := defaultDatabase

	if databaseString := util.GetEnvironmentVariable("RAILREPORT_REDIS_DATABASE", ""); databaseString != "" {
		n, err := strconv.Atoi(databaseString)
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		return err
	}

	return nil
}
